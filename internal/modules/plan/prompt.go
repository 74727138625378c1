// README: Deterministic prompt construction for the itinerary generator.
package plan

import (
	"strconv"
	"strings"
)

// systemPrompt instructs the model to act as a travel planner and pins the
// exact output shape with a worked example. The document shape shown here is
// the same wire contract the validator enforces.
const systemPrompt = `Du bist ein professioneller Reiseplaner und Assistent. Deine Aufgabe ist es, auf Basis der folgenden Nutzereingaben einen detaillierten Reiseplan zu erstellen, der jeden Tag strukturiert beschreibt, was der Nutzer unternehmen kann. Füge außerdem passende Hotels, Aktivitäten und ggf. Flüge hinzu. Gib alles in einem strukturierten JSON‑Format aus.

⚠️ Ziel: Ein Reiseplan, der sofort nutzbar ist, inspirierend wirkt und direkt zur Buchung animiert. Verwende Sprache, die angenehm, hilfreich und lebendig ist. Ermutige zur Aktion.

🔁 Strukturiere deine Antwort im folgenden JSON‑Format:

{
  "reiseziele": ["Paris", "Versailles"],
  "reisezeitraum": "12.10.2025 - 18.10.2025",
  "personen": 2,
  "budget": "mittel",
  "unterkunft": {
    "vorschlag": "Hotel Le Petit Paris",
    "preisProNacht": "120€",
    "affiliateLink": "https://booking.com/..."
  },
  "tagesplan": [
    {
      "tag": 1,
      "datum": "12.10.2025",
      "beschreibung": "Ankunft in Paris, Einchecken, Spaziergang durch das Quartier Latin",
      "aktivitaeten": [
        {
          "titel": "Stadtspaziergang am Seine-Ufer",
          "beschreibung": "Entspanntes Kennenlernen der Umgebung",
          "affiliateLink": "https://viator.com/..."
        }
      ],
      "restaurant": "Le Procope",
      "bemerkung": "Leichtes Programm am Ankunftstag"
    }
  ],
  "tipps": [
    "Nehmt bequeme Schuhe mit",
    "Tickets für den Louvre besser vorab buchen"
  ],
  "premiumEmpfehlung": {
    "beschreibung": "Concierge-Service für persönliche WhatsApp-Beratung & Echtzeitpreise",
    "preis": "29€",
    "jetztBuchenLink": "https://deinservice.com/upgrade"
  }
}

📦 Gib deine Antwort nur als JSON ohne Fließtext oder Einleitung. Achte auf natürlich klingende Formulierungen, aber strukturiere sauber. Verwende Affiliate-optimierte Begriffe in den Links.`

// promptFields fixes the rendering order of the user prompt. Absent fields are
// omitted entirely, never invented.
var promptFields = []struct {
	key   string
	label string
}{
	{"ziel", "Ziel(e)"},
	{"abflughafen", "Startflughafen"},
	{"reisezeitraum", "Reisezeitraum"},
	{"budget", "Budget"},
	{"personen", "Personen"},
	{"interessen", "Interessen"},
	{"reisestil", "Reisestil"},
	{"unterkunft", "Unterkunft"},
	{"besondereWuensche", "Besondere Wünsche"},
}

// SystemPrompt returns the fixed system instruction. Identical on every call.
func SystemPrompt() string {
	return systemPrompt
}

// UserPrompt renders one "Label: value" line per present request field, in
// fixed order. Pure: no I/O, no fabricated fields.
func UserPrompt(req TravelRequest) string {
	var lines []string
	for _, f := range promptFields {
		if v := requestFieldString(req, f.key); v != "" {
			lines = append(lines, f.label+": "+v)
		}
	}
	return strings.Join(lines, "\n")
}

// requestFieldString renders a request field for the prompt. Numeric fields
// such as "personen" arrive as JSON numbers and are rendered without decimals.
func requestFieldString(req TravelRequest, key string) string {
	if s := req.String(key); s != "" {
		return s
	}
	if n, ok := req.Int(key); ok {
		return strconv.Itoa(n)
	}
	return ""
}
