// README: Itinerary schema definition and structural validator.
package plan

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// Violation is a single broken schema constraint. Path is a JSON-pointer-style
// location inside the document ("" is the root).
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// schemaNode is one node of the declarative schema tree. The tree mirrors the
// JSON Schema the wire contract was defined with (types, required keys,
// patterns, enums, minima); the evaluator below walks it without any external
// validation library.
type schemaNode struct {
	typ        string // "object", "array", "string", "integer"
	required   []string
	properties map[string]*schemaNode
	items      *schemaNode
	pattern    *regexp.Regexp
	enum       []string
	minimum    int
	hasMinimum bool
	minItems   int
	format     string // "uri"
}

var (
	datePattern  = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
	rangePattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4} - \d{2}\.\d{2}\.\d{4}$`)
)

// BudgetTiers is the closed set of accepted budget values.
var BudgetTiers = []string{"niedrig", "mittel", "hoch", "luxus"}

// itinerarySchema is the single source of truth for what counts as a valid
// itinerary document. Field names, patterns and enum literals are the wire
// contract and must not drift from what prompts advertise and handlers return.
var itinerarySchema = &schemaNode{
	typ:      "object",
	required: []string{"reiseziele", "reisezeitraum", "personen", "budget", "unterkunft", "tagesplan"},
	properties: map[string]*schemaNode{
		"reiseziele": {
			typ:      "array",
			items:    &schemaNode{typ: "string"},
			minItems: 1,
		},
		"reisezeitraum": {typ: "string", pattern: rangePattern},
		"personen":      {typ: "integer", minimum: 1, hasMinimum: true},
		"budget":        {typ: "string", enum: BudgetTiers},
		"unterkunft": {
			typ:      "object",
			required: []string{"vorschlag", "preisProNacht", "affiliateLink"},
			properties: map[string]*schemaNode{
				"vorschlag":     {typ: "string"},
				"preisProNacht": {typ: "string"},
				"affiliateLink": {typ: "string", format: "uri"},
			},
		},
		"tagesplan": {
			typ: "array",
			items: &schemaNode{
				typ:      "object",
				required: []string{"tag", "datum", "beschreibung", "aktivitaeten"},
				properties: map[string]*schemaNode{
					"tag":          {typ: "integer"},
					"datum":        {typ: "string", pattern: datePattern},
					"beschreibung": {typ: "string"},
					"aktivitaeten": {
						typ: "array",
						items: &schemaNode{
							typ:      "object",
							required: []string{"titel", "beschreibung"},
							properties: map[string]*schemaNode{
								"titel":         {typ: "string"},
								"beschreibung":  {typ: "string"},
								"affiliateLink": {typ: "string", format: "uri"},
							},
						},
					},
					"restaurant": {typ: "string"},
					"bemerkung":  {typ: "string"},
				},
			},
		},
		"tipps": {
			typ:   "array",
			items: &schemaNode{typ: "string"},
		},
		"premiumEmpfehlung": {
			typ:      "object",
			required: []string{"beschreibung", "preis", "jetztBuchenLink"},
			properties: map[string]*schemaNode{
				"beschreibung":    {typ: "string"},
				"preis":           {typ: "string"},
				"jetztBuchenLink": {typ: "string", format: "uri"},
			},
		},
	},
}

// Validate checks a candidate document against the itinerary schema and
// returns every broken constraint, not just the first. It never panics and
// never mutates the candidate; a nil result means the document is valid.
func Validate(doc any) []Violation {
	if it, ok := doc.(Itinerary); ok {
		doc = map[string]any(it)
	}
	return validateNode(itinerarySchema, doc, "")
}

func validateNode(n *schemaNode, v any, path string) []Violation {
	switch n.typ {
	case "object":
		obj, ok := v.(map[string]any)
		if !ok {
			return []Violation{{Path: path, Message: "must be an object"}}
		}
		var out []Violation
		for _, key := range n.required {
			if _, present := obj[key]; !present {
				out = append(out, Violation{Path: path, Message: fmt.Sprintf("missing required property %q", key)})
			}
		}
		// Deterministic violation order regardless of map iteration.
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child, known := n.properties[k]
			if !known {
				// Unknown properties pass through untouched.
				continue
			}
			out = append(out, validateNode(child, obj[k], path+"/"+k)...)
		}
		return out

	case "array":
		arr, ok := v.([]any)
		if !ok {
			return []Violation{{Path: path, Message: "must be an array"}}
		}
		var out []Violation
		if len(arr) < n.minItems {
			out = append(out, Violation{Path: path, Message: fmt.Sprintf("must have at least %d item(s)", n.minItems)})
		}
		for i, e := range arr {
			out = append(out, validateNode(n.items, e, fmt.Sprintf("%s/%d", path, i))...)
		}
		return out

	case "string":
		s, ok := v.(string)
		if !ok {
			return []Violation{{Path: path, Message: "must be a string"}}
		}
		var out []Violation
		if n.pattern != nil && !n.pattern.MatchString(s) {
			out = append(out, Violation{Path: path, Message: fmt.Sprintf("must match pattern %s", n.pattern.String())})
		}
		if len(n.enum) > 0 && !containsString(n.enum, s) {
			out = append(out, Violation{Path: path, Message: fmt.Sprintf("must be one of %s", strings.Join(n.enum, ", "))})
		}
		if n.format == "uri" && !isURI(s) {
			out = append(out, Violation{Path: path, Message: "must be a valid URI"})
		}
		return out

	case "integer":
		i, ok := asInteger(v)
		if !ok {
			return []Violation{{Path: path, Message: "must be an integer"}}
		}
		if n.hasMinimum && i < int64(n.minimum) {
			return []Violation{{Path: path, Message: fmt.Sprintf("must be >= %d", n.minimum)}}
		}
		return nil
	}
	return nil
}

// asInteger accepts the representations an integer can arrive in after JSON
// decoding (float64 from encoding/json, json.Number, or a native int from a
// document built in-process).
func asInteger(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int64:
		return t, true
	case float64:
		if t == float64(int64(t)) {
			return int64(t), true
		}
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, true
		}
	}
	return 0, false
}

func isURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Host != ""
}

func containsString(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
