// README: Entry point; loads config, wires collaborators by credential presence, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fernweh/internal/affiliate"
	"fernweh/internal/ai"
	"fernweh/internal/config"
	httptransport "fernweh/internal/http"
	"fernweh/internal/infra"
	"fernweh/internal/modules/plan"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var strategy plan.Strategy = plan.NewFallbackStrategy()
	if cfg.AI.GeminiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer provider.Close()
		strategy = plan.NewModelStrategy(provider)
	} else {
		log.Println("GEMINI_API_KEY not set, using deterministic fallback generator")
	}

	var resolver plan.LinkResolver
	if cfg.Affiliate.MapsKey != "" {
		r, err := affiliate.NewPlacesResolver(cfg.Affiliate.MapsKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		resolver = r
	}

	var store plan.Persister
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		planStore := plan.NewStore(dbPool)
		if err := planStore.EnsureSchema(ctx); err != nil {
			log.Fatalf("db schema: %v", err)
		}
		store = planStore
	} else {
		log.Println("FERNWEH_DB_DSN not set, plans will not be persisted")
	}

	var cache plan.PlanCache
	if cfg.Redis.Addr != "" {
		cache = plan.NewCache(infra.NewRedis(cfg.Redis.Addr))
	}

	planSvc := plan.NewService(strategy, plan.NewEnricher(resolver), store, cache)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewRouter(planSvc)}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("fernweh listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
