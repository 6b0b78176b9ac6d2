package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgeapk/apk-builder-backend/config"
	"github.com/forgeapk/apk-builder-backend/internal/bootstrap"
	"github.com/forgeapk/apk-builder-backend/internal/builds/service"
	"github.com/forgeapk/apk-builder-backend/internal/catalog"
	"github.com/forgeapk/apk-builder-backend/internal/gradle"
	cronjob "github.com/forgeapk/apk-builder-backend/internal/gradle/cron"
	"github.com/forgeapk/apk-builder-backend/internal/scaffold"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}

	cat := catalog.New()
	prober := gradle.NewProber(cfg.Builder.AndroidSDKRoot)
	invoker := gradle.NewInvoker(prober.Last().SDKRoot)

	scheduler := cronjob.NewScheduler(prober)
	scheduler.Start()
	defer scheduler.Stop()

	orch := service.NewOrchestrator(
		cat,
		store,
		scaffold.NewEngine(cat),
		invoker,
		prober,
		cfg.Builder.ProjectsDir,
		service.Options{
			BuildMode:        cfg.Builder.BuildMode,
			BuildTimeout:     time.Duration(cfg.Builder.BuildTimeoutSecs) * time.Second,
			RequireToolchain: cfg.Builder.RequireToolchain,
		},
	)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  "apk-builder-backend",
		Version:      cfg.App.Version,
		Catalog:      cat,
		Orchestrator: orch,
		Prober:       prober,
		BuildRate:    cfg.Builder.BuildRate,
		BuildBurst:   cfg.Builder.BuildBurst,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("listening on :%s (projects=%s)", cfg.Server.Port, cfg.Builder.ProjectsDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	// let in-flight build jobs commit their final record state
	orch.Wait()
	log.Println("bye")
}
