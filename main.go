package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "datatable/internal/config"
	"datatable/internal/dataset"
	router "datatable/internal/http"

	"github.com/gin-gonic/gin"
)

// @title Employee Data Table API
// @version 1.0
// @description Paginated, filterable query API over a mock in-memory employee dataset.
// @BasePath /api
func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	// Dataset is generated once here and stays immutable for the process
	// lifetime; handlers only ever read it.
	start := time.Now()
	store := dataset.NewStore(dataset.Config{
		Size: env.DatasetSize,
		Seed: env.DatasetSeed,
	})
	log.Printf("dataset ready: %d records in %s", store.Len(), time.Since(start).Round(time.Millisecond))

	r := router.NewRouter(env, store)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
