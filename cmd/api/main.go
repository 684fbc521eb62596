//	@title			Stockroom API
//	@version		1.0
//	@description	Minimal inventory-tracking service: image uploads plus item records.
//
//	@host		localhost:8080
//	@BasePath	/

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/stockroom/service/internal/config"
	"github.com/stockroom/service/internal/image"
	"github.com/stockroom/service/internal/inventory"
	appMiddleware "github.com/stockroom/service/internal/middleware"
	"github.com/stockroom/service/internal/response"
	"github.com/stockroom/service/internal/storage"
	"github.com/stockroom/service/internal/urls"

	_ "github.com/stockroom/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	store, err := newStorage(cfg)
	if err != nil {
		log.Fatalf("image storage init failed: %v", err)
	}

	resolver := urls.NewResolver(cfg.BaseURL)

	// Wire dependencies: repository → service → handler
	imageSvc := image.NewService(store)
	imageHandler := image.NewHandler(imageSvc, resolver)

	itemRepo := inventory.NewRepository(cfg.InventoryFile)
	itemSvc := inventory.NewService(itemRepo)
	itemHandler := inventory.NewHandler(itemSvc)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Greeting
	greeting := "Hello, " + cfg.GreetingName + "!"
	r.Get("/hello", func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]string{"message": greeting})
	})

	// Core API
	r.Post("/images", imageHandler.Upload)
	r.Get("/images/{name}", imageHandler.Fetch)
	r.Post("/items", itemHandler.Create)
	r.Get("/items", itemHandler.List)

	// Documentation artifacts, served verbatim
	r.Get("/openapi.yaml", serveFile("openapi.yaml", "application/yaml"))
	r.Get("/plugin_manifest.json", serveFile("plugin_manifest.json", "application/json"))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s, storage=%s)", cfg.Port, cfg.AppEnv, cfg.StorageBackend)
		log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}

// newStorage selects the image storage backend from configuration.
func newStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.StorageBackend == "s3" {
		return storage.NewMinioStorage(
			cfg.StorageEndpoint,
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			cfg.StorageBucket,
			cfg.StorageUseSSL,
		)
	}
	return storage.NewLocalStorage(cfg.ImageDir)
}

// serveFile returns a handler that serves a single file with a fixed content type.
func serveFile(path, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		http.ServeFile(w, r, path)
	}
}
