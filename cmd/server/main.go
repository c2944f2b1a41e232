/*
main.go - HTTP server entry point

PURPOSE:
  Starts the cooperative calculation API. Handles configuration,
  dependency wiring, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Initialize SQLite history store
  3. Connect Redis cache (or fall back to in-memory)
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)
  -db      SQLite database path (default: koperasi.db)
           Use ":memory:" for an in-memory database
  -redis   Redis address for the quote cache (empty: in-memory cache)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

EXAMPLES:
  ./server -db="./data/koperasi.db"
  ./server -db=":memory:" -port=3000
  ./server -redis="127.0.0.1:6379"

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/sqlite/sqlite.go: History persistence
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/koperasi/finance-engine/api"
	"github.com/koperasi/finance-engine/cache"
	"github.com/koperasi/finance-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "koperasi.db", "SQLite database path")
	redisAddr := flag.String("redis", "", "Redis address for the quote cache (empty: in-memory)")
	flag.Parse()

	// Initialize store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	// Initialize cache
	var quoteCache cache.Cache
	if *redisAddr != "" {
		redisCache := cache.NewRedis(*redisAddr)
		defer redisCache.Close()
		quoteCache = redisCache
		log.Printf("Using Redis quote cache at %s", *redisAddr)
	} else {
		quoteCache = cache.NewMemory()
	}

	// Create router
	handler := api.NewHandler(store, quoteCache)
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
