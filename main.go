package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"cadastro/internal/app"
	"cadastro/internal/config"
	"cadastro/internal/database"
	"cadastro/internal/services"
	"cadastro/pkg/cache"
	"cadastro/pkg/rabbitmq"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

// @title cadastro API
// @version 1.0
// @description Client and product registry.
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the CLI. Running it without a subcommand serves the API.
func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:          "cadastro",
		Short:        "Client and product registry API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to a .env file loaded before reading the environment")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the clients and products tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(envFile)
		},
	})

	return root
}

func runMigrate(envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}
	log.Println("Database migrated")
	return nil
}

func runServe(envFile string) error {
	// --- Configuration ---
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	// --- Database ---
	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}

	var (
		readCache cache.Cache
		mqClient  *rabbitmq.Client
		started   bool
	)
	// Until the server starts, a failed step releases what was already opened.
	defer func() {
		if started {
			return
		}
		if err := closeResources(mqClient, readCache, db); err != nil {
			log.Printf("Error releasing resources: %v", err)
		}
	}()
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
	}

	// --- Read cache (optional) ---
	readCache, err = cache.New(cache.Config{
		Driver:        cfg.Cache.Driver,
		TTL:           cfg.Cache.TTL,
		RedisAddr:     cfg.Cache.RedisAddr,
		RedisPassword: cfg.Cache.RedisPassword,
		RedisDB:       cfg.Cache.RedisDB,
	})
	if err != nil {
		return err
	}

	// --- RabbitMQ (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQ.URL,
			Exchange: cfg.RabbitMQ.Exchange,
			Queue:    cfg.RabbitMQ.Queue,
		})
		if err != nil {
			return err
		}
		publisher = mqClient

		log.Println("Starting RabbitMQ audit consumer...")
		if err := mqClient.ConsumeEvents(rabbitmq.LogEvent); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	} else {
		log.Println("RABBITMQ_URL is not set. Resource events are disabled.")
	}

	// --- Fiber app ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	server, err := app.New(app.Dependencies{
		DB:        db,
		Cache:     readCache,
		Publisher: publisher,
		Registry:  registry,
		AccessLog: true,
	})
	if err != nil {
		return err
	}

	// --- Start HTTP Server ---
	started = true
	log.Printf("Starting server on %s (db=%s cache=%s)", cfg.AppPort, cfg.Database.Driver, cfg.Cache.Driver)
	go func() {
		if err := server.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// On SIGINT/SIGTERM the HTTP server stops before the broker, cache and DB.
	wait := gfshutdown.GracefulShutdown(context.Background(), cfg.ShutdownTimeout, map[string]gfshutdown.Operation{
		"http": func(ctx context.Context) error {
			log.Println("Shutting down server...")
			if err := server.ShutdownWithContext(ctx); err != nil {
				return err
			}
			return closeResources(mqClient, readCache, db)
		},
	})

	if code := <-wait; code != 0 {
		return fmt.Errorf("shutdown finished with exit code %d", code)
	}
	log.Println("Server gracefully stopped")
	return nil
}
