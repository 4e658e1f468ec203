package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/room-directory/modules/api"
	"github.com/example/room-directory/modules/directory"
	"github.com/example/room-directory/modules/session"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Chat Room Directory ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework
	// Order: independent modules first, then dependent modules
	app.Register(session.NewModule())   // Independent module (tokens and identity)
	app.Register(directory.NewModule()) // Independent module (room storage)
	app.Register(api.NewModule())       // Depends on session and directory

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("HTTP Endpoints (http://localhost:3000):")
	log.Println("")
	log.Println("  POST   /login              - Login with a username")
	log.Println("  POST   /logout             - Logout")
	log.Println("  GET    /rooms              - List all rooms")
	log.Println("  POST   /rooms              - Create a room")
	log.Println("  GET    /rooms/search       - Search rooms by name")
	log.Println("  GET    /rooms/filter       - Filter rooms by category")
	log.Println("  GET    /rooms/:id          - Get a single room")
	log.Println("  PUT    /rooms/:id          - Update a room (owner only)")
	log.Println("  DELETE /rooms/:id          - Delete a room (owner only)")
	log.Println("  GET    /rooms/:id/edit     - Edit form for a room")
	log.Println("  GET    /health             - Health check")
	log.Println("")
	log.Println("Responses are HTML fragments; errors are JSON bodies.")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
