package api

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/example/room-directory/modules/directory"
	"github.com/example/room-directory/modules/session"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// APIModule is the HTTP API module serving the HTML fragment endpoints.
type APIModule struct {
	app       *fiber.App
	sessions  session.SessionPort
	directory directory.DirectoryPort
	port      string
}

// Compile-time interface checks.
var _ mono.Module = (*APIModule)(nil)
var _ mono.DependentModule = (*APIModule)(nil)
var _ mono.HealthCheckableModule = (*APIModule)(nil)

// NewModule creates a new APIModule.
func NewModule() *APIModule {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	return &APIModule{
		port: port,
	}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"session", "directory"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "session":
		m.sessions = session.NewSessionAdapter(container)
	case "directory":
		m.directory = directory.NewDirectoryAdapter(container)
	}
}

// Start initializes the Fiber HTTP server.
func (m *APIModule) Start(_ context.Context) error {
	if m.sessions == nil {
		return fmt.Errorf("session dependency not set")
	}
	if m.directory == nil {
		return fmt.Errorf("directory dependency not set")
	}

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          jsonErrorHandler,
	})

	m.app.Use(recover.New())
	m.app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	m.app.Use(cors.New(cors.Config{
		ExposeHeaders: HeaderServerRooms,
	}))

	m.setupRoutes()

	go func() {
		if err := m.app.Listen(":" + m.port); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	log.Printf("[api] HTTP server started on :%s", m.port)
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *APIModule) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"port": m.port,
		},
	}
}

// setupRoutes configures all routes. The static /rooms paths (search,
// filter) must be registered before the :id routes.
func (m *APIModule) setupRoutes() {
	handlers := NewHandlers(m.sessions, m.directory)

	m.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"module": "api",
		})
	})

	m.app.Post("/login", handlers.Login)
	m.app.Post("/logout", handlers.Logout)

	rooms := m.app.Group("/rooms",
		IdentityMiddleware(m.sessions),
		ClientSyncMiddleware(m.directory),
	)
	rooms.Get("/", handlers.ListRooms)
	rooms.Post("/", handlers.CreateRoom)
	rooms.Get("/search", handlers.SearchRooms)
	rooms.Get("/filter", handlers.FilterRooms)
	rooms.Get("/:id", handlers.GetRoom)
	rooms.Put("/:id", handlers.UpdateRoom)
	rooms.Delete("/:id", handlers.DeleteRoom)
	rooms.Get("/:id/edit", handlers.EditForm)
}

// jsonErrorHandler converts Fiber errors, including the router's 405s
// for registered paths hit with the wrong method, into JSON bodies.
func jsonErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if code == fiber.StatusMethodNotAllowed {
		message = "Method not allowed"
	}

	return c.Status(code).JSON(ErrorResponse{Error: message})
}
