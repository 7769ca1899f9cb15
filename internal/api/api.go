package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/spigell/skillsync/internal/catalog"
	"github.com/spigell/skillsync/internal/matching"
)

// Server serves job analysis and gap analysis requests.
type Server struct {
	config    Config
	catalog   *catalog.Catalog
	extractor *matching.Extractor
	logger    *zap.Logger
	app       *fiber.App
}

// NewServer wires routes and middleware. The extractor must have been built
// from the same catalog.
func NewServer(config Config, cat *catalog.Catalog, extractor *matching.Extractor, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	bodyLimit := config.BodyLimit
	if bodyLimit <= 0 {
		bodyLimit = defaultBodyLimit
	}

	s := &Server{
		config:    config,
		catalog:   cat,
		extractor: extractor,
		logger:    logger,
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		UnescapePath:          true,
		Immutable:             true,
		BodyLimit:             bodyLimit,
		ErrorHandler:          s.handleError,
	})

	s.app.Use(s.requestID, s.logRequests, fiberrecover.New(), cors.New())

	s.app.Get("/", s.handleRoot)
	s.app.Get("/ping", s.handlePing)

	analysis := s.app.Group("/api/analysis")
	analysis.Post("/analyze-job", s.handleAnalyzeJob)
	analysis.Post("/analyze-gap", s.handleAnalyzeGap)

	s.app.Get("/api/catalog", s.handleListCatalog)
	s.app.Get("/api/catalog/:name", s.handleGetSkill)

	return s
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server",
		zap.String("listen", s.config.ListenAddr),
		zap.Int("catalog_size", s.catalog.Len()),
	)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
