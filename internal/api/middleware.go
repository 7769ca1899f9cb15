package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/skillsync/internal/logger"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDLocal  = "request_id"
)

// requestID reuses a client supplied X-Request-ID or generates one.
func (s *Server) requestID(c *fiber.Ctx) error {
	id := c.Get(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}

	c.Locals(requestIDLocal, id)
	c.Set(requestIDHeader, id)

	return c.Next()
}

func requestIDFrom(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDLocal).(string)
	return id
}

// logRequests logs every request once it is finished. Errors from the chain
// are rendered here so the logged status is the one the client receives.
func (s *Server) logRequests(c *fiber.Ctx) error {
	start := time.Now()

	if err := c.Next(); err != nil {
		if handleErr := s.handleError(c, err); handleErr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	status := c.Response().StatusCode()
	fields := []zap.Field{
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		zap.String(logger.FieldRequestID, requestIDFrom(c)),
	}

	switch {
	case status >= fiber.StatusInternalServerError:
		s.logger.Error("request failed with server error", fields...)
	case status >= fiber.StatusBadRequest:
		s.logger.Warn("request failed with client error", fields...)
	default:
		s.logger.Debug("request completed", fields...)
	}

	return nil
}
