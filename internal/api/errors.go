package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spigell/skillsync/internal/logger"
	"github.com/spigell/skillsync/internal/matching"
)

// APIError is the JSON body of every failed request.
type APIError struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func newAPIError(code int, detail string) *APIError {
	return &APIError{
		Code:    code,
		Message: http.StatusText(code),
		Detail:  detail,
	}
}

func errBadRequest(detail string) *APIError {
	return newAPIError(fiber.StatusBadRequest, detail)
}

func errNotFound(detail string) *APIError {
	return newAPIError(fiber.StatusNotFound, detail)
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// handleError turns handler errors into APIError responses. Invalid input
// from the matching engine is a client error; anything unknown is a 500.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	var (
		apiErr   *APIError
		fiberErr *fiber.Error
		resp     APIError
	)

	switch {
	case errors.As(err, &apiErr):
		resp = *apiErr
	case errors.Is(err, matching.ErrInvalidInput):
		resp = *errBadRequest(err.Error())
	case errors.As(err, &fiberErr):
		resp = *newAPIError(fiberErr.Code, fiberErr.Message)
	default:
		s.logger.Error("request failed",
			zap.String(logger.FieldRequestID, requestIDFrom(c)),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		resp = *newAPIError(fiber.StatusInternalServerError, "analysis failed")
	}

	resp.RequestID = requestIDFrom(c)
	return c.Status(resp.Code).JSON(resp)
}
