package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spigell/skillsync/internal/catalog"
	"github.com/spigell/skillsync/internal/logger"
	"github.com/spigell/skillsync/internal/matching"
	"github.com/spigell/skillsync/internal/utils"
)

const previewLength = 120

type analyzeJobRequest struct {
	JobDescription string `json:"jobDescription"`
}

type analyzeJobResponse struct {
	Success bool `json:"success"`
	*matching.JobAnalysis
}

type analyzeGapRequest struct {
	RequiredSkills []matching.ExtractedSkill `json:"requiredSkills"`
	UserSkills     []matching.UserSkill      `json:"userSkills"`
}

type analyzeGapResponse struct {
	Success bool `json:"success"`
	*matching.GapReport
}

// CatalogResponse lists the skills the server recognises.
type CatalogResponse struct {
	Skills     []catalog.Definition `json:"skills"`
	Total      int                  `json:"total"`
	Categories []string             `json:"categories"`
}

// handleRoot returns a health message.
func (s *Server) handleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "SkillSync backend is running"})
}

func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}

// handleAnalyzeJob handles POST /api/analysis/analyze-job.
func (s *Server) handleAnalyzeJob(c *fiber.Ctx) error {
	var req analyzeJobRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest("invalid request body")
	}

	if strings.TrimSpace(req.JobDescription) == "" {
		return errBadRequest("job description is required")
	}

	analysis := s.extractor.AnalyzeJob(req.JobDescription)

	s.logger.Debug("analyzed job description",
		append(logger.JobFields(analysis),
			zap.String(logger.FieldRequestID, requestIDFrom(c)),
			zap.String("preview", utils.TruncateForLog(req.JobDescription, previewLength)),
		)...,
	)

	return c.JSON(analyzeJobResponse{Success: true, JobAnalysis: analysis})
}

// handleAnalyzeGap handles POST /api/analysis/analyze-gap.
func (s *Server) handleAnalyzeGap(c *fiber.Ctx) error {
	var req analyzeGapRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadRequest("invalid request body")
	}

	report, err := matching.AnalyzeGap(req.RequiredSkills, req.UserSkills)
	if err != nil {
		return err
	}

	s.logger.Debug("analyzed skill gap",
		append(logger.GapFields(report), zap.String(logger.FieldRequestID, requestIDFrom(c)))...,
	)

	return c.JSON(analyzeGapResponse{Success: true, GapReport: report})
}

// handleListCatalog handles GET /api/catalog.
func (s *Server) handleListCatalog(c *fiber.Ctx) error {
	skills := s.catalog.Entries()

	if category := c.Query("category"); category != "" {
		filtered := make([]catalog.Definition, 0)
		for _, def := range skills {
			if strings.EqualFold(def.Category, category) {
				filtered = append(filtered, def)
			}
		}
		skills = filtered
	}

	return c.JSON(CatalogResponse{
		Skills:     skills,
		Total:      len(skills),
		Categories: s.catalog.Categories(),
	})
}

// handleGetSkill handles GET /api/catalog/:name.
func (s *Server) handleGetSkill(c *fiber.Ctx) error {
	name := c.Params("name")

	def, ok := s.catalog.Lookup(name)
	if !ok {
		return errNotFound("skill " + name + " is not in the catalog")
	}

	return c.JSON(def)
}
