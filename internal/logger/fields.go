package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/skillsync/internal/matching"
)

const (
	// FieldCatalog is the structured log field key for where the skill catalog came from.
	FieldCatalog = "catalog_source"
	// FieldMode is the structured log field key for the extraction mode.
	FieldMode = "match_mode"
	// FieldRequestID is the structured log field key for HTTP request ids.
	FieldRequestID = "request_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to the logger, falling back to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// EngineFields describes the catalog and extraction mode in use.
func EngineFields(catalogSource string, mode matching.Mode) []zap.Field {
	return StringFields(
		StringField{Key: FieldCatalog, Value: catalogSource},
		StringField{Key: FieldMode, Value: string(mode)},
	)
}

// JobFields summarises a job analysis.
func JobFields(analysis *matching.JobAnalysis) []zap.Field {
	if analysis == nil {
		return nil
	}

	return []zap.Field{
		zap.Int("total_skills", analysis.TotalSkills),
		zap.Strings("categories", analysis.Categories.Names()),
	}
}

// GapFields summarises a gap report. Missing skill names are listed because
// they are what users usually ask about.
func GapFields(report *matching.GapReport) []zap.Field {
	if report == nil {
		return nil
	}

	missing := make([]string, 0, len(report.MissingSkills))
	for _, skill := range report.MissingSkills {
		missing = append(missing, skill.Name)
	}

	return []zap.Field{
		zap.Int("match_percentage", report.MatchPercentage),
		zap.Int("total_required", report.TotalRequired),
		zap.Int("total_matched", report.TotalMatched),
		zap.Int("total_missing", report.TotalMissing),
		zap.Strings("missing_skills", missing),
	}
}
