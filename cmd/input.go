package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spigell/skillsync/internal/matching"
)

const stdinPath = "-"

// readText returns inline text, the content of a file, or stdin in that order.
func readText(stdin io.Reader, text, file string) (string, error) {
	if text != "" {
		return text, nil
	}

	var (
		data []byte
		err  error
	)
	if file == "" || file == stdinPath {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("reading job description: %w", err)
	}

	return string(data), nil
}

// parseUserSkill parses "Name=Level" or a bare "Name".
func parseUserSkill(s string) (matching.UserSkill, error) {
	name, level, _ := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return matching.UserSkill{}, fmt.Errorf("invalid skill %q: name is empty", s)
	}

	return matching.UserSkill{Name: name, Level: strings.TrimSpace(level)}, nil
}

func parseUserSkills(values []string) ([]matching.UserSkill, error) {
	skills := make([]matching.UserSkill, 0, len(values))
	for _, v := range values {
		skill, err := parseUserSkill(v)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, nil
}

func readUserSkillsFile(path string) ([]matching.UserSkill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading skills file: %w", err)
	}

	var skills []matching.UserSkill
	if err := json.Unmarshal(data, &skills); err != nil {
		return nil, fmt.Errorf("parsing skills file %q: %w", path, err)
	}
	return skills, nil
}

// decodeRequired accepts a plain list of skills, the output of "analyze job"
// or an HTTP analyze-gap request body.
func decodeRequired(data []byte) ([]matching.ExtractedSkill, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("required skills input is empty")
	}

	if data[0] == '[' {
		var skills []matching.ExtractedSkill
		if err := json.Unmarshal(data, &skills); err != nil {
			return nil, err
		}
		return skills, nil
	}

	var wrapped struct {
		Skills         []matching.ExtractedSkill `json:"skills"`
		RequiredSkills []matching.ExtractedSkill `json:"requiredSkills"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, err
	}

	if wrapped.RequiredSkills != nil {
		return wrapped.RequiredSkills, nil
	}
	return wrapped.Skills, nil
}

func readRequiredFile(path string) ([]matching.ExtractedSkill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading required skills: %w", err)
	}

	skills, err := decodeRequired(data)
	if err != nil {
		return nil, fmt.Errorf("parsing required skills %q: %w", path, err)
	}
	return skills, nil
}
