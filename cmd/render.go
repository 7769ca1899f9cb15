package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spigell/skillsync/internal/catalog"
	"github.com/spigell/skillsync/internal/matching"
)

const (
	outputJSON = "json"
	outputText = "text"
)

var (
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	skillStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	levelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	matchedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	missingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func validateOutput(output string) error {
	switch output {
	case outputJSON, outputText:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected %s or %s)", output, outputJSON, outputText)
	}
}

func writeJSON(w io.Writer, v any) error {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(pretty))
	return err
}

func renderJob(w io.Writer, analysis *matching.JobAnalysis) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Found %d skills", analysis.TotalSkills)))

	if analysis.TotalSkills == 0 {
		fmt.Fprintln(w, dimStyle.Render("  no known skills in the job description"))
		return
	}

	for _, group := range analysis.Categories {
		fmt.Fprintf(w, "\n  %s\n", categoryStyle.Render(group.Name))
		for _, skill := range group.Skills {
			fmt.Fprintf(w, "    %s %s\n",
				skillStyle.Render(skill.Name),
				levelStyle.Render("("+string(skill.Level)+")"),
			)
		}
	}
}

func renderGap(w io.Writer, report *matching.GapReport) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Match: %d%% (%d of %d skills)",
		report.MatchPercentage, report.TotalMatched, report.TotalRequired)))

	if len(report.MatchedSkills) > 0 {
		fmt.Fprintf(w, "\n  %s\n", matchedStyle.Render("You have"))
		for _, skill := range report.MatchedSkills {
			userLevel := skill.UserLevel
			if userLevel == "" {
				userLevel = "level not given"
			}
			fmt.Fprintf(w, "    %s %s %s\n",
				matchedStyle.Render("✓"),
				skillStyle.Render(skill.Name),
				levelStyle.Render(fmt.Sprintf("(you: %s, expected: %s)", userLevel, skill.Level)),
			)
		}
	}

	if len(report.MissingSkills) > 0 {
		fmt.Fprintf(w, "\n  %s\n", missingStyle.Render("To learn"))
		for _, skill := range report.MissingSkills {
			fmt.Fprintf(w, "    %s %s %s\n",
				missingStyle.Render("✗"),
				skillStyle.Render(skill.Name),
				levelStyle.Render(fmt.Sprintf("(%s, expected: %s)", skill.Category, skill.Level)),
			)
			if len(skill.Resources) > 0 {
				fmt.Fprintf(w, "      %s\n", dimStyle.Render(strings.Join(skill.Resources, " · ")))
			}
		}
	}
}

// renderCatalog prints definitions grouped under each category in the given order.
func renderCatalog(w io.Writer, categories []string, defs []catalog.Definition) {
	first := true
	for _, category := range categories {
		var rows []catalog.Definition
		for _, def := range defs {
			if def.Category == category {
				rows = append(rows, def)
			}
		}
		if len(rows) == 0 {
			continue
		}

		if !first {
			fmt.Fprintln(w)
		}
		first = false

		fmt.Fprintln(w, categoryStyle.Render(category))
		for _, def := range rows {
			fmt.Fprintf(w, "  %s %s\n", skillStyle.Render(def.Name), levelStyle.Render("("+string(def.Level)+")"))
		}
	}
}

func renderDefinition(w io.Writer, def catalog.Definition) {
	fmt.Fprintln(w, headerStyle.Render(def.Name))
	fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("category:"), skillStyle.Render(def.Category))
	fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("level:"), skillStyle.Render(string(def.Level)))
	if len(def.Resources) > 0 {
		fmt.Fprintln(w, "  "+dimStyle.Render("resources:"))
		for _, r := range def.Resources {
			fmt.Fprintf(w, "    - %s\n", skillStyle.Render(r))
		}
	}
}
