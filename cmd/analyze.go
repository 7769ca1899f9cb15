package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/skillsync/internal/catalog"
	"github.com/spigell/skillsync/internal/logger"
	"github.com/spigell/skillsync/internal/matching"
	"github.com/spigell/skillsync/internal/utils"
)

const (
	PromptDontHave = "I don't have it"
	PromptSkipRest = "Stop asking"

	previewLength = 120
)

var errStopAsking = errors.New("stop asking requested")

// pickLevel asks the user for their level in a skill. An empty level with a
// nil error means the user does not have the skill.
var pickLevel = promptLevel

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze job descriptions and skill gaps",
}

var analyzeJobCmd = &cobra.Command{
	Use:   "job",
	Short: "Extract the skills a job description asks for",
	Long: `Extract the skills a job description asks for.

The description is taken from --text, --file or stdin. Every catalog skill
whose name appears in the text is reported, grouped by category.`,
	Args: cobra.NoArgs,
	RunE: runAnalyzeJob,
}

var analyzeGapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Compare the skills a job requires with your own",
	Long: `Compare the skills a job requires with your own.

Required skills come from --required (a JSON list of skills or the JSON output
of "analyze job") or are extracted from --job-file/--text. Your skills are
given with --skill Name=Level, --skills-file or --interactive.`,
	Args: cobra.NoArgs,
	RunE: runAnalyzeGap,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.AddCommand(analyzeJobCmd, analyzeGapCmd)

	analyzeCmd.PersistentFlags().StringP("output", "o", outputJSON, "output format: json or text")

	analyzeJobCmd.Flags().StringP("text", "t", "", "job description text")
	analyzeJobCmd.Flags().StringP("file", "f", "", "file with the job description, - for stdin")

	analyzeGapCmd.Flags().StringP("required", "r", "", "JSON file with required skills")
	analyzeGapCmd.Flags().String("job-file", "", "file with a job description to extract required skills from")
	analyzeGapCmd.Flags().StringP("text", "t", "", "job description text to extract required skills from")
	analyzeGapCmd.Flags().StringArrayP("skill", "s", nil, "your skill as Name=Level, can be repeated")
	analyzeGapCmd.Flags().String("skills-file", "", "JSON file with your skills: [{\"name\": \"Go\", \"level\": \"Advanced\"}]")
	analyzeGapCmd.Flags().BoolP("interactive", "i", false, "ask for your level in every required skill you did not list")
	analyzeGapCmd.MarkFlagsMutuallyExclusive("required", "job-file", "text")
}

func runAnalyzeJob(cmd *cobra.Command, _ []string) error {
	output, _ := cmd.Flags().GetString("output")
	if err := validateOutput(output); err != nil {
		return err
	}

	l, extractor, err := prepare()
	if err != nil {
		return err
	}
	defer l.Sync()

	text, _ := cmd.Flags().GetString("text")
	file, _ := cmd.Flags().GetString("file")

	jobText, err := readText(cmd.InOrStdin(), text, file)
	if err != nil {
		return err
	}
	if strings.TrimSpace(jobText) == "" {
		return errors.New("job description is required")
	}

	analysis := extractor.AnalyzeJob(jobText)

	l.Info("analyzed job description", append(logger.JobFields(analysis),
		zap.String("preview", utils.TruncateForLog(jobText, previewLength)))...)

	if output == outputText {
		renderJob(cmd.OutOrStdout(), analysis)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), analysis)
}

func runAnalyzeGap(cmd *cobra.Command, _ []string) error {
	output, _ := cmd.Flags().GetString("output")
	if err := validateOutput(output); err != nil {
		return err
	}

	l, extractor, err := prepare()
	if err != nil {
		return err
	}
	defer l.Sync()

	required, err := requiredSkills(cmd, extractor)
	if err != nil {
		return err
	}

	user, err := userSkills(cmd, required)
	if err != nil {
		return err
	}

	report, err := matching.AnalyzeGap(required, user)
	if err != nil {
		if errors.Is(err, matching.ErrInvalidInput) {
			return fmt.Errorf("%w (no known skills found in the job description?)", err)
		}
		return err
	}

	l.Info("analyzed skill gap", logger.GapFields(report)...)

	if output == outputText {
		renderGap(cmd.OutOrStdout(), report)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), report)
}

func prepare() (*zap.Logger, *matching.Extractor, error) {
	l, err := newLogger()
	if err != nil {
		return nil, nil, err
	}

	config, err := getConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("getting a config: %w", err)
	}

	_, extractor, err := newEngine(config, l)
	if err != nil {
		return nil, nil, err
	}

	return l, extractor, nil
}

func requiredSkills(cmd *cobra.Command, extractor *matching.Extractor) ([]matching.ExtractedSkill, error) {
	if path, _ := cmd.Flags().GetString("required"); path != "" {
		return readRequiredFile(path)
	}

	text, _ := cmd.Flags().GetString("text")
	file, _ := cmd.Flags().GetString("job-file")
	if text == "" && file == "" {
		return nil, errors.New("required skills are needed: use --required, --job-file or --text")
	}

	jobText, err := readText(cmd.InOrStdin(), text, file)
	if err != nil {
		return nil, err
	}

	return extractor.Extract(jobText), nil
}

// userSkills collects the user's skills from flags, then the skills file, then
// interactive answers. Earlier sources win for duplicate names.
func userSkills(cmd *cobra.Command, required []matching.ExtractedSkill) ([]matching.UserSkill, error) {
	values, _ := cmd.Flags().GetStringArray("skill")
	skills, err := parseUserSkills(values)
	if err != nil {
		return nil, err
	}

	if path, _ := cmd.Flags().GetString("skills-file"); path != "" {
		fromFile, err := readUserSkillsFile(path)
		if err != nil {
			return nil, err
		}
		skills = append(skills, fromFile...)
	}

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		answers, err := askLevels(required, skills)
		if err != nil {
			return nil, err
		}
		skills = append(skills, answers...)
	}

	return skills, nil
}

// askLevels asks about every required skill not already declared.
func askLevels(required []matching.ExtractedSkill, declared []matching.UserSkill) ([]matching.UserSkill, error) {
	known := make(map[string]bool, len(declared))
	for _, s := range declared {
		known[s.Name] = true
	}

	var answers []matching.UserSkill
	for _, skill := range required {
		if known[skill.Name] {
			continue
		}
		known[skill.Name] = true

		level, err := pickLevel(skill)
		if errors.Is(err, errStopAsking) {
			break
		}
		if err != nil {
			return nil, err
		}
		if level == "" {
			continue
		}

		answers = append(answers, matching.UserSkill{Name: skill.Name, Level: level})
	}

	return answers, nil
}

func promptLevel(skill matching.ExtractedSkill) (string, error) {
	items := []string{PromptDontHave}
	for _, level := range catalog.Levels {
		items = append(items, string(level))
	}
	items = append(items, PromptSkipRest)

	prompt := promptui.Select{
		Label: fmt.Sprintf("Your level in %s (%s, market expects %s)", skill.Name, skill.Category, skill.Level),
		Items: items,
	}

	_, choice, err := prompt.Run()
	if err != nil {
		return "", err
	}

	switch choice {
	case PromptDontHave:
		return "", nil
	case PromptSkipRest:
		return "", errStopAsking
	default:
		return choice, nil
	}
}
