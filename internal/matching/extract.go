package matching

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spigell/skillsync/internal/catalog"
)

// Mode selects how catalog names are searched for in text.
type Mode string

const (
	// ModeSubstring matches a name anywhere in the text, ignoring case.
	// "Java" therefore also matches inside "JavaScript".
	ModeSubstring Mode = "substring"
	// ModeWord additionally requires the name not to be glued to other
	// letters or digits on either side.
	ModeWord Mode = "word"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeSubstring:
		return ModeSubstring, nil
	case ModeWord:
		return ModeWord, nil
	default:
		return "", fmt.Errorf("%w: unknown extraction mode %q", ErrInvalidInput, s)
	}
}

type matcher struct {
	def   catalog.Definition
	lower string
	re    *regexp.Regexp
}

// Extractor scans text for catalog skill names. It is immutable and safe for
// concurrent use.
type Extractor struct {
	mode     Mode
	matchers []matcher
}

func NewExtractor(c *catalog.Catalog, mode Mode) (*Extractor, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: catalog is nil", ErrInvalidInput)
	}
	if mode == "" {
		mode = ModeSubstring
	}
	if mode != ModeSubstring && mode != ModeWord {
		return nil, fmt.Errorf("%w: unknown extraction mode %q", ErrInvalidInput, mode)
	}

	entries := c.Entries()
	e := &Extractor{
		mode:     mode,
		matchers: make([]matcher, 0, len(entries)),
	}

	for _, def := range entries {
		m := matcher{def: def, lower: strings.ToLower(def.Name)}
		if mode == ModeWord {
			re, err := wordPattern(def.Name)
			if err != nil {
				return nil, fmt.Errorf("compiling pattern for %q: %w", def.Name, err)
			}
			m.re = re
		}
		e.matchers = append(e.matchers, m)
	}

	return e, nil
}

func (e *Extractor) Mode() Mode {
	return e.mode
}

// Extract returns every catalog skill whose name occurs in text, in catalog
// order. Blank text yields an empty slice.
func (e *Extractor) Extract(text string) []ExtractedSkill {
	skills := make([]ExtractedSkill, 0)
	if strings.TrimSpace(text) == "" {
		return skills
	}

	lower := strings.ToLower(text)
	for _, m := range e.matchers {
		if !m.matches(lower) {
			continue
		}
		skills = append(skills, newExtractedSkill(m.def).clone())
	}

	return skills
}

// AnalyzeJob extracts skills from text and groups them by category.
func (e *Extractor) AnalyzeJob(text string) *JobAnalysis {
	skills := e.Extract(text)
	return &JobAnalysis{
		Skills:      skills,
		TotalSkills: len(skills),
		Categories:  Categorize(skills),
	}
}

func (m matcher) matches(lowerText string) bool {
	if m.re != nil {
		return m.re.MatchString(lowerText)
	}
	return strings.Contains(lowerText, m.lower)
}

// wordPattern builds a boundary-aware pattern. Boundaries are only required on
// sides where the name itself starts or ends with a word character, so names
// like "C++" or ".NET" still match.
func wordPattern(name string) (*regexp.Regexp, error) {
	lower := strings.ToLower(name)

	first, _ := utf8.DecodeRuneInString(lower)
	last, _ := utf8.DecodeLastRuneInString(lower)

	var b strings.Builder
	if isWordRune(first) {
		b.WriteString(`(?:^|[^\p{L}\p{N}_])`)
	}
	b.WriteString(regexp.QuoteMeta(lower))
	if isWordRune(last) {
		b.WriteString(`(?:$|[^\p{L}\p{N}_])`)
	}

	return regexp.Compile(b.String())
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
