package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const skillsKey = "skills"

var ErrNoSkills = errors.New("catalog file has no skills")

// Load reads a catalog file. Any format viper understands (yaml, json, toml)
// is accepted as long as it has a top-level "skills" list:
//
//	skills:
//	  - name: Go
//	    category: Backend
//	    level: Intermediate
//	    resources: ["A Tour of Go"]
func Load(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("catalog file path is empty")
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading catalog file %q: %w", path, err)
	}

	raw := v.Get(skillsKey)
	if raw == nil {
		return nil, fmt.Errorf("%q: %w", path, ErrNoSkills)
	}

	defs, err := decodeDefinitions(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding catalog file %q: %w", path, err)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("%q: %w", path, ErrNoSkills)
	}

	c, err := New(defs)
	if err != nil {
		return nil, fmt.Errorf("catalog file %q: %w", path, err)
	}

	return c, nil
}

func decodeDefinitions(raw any) ([]Definition, error) {
	var defs []Definition

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &defs,
		TagName:     "mapstructure",
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}

	return defs, nil
}
