package matching

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type CategoryGroup struct {
	Name   string
	Skills []ExtractedSkill
}

// Categories is an ordered mapping from category name to its skills. Groups
// keep the order in which their category first appeared. In JSON it is an
// object whose keys follow that order.
type Categories []CategoryGroup

// Categorize groups skills by category. Skills inside a group keep their
// input order, and categories without skills are not present.
func Categorize(skills []ExtractedSkill) Categories {
	categories := make(Categories, 0)
	index := make(map[string]int)

	for _, skill := range skills {
		idx, ok := index[skill.Category]
		if !ok {
			idx = len(categories)
			index[skill.Category] = idx
			categories = append(categories, CategoryGroup{Name: skill.Category})
		}
		categories[idx].Skills = append(categories[idx].Skills, skill.clone())
	}

	return categories
}

// Get returns the skills of a category.
func (c Categories) Get(name string) ([]ExtractedSkill, bool) {
	for _, group := range c {
		if group.Name == name {
			return group.Skills, true
		}
	}
	return nil, false
}

func (c Categories) Names() []string {
	names := make([]string, 0, len(c))
	for _, group := range c {
		names = append(names, group.Name)
	}
	return names
}

func (c Categories) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, group := range c {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(group.Name)
		if err != nil {
			return nil, err
		}

		skills := group.Skills
		if skills == nil {
			skills = []ExtractedSkill{}
		}
		value, err := json.Marshal(skills)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", group.Name, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *Categories) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*c = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("categories: expected object, got %v", tok)
	}

	groups := make(Categories, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("categories: unexpected key %v", tok)
		}

		var skills []ExtractedSkill
		if err := dec.Decode(&skills); err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
		groups = append(groups, CategoryGroup{Name: name, Skills: skills})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = groups
	return nil
}
