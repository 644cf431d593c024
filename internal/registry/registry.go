// Package registry holds the static catalog of pre-canned prompt templates,
// grouped by document type.
package registry

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// ErrNotFound is returned for unknown group or template lookups.
var ErrNotFound = errors.New("not found in catalog")

// Template is one pre-canned instruction with its document heading.
type Template struct {
	ID      string `yaml:"id" json:"id"`
	Heading string `yaml:"heading" json:"heading"`
	Prompt  string `yaml:"prompt" json:"prompt"`
}

// Group is an ordered set of templates for one document type.
type Group struct {
	Name      string     `yaml:"name" json:"name"`
	Templates []Template `yaml:"templates" json:"templates"`
}

type catalog struct {
	Groups []Group `yaml:"groups"`
}

// Registry is the loaded, immutable catalog.
type Registry struct {
	groups []Group
	index  map[string]map[string]Template
}

// Load parses the embedded catalog.
func Load() (*Registry, error) {
	var cat catalog
	if err := yaml.Unmarshal(catalogYAML, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(cat.Groups) == 0 {
		return nil, fmt.Errorf("catalog has no groups")
	}

	index := make(map[string]map[string]Template, len(cat.Groups))
	for _, g := range cat.Groups {
		byID := make(map[string]Template, len(g.Templates))
		for _, t := range g.Templates {
			byID[t.ID] = t
		}
		index[g.Name] = byID
	}

	return &Registry{groups: cat.Groups, index: index}, nil
}

// Groups returns all groups in catalog order.
func (r *Registry) Groups() []Group {
	return r.groups
}

// Lookup returns the template for a group/id pair.
func (r *Registry) Lookup(group, id string) (Template, error) {
	byID, ok := r.index[group]
	if !ok {
		return Template{}, fmt.Errorf("group %q: %w", group, ErrNotFound)
	}
	t, ok := byID[id]
	if !ok {
		return Template{}, fmt.Errorf("template %q in group %q: %w", id, group, ErrNotFound)
	}
	return t, nil
}

// Templates returns a group's templates in catalog order.
func (r *Registry) Templates(group string) ([]Template, error) {
	for _, g := range r.groups {
		if g.Name == group {
			return g.Templates, nil
		}
	}
	return nil, fmt.Errorf("group %q: %w", group, ErrNotFound)
}
