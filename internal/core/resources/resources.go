// Package resources maps career domains to curated learning links
package resources

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed resources.yaml
var raw []byte

// Item is one learning link
type Item struct {
	Title string `yaml:"title" json:"title" example:"React Docs"`
	URL   string `yaml:"url"   json:"url"   example:"https://react.dev/"`
}

// Domain groups the links for one career domain
type Domain struct {
	Name      string `yaml:"name"      json:"domain"`
	Resources []Item `yaml:"resources" json:"resources"`
}

// Library is an immutable, ordered resource index
type Library struct {
	domains []Domain
	byName  map[string]int
}

// Parse decodes a YAML document of the shape {domains: [{name, resources}]}
// names are unique case-insensitively and every item needs a title and url
func Parse(b []byte) (*Library, error) {
	var doc struct {
		Domains []Domain `yaml:"domains"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("resources: %w", err)
	}
	lib := &Library{domains: doc.Domains, byName: make(map[string]int, len(doc.Domains))}
	for i, d := range doc.Domains {
		key := strings.ToLower(strings.TrimSpace(d.Name))
		if key == "" {
			return nil, fmt.Errorf("resources: domain %d has no name", i)
		}
		if _, dup := lib.byName[key]; dup {
			return nil, fmt.Errorf("resources: duplicate domain %q", d.Name)
		}
		for _, it := range d.Resources {
			if it.Title == "" || it.URL == "" {
				return nil, fmt.Errorf("resources: %q has an item without title or url", d.Name)
			}
		}
		lib.byName[key] = i
	}
	return lib, nil
}

var (
	once sync.Once
	std  *Library
)

// Default returns the embedded library; a broken embed is a build defect so it panics
func Default() *Library {
	once.Do(func() {
		lib, err := Parse(raw)
		if err != nil {
			panic(err)
		}
		std = lib
	})
	return std
}

// All returns every domain in document order
func (l *Library) All() []Domain {
	out := make([]Domain, len(l.domains))
	for i, d := range l.domains {
		out[i] = Domain{Name: d.Name, Resources: append([]Item(nil), d.Resources...)}
	}
	return out
}

// Lookup finds a domain by name, case-insensitively
func (l *Library) Lookup(name string) (Domain, bool) {
	i, ok := l.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Domain{}, false
	}
	d := l.domains[i]
	return Domain{Name: d.Name, Resources: append([]Item(nil), d.Resources...)}, true
}

// For returns the links of the first name that has any, in order
// used to attach resources to a ranked suggestion list
func (l *Library) For(names ...string) []Item {
	for _, n := range names {
		if d, ok := l.Lookup(n); ok && len(d.Resources) > 0 {
			return d.Resources
		}
	}
	return []Item{}
}
