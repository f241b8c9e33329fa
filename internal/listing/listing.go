// Package listing defines the listing content model and loads listing files
// from disk. Listings are either markdown files with YAML frontmatter (title,
// tags, materials) where the body is the description, or plain YAML documents
// with an explicit description field.
package listing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Listing holds the four scoreable pieces of a product listing.
type Listing struct {
	Title       string   `yaml:"title" json:"title"`
	Tags        []string `yaml:"tags" json:"tags"`
	Description string   `yaml:"description" json:"description"`
	Materials   []string `yaml:"materials" json:"materials"`
}

// Frontmatter represents parsed frontmatter data.
type Frontmatter struct {
	Data map[string]interface{}
	Body string
}

// ParseFrontmatter extracts YAML frontmatter from markdown content. Content
// without a frontmatter block is returned whole as the body.
func ParseFrontmatter(content string) (*Frontmatter, error) {
	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		return &Frontmatter{
			Data: make(map[string]interface{}),
			Body: content,
		}, nil
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal([]byte(parts[1]), &data); err != nil {
		return nil, fmt.Errorf("invalid frontmatter: %w", err)
	}
	if data == nil {
		data = make(map[string]interface{})
	}

	return &Frontmatter{
		Data: data,
		Body: parts[2],
	}, nil
}

// Load reads a listing file, dispatching on extension. Missing fields are
// left empty; an empty listing is still scoreable.
func Load(path string) (*Listing, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading listing: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(content)
	default:
		return parseMarkdown(string(content))
	}
}

// parseYAML decodes a standalone YAML listing document.
func parseYAML(content []byte) (*Listing, error) {
	var l Listing
	if err := yaml.Unmarshal(content, &l); err != nil {
		return nil, fmt.Errorf("invalid listing document: %w", err)
	}
	return &l, nil
}

// parseMarkdown decodes a markdown listing: frontmatter carries title, tags
// and materials, the body is the description.
func parseMarkdown(content string) (*Listing, error) {
	fm, err := ParseFrontmatter(content)
	if err != nil {
		return nil, err
	}

	l := &Listing{
		Description: strings.TrimSpace(fm.Body),
	}
	if title, ok := fm.Data["title"].(string); ok {
		l.Title = title
	}
	l.Tags = stringSlice(fm.Data["tags"])
	l.Materials = stringSlice(fm.Data["materials"])
	return l, nil
}

// stringSlice converts a decoded YAML list into a string slice, skipping
// entries that are not strings.
func stringSlice(value interface{}) []string {
	items, ok := value.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
