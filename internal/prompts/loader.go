// Package prompts embeds the enhancement prompt templates. Templates
// live in JSON files keyed by prompt name and carry {{.Key}}
// placeholders that Format fills in.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// loaded caches parsed prompt files by filename
var loaded sync.Map // map[string]map[string]string

// Get returns the named prompt template from a bundled file. The
// filename carries no path (e.g. "enhancement.json").
func Get(filename, key string) (string, error) {
	templates, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	template, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt %q not found in %s", key, filename)
	}
	return template, nil
}

// MustGet is Get for prompts that ship inside the binary: a missing
// file or key there is a build defect, so it panics rather than
// returning an error.
func MustGet(filename, key string) string {
	template, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format substitutes {{.Key}} placeholders with the given values.
// Placeholders without a value stay in place.
func Format(template string, vars map[string]string) string {
	for key, value := range vars {
		template = strings.ReplaceAll(template, "{{."+key+"}}", value)
	}
	return template
}

func loadFile(filename string) (map[string]string, error) {
	if cached, ok := loaded.Load(filename); ok {
		return cached.(map[string]string), nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var templates map[string]string
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	loaded.Store(filename, templates)
	return templates, nil
}
