package compose

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cameronsjo/stevedore/internal/secrets"
)

// configHeader is the subset of the config file the loader itself needs.
type configHeader struct {
	Templates []string `yaml:"templates"`
}

// LoadDocuments reads the config file and its templates and returns the
// ordered document sequence: bootstrap first, templates in listed order,
// the config itself last. Templates are resolved against roots in order;
// the first root containing the file wins.
func LoadDocuments(configPath string, roots []string) ([]Document, error) {
	raw, err := secrets.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", configPath, err)
	}

	var header configHeader
	if err := yaml.Unmarshal(raw, &header); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
	}

	docs := []Document{{Name: BootstrapName, Raw: bootstrapDocument}}

	for _, name := range header.Templates {
		doc, err := resolveTemplate(name, roots)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	// Config file last, highest precedence.
	docs = append(docs, Document{Name: configPath, Raw: string(raw)})

	return docs, nil
}

// resolveTemplate finds name under the first root that contains it.
func resolveTemplate(name string, roots []string) (Document, error) {
	for _, root := range roots {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		raw, err := secrets.ReadFile(path)
		if err != nil {
			return Document{}, fmt.Errorf("read template %s: %w", path, err)
		}
		return Document{Name: path, Raw: string(raw)}, nil
	}

	return Document{}, fmt.Errorf("template %q not found in any template root: %s",
		name, strings.Join(roots, ", "))
}
