package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

// SaveTemplate writes a face template to a JSON file.
func SaveTemplate(path string, t model.Template) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create template directory: %w", err)
	}
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal template: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}

// LoadTemplate reads a face template. Besides the template object it
// accepts a bare array of rows, each an array of one-letter strings.
func LoadTemplate(path string) (model.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Template{}, fmt.Errorf("failed to read template: %w", err)
	}
	return ParseTemplate(data)
}

// ParseTemplate decodes template JSON in either accepted form.
func ParseTemplate(data []byte) (model.Template, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return model.Template{}, fmt.Errorf("%w: empty file", model.ErrInvalidTemplate)
	}

	var t model.Template
	if data[0] == '[' {
		if err := json.Unmarshal(data, &t.Cells); err != nil {
			return model.Template{}, fmt.Errorf("%w: %v", model.ErrInvalidTemplate, err)
		}
	} else if err := json.Unmarshal(data, &t); err != nil {
		return model.Template{}, fmt.Errorf("%w: %v", model.ErrInvalidTemplate, err)
	}

	if rows, cols := t.Size(); rows == 0 || cols == 0 {
		return model.Template{}, fmt.Errorf("%w: no cells", model.ErrInvalidTemplate)
	}
	return t, nil
}

// DefaultTemplatePath returns the default file path for the template library.
// This is located at ~/.wortuhr/templates.json.
func DefaultTemplatePath() string {
	return filepath.Join(DefaultConfigDir(), "templates.json")
}

// SaveTemplates writes the template library to a JSON file.
func SaveTemplates(path string, store model.TemplateStore) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create template directory: %w", err)
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal templates: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write templates: %w", err)
	}
	return nil
}

// LoadTemplates reads the template library from a JSON file.
// If the file does not exist, returns an empty store.
func LoadTemplates(path string) (model.TemplateStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewTemplateStore(), nil
		}
		return model.TemplateStore{}, fmt.Errorf("failed to read templates: %w", err)
	}
	var store model.TemplateStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.TemplateStore{}, fmt.Errorf("failed to parse templates: %w", err)
	}
	if store.Templates == nil {
		store.Templates = []model.Template{}
	}
	return store, nil
}
