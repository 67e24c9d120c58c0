package messaging

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"text/template"

	yaml "gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var defaultFiles embed.FS

// Catalog holds message templates keyed by dotted path. Every key maps to
// one or more alternative lines.
type Catalog struct {
	mu   sync.RWMutex
	data map[string][]string
}

// NewCatalog loads the embedded messages and then applies overrides from
// overrideDir if provided
func NewCatalog(overrideDir string) (*Catalog, error) {
	c := &Catalog{data: make(map[string][]string)}

	raw, err := fs.ReadFile(defaultFiles, "messages.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded messages: %w", err)
	}
	if err := c.applyYAML(raw); err != nil {
		return nil, fmt.Errorf("parse embedded messages: %w", err)
	}

	if strings.TrimSpace(overrideDir) != "" {
		if err := c.applyDir(overrideDir); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) applyDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read message dir: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if err := c.applyYAML(b); err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
	}
	return nil
}

func (c *Catalog) applyYAML(b []byte) error {
	var m map[string]any
	if err := yaml.Unmarshal(b, &m); err != nil {
		return err
	}

	flat := make(map[string][]string)
	if err := flatten(m, "", flat); err != nil {
		return err
	}

	c.mu.Lock()
	for k, v := range flat {
		c.data[k] = v
	}
	c.mu.Unlock()
	return nil
}

// flatten turns nested maps into dotted keys. Leaves are a string or a list
// of strings.
func flatten(src any, prefix string, out map[string][]string) error {
	switch v := src.(type) {
	case map[string]any:
		for k, vv := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			if err := flatten(vv, key, out); err != nil {
				return err
			}
		}
		return nil
	case string:
		if prefix == "" {
			return errors.New("string value without key")
		}
		out[prefix] = []string{v}
		return nil
	case []any:
		lines := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("unsupported value at %s[%d]: %T", prefix, i, item)
			}
			lines = append(lines, s)
		}
		out[prefix] = lines
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported value at %s: %T", prefix, v)
	}
}

// Lines returns how many alternatives key has
func (c *Catalog) Lines(key string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data[key])
}

// Render executes alternative n of key with data. Missing fields are errors.
func (c *Catalog) Render(key string, n int, data any) (string, error) {
	c.mu.RLock()
	lines := c.data[key]
	c.mu.RUnlock()

	if len(lines) == 0 {
		return "", fmt.Errorf("template not found: %s", key)
	}
	if n < 0 || n >= len(lines) {
		n = 0
	}

	t, err := template.New(key).Option("missingkey=error").Parse(lines[n])
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
