// Package config binds typed settings records to persisted key-value documents.
//
// A record is described by a Schema: an ordered list of field descriptors, each
// tagged with the Source it is read from. The Binder copies values between the
// record and two stores (the primary settings document and the message
// override document), falling back to the record's defaults whenever a value
// is absent or cannot be coerced.
//
// # Example Usage
//
//	binder := config.NewBinder(settings.Schema(), config.Options{
//	    Primary:       config.NewDocument(),
//	    Overrides:     config.NewDocument(),
//	    PrimaryPath:   paths.Primary,
//	    OverridesPath: paths.Overrides,
//	    Logger:        logger,
//	})
//
//	s := binder.Reload()
//	s.SwapInterval = 300
//	_ = binder.Save(s)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store is a flat key-value document keyed by field name.
type Store interface {
	// Get returns the value stored under key, or false when it is absent.
	Get(key string) (any, bool)

	// Set stores value under key, replacing any previous value.
	Set(key string, value any)

	// Load replaces the contents with the document at path.
	// On failure the store is left empty.
	Load(path string) error

	// Save persists the contents to path.
	Save(path string) error
}

// Document is a YAML-backed Store. Keys are kept exactly as written.
type Document struct {
	values map[string]any
	mu     sync.RWMutex
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		values: make(map[string]any),
	}
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	value, ok := d.values[key]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// Set stores value under key.
func (d *Document) Set(key string, value any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values[key] = value
}

// Keys returns all keys in sorted order.
func (d *Document) Keys() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	keys := make([]string, 0, len(d.values))
	for key := range d.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Load reads the YAML document at path.
func (d *Document) Load(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.values = make(map[string]any)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if values != nil {
		d.values = values
	}
	return nil
}

// Save writes the document to path as YAML using an atomic rename.
func (d *Document) Save(path string) error {
	d.mu.RLock()
	data, err := yaml.Marshal(d.values)
	d.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	return nil
}
