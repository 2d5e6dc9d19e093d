package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pterm/pterm"
)

// ErrPersist is returned by Save when the primary document could not be written.
var ErrPersist = errors.New("failed to persist settings")

// Schema describes a record type: how to build one at defaults and which
// fields it carries, in declaration order.
type Schema[R any] struct {
	New    func() *R
	Fields []Field[R]
}

// Lookup returns the field with the given name.
func (s Schema[R]) Lookup(name string) (Field[R], bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field[R]{}, false
}

// Names returns the field names in declaration order.
func (s Schema[R]) Names() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Options configures a Binder.
type Options struct {
	Primary       Store
	Overrides     Store
	PrimaryPath   string
	OverridesPath string
	Logger        *pterm.Logger
}

// Binder synchronizes records of type R with the primary and override stores.
// Load, Reload and Save are serialized.
type Binder[R any] struct {
	schema Schema[R]
	opts   Options
	mu     sync.Mutex
}

// NewBinder creates a binder for schema. Missing stores are replaced with
// empty documents and a missing logger with pterm's default logger.
func NewBinder[R any](schema Schema[R], opts Options) *Binder[R] {
	if opts.Primary == nil {
		opts.Primary = NewDocument()
	}
	if opts.Overrides == nil {
		opts.Overrides = NewDocument()
	}
	if opts.Logger == nil {
		opts.Logger = &pterm.DefaultLogger
	}
	return &Binder[R]{
		schema: schema,
		opts:   opts,
	}
}

// Schema returns the binder's schema.
func (b *Binder[R]) Schema() Schema[R] {
	return b.schema
}

// Relocate points the binder at new document locations.
// The next Load or Reload reads from them.
func (b *Binder[R]) Relocate(primaryPath, overridesPath string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.opts.PrimaryPath = primaryPath
	b.opts.OverridesPath = overridesPath
}

// PrimaryPath returns the location of the primary document.
func (b *Binder[R]) PrimaryPath() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.opts.PrimaryPath
}

// Defaults returns a fresh record at default values.
func (b *Binder[R]) Defaults() *R {
	return b.schema.New()
}

// Load builds a record from the stores. The override document is re-read from
// disk; when it cannot be loaded every override field keeps its default.
// Absent values and values that cannot be coerced leave the field at default.
func (b *Binder[R]) Load() *R {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.load()
}

// Reload re-reads the primary document from disk before loading.
func (b *Binder[R]) Reload() *R {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.opts.PrimaryPath != "" {
		if err := b.opts.Primary.Load(b.opts.PrimaryPath); err != nil {
			b.opts.Logger.Warn("Failed to load settings, using defaults",
				b.opts.Logger.Args("path", b.opts.PrimaryPath, "error", err))
		}
	}
	return b.load()
}

func (b *Binder[R]) load() *R {
	rec := b.schema.New()
	log := b.opts.Logger

	if b.opts.OverridesPath != "" {
		if err := b.opts.Overrides.Load(b.opts.OverridesPath); err != nil {
			log.Warn("Failed to load messages, using default messages",
				log.Args("path", b.opts.OverridesPath, "error", err))
		}
	}

	for _, f := range b.schema.Fields {
		store := b.opts.Primary
		if f.Source == Override {
			store = b.opts.Overrides
		}

		b.bindField(rec, f, store)
	}

	return rec
}

// bindField copies one value from store into rec. A failure is logged and
// leaves the field at its default.
func (b *Binder[R]) bindField(rec *R, f Field[R], store Store) {
	log := b.opts.Logger

	defer func() {
		if r := recover(); r != nil {
			log.Warn("Failed to read setting, using default",
				log.Args("field", f.Name, "source", f.Source.String(), "error", fmt.Sprint(r)))
		}
	}()

	value, ok := store.Get(f.Name)
	if !ok {
		return
	}

	if err := f.Set(rec, value); err != nil {
		log.Warn("Invalid setting, using default",
			log.Args("field", f.Name, "source", f.Source.String(), "error", err))
	}
}

// Save writes every field of rec into the primary store and persists it.
// Absent values are replaced by their defaults. A nil rec saves the defaults.
// The in-memory store is kept when persisting fails.
func (b *Binder[R]) Save(rec *R) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	defaults := b.schema.New()
	if rec == nil {
		rec = defaults
	}

	for _, f := range b.schema.Fields {
		b.storeField(rec, defaults, f)
	}

	if b.opts.PrimaryPath == "" {
		return nil
	}

	if err := b.opts.Primary.Save(b.opts.PrimaryPath); err != nil {
		b.opts.Logger.Error("Failed to save settings",
			b.opts.Logger.Args("path", b.opts.PrimaryPath, "error", err))
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	return nil
}

// storeField writes one field of rec into the primary store.
func (b *Binder[R]) storeField(rec, defaults *R, f Field[R]) {
	log := b.opts.Logger

	defer func() {
		if r := recover(); r != nil {
			log.Warn("Failed to write setting",
				log.Args("field", f.Name, "error", fmt.Sprint(r)))
		}
	}()

	value, ok := f.Get(rec)
	if !ok {
		value, ok = f.Get(defaults)
		if !ok {
			return
		}
	}

	b.opts.Primary.Set(f.Name, value)
}
