package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Source identifies which store a field is read from.
type Source int

const (
	// Primary is the main settings document.
	Primary Source = iota

	// Override is the message override document.
	Override
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case Primary:
		return "primary"
	case Override:
		return "override"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// Field describes one attribute of a record of type R.
type Field[R any] struct {
	// Name is the field's key in both stores.
	Name string

	// Source is the store the field is loaded from.
	Source Source

	get  func(*R) (any, bool)
	set  func(*R, any) error
	kind string
}

// Get returns the field's value in rec in its persisted form.
// The second result is false when the value is absent (a nil pointer or slice).
func (f Field[R]) Get(rec *R) (any, bool) {
	return f.get(rec)
}

// Set coerces raw to the field's type and assigns it in rec.
// rec is left unchanged when coercion fails.
func (f Field[R]) Set(rec *R, raw any) error {
	if err := f.set(rec, raw); err != nil {
		return fmt.Errorf("field %s: %w", f.Name, err)
	}
	return nil
}

// Kind returns a short description of the field's type.
func (f Field[R]) Kind() string {
	return f.kind
}

// Format renders the field's value in rec for display.
func (f Field[R]) Format(rec *R) string {
	value, ok := f.get(rec)
	if !ok {
		return "<unset>"
	}
	if list, ok := value.([]string); ok {
		return "[" + strings.Join(list, ", ") + "]"
	}
	return fmt.Sprint(value)
}

// Var declares a field of any type T. ptr addresses the field inside a record,
// coerce converts a raw store value into T, and encode converts T into the
// value written to the store (nil means T is written unchanged).
func Var[R, T any](name string, src Source, kind string, ptr func(*R) *T, coerce func(any) (T, error), encode func(T) any) Field[R] {
	return Field[R]{
		Name:   name,
		Source: src,
		kind:   kind,
		get: func(rec *R) (any, bool) {
			value := *ptr(rec)
			if encode != nil {
				return encode(value), true
			}
			return value, true
		},
		set: func(rec *R, raw any) error {
			value, err := coerce(raw)
			if err != nil {
				return err
			}
			*ptr(rec) = value
			return nil
		},
	}
}

// Ptr declares an optional field. A nil pointer is treated as absent.
func Ptr[R, T any](name string, src Source, kind string, ptr func(*R) **T, coerce func(any) (T, error)) Field[R] {
	return Field[R]{
		Name:   name,
		Source: src,
		kind:   kind,
		get: func(rec *R) (any, bool) {
			p := *ptr(rec)
			if p == nil {
				return nil, false
			}
			return *p, true
		},
		set: func(rec *R, raw any) error {
			value, err := coerce(raw)
			if err != nil {
				return err
			}
			*ptr(rec) = &value
			return nil
		},
	}
}

// Int declares an integer field.
func Int[R any](name string, src Source, ptr func(*R) *int) Field[R] {
	return Var(name, src, "int", ptr, cast.ToIntE, nil)
}

// Float declares a floating point field.
func Float[R any](name string, src Source, ptr func(*R) *float64) Field[R] {
	return Var(name, src, "float", ptr, cast.ToFloat64E, nil)
}

// Bool declares a boolean field.
func Bool[R any](name string, src Source, ptr func(*R) *bool) Field[R] {
	return Var(name, src, "bool", ptr, cast.ToBoolE, nil)
}

// String declares a string field. Only scalar values are accepted.
func String[R any](name string, src Source, ptr func(*R) *string) Field[R] {
	return Var(name, src, "string", ptr, toScalarString, nil)
}

// Duration declares a duration field, persisted in time.Duration string form.
func Duration[R any](name string, src Source, ptr func(*R) *time.Duration) Field[R] {
	return Var(name, src, "duration", ptr, cast.ToDurationE, func(d time.Duration) any {
		return d.String()
	})
}

// StringSlice declares a list field. A nil slice is treated as absent.
func StringSlice[R any](name string, src Source, ptr func(*R) *[]string) Field[R] {
	f := Var(name, src, "list", ptr, toStringSlice, nil)
	f.get = func(rec *R) (any, bool) {
		list := *ptr(rec)
		if list == nil {
			return nil, false
		}
		return append([]string(nil), list...), true
	}
	return f
}

func toScalarString(raw any) (string, error) {
	switch raw.(type) {
	case []any, []string, map[string]any:
		return "", fmt.Errorf("unable to cast %#v of type %T to string", raw, raw)
	}
	return cast.ToStringE(raw)
}

func toStringSlice(raw any) ([]string, error) {
	switch v := raw.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, err := toScalarString(item)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	case []string:
		return append([]string(nil), v...), nil
	case string:
		return []string{v}, nil
	default:
		return nil, fmt.Errorf("unable to cast %#v of type %T to []string", raw, raw)
	}
}
