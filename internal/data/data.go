// Package data is the seam between generators and the static reference
// tables they draw from (names, prefixes, top-level domains, months).
//
// Tables are JSON-shaped values: string, float64, bool, []any and
// map[string]any. Readers always receive deep copies, so a caller that
// mutates what it got back cannot corrupt the shared tables.
package data

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	apperrors "github.com/louisbranch/chance/internal/platform/errors"
)

// ErrNotFound indicates a table or a path inside a table does not exist.
var ErrNotFound = apperrors.New(apperrors.CodeDataNotFound, "reference table not found")

// ErrInvalid indicates a table does not have the expected shape.
var ErrInvalid = apperrors.New(apperrors.CodeDataInvalid, "reference table has unexpected shape")

// Provider resolves a table by name.
type Provider interface {
	Lookup(name string) (any, error)
}

// Tables is an in-memory Provider keyed by table name.
type Tables map[string]any

// Lookup returns the named table. The value is shared; use Get for a copy.
func (t Tables) Lookup(name string) (any, error) {
	value, ok := t[name]
	if !ok {
		return nil, apperrors.WithMetadata(apperrors.CodeDataNotFound,
			fmt.Sprintf("reference table %q not found", name),
			map[string]string{"table": name})
	}
	return value, nil
}

// Names lists the table names in sorted order.
func (t Tables) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

//go:embed tables.json
var embeddedTables []byte

var loadStatic = sync.OnceValues(func() (Tables, error) {
	return Decode(embeddedTables)
})

// Static returns a private copy of the embedded reference tables, so edits
// never reach other callers. It panics if the embedded file is malformed,
// which is a build defect.
func Static() Tables {
	tables, err := loadStatic()
	if err != nil {
		panic(fmt.Sprintf("decode embedded tables: %v", err))
	}
	out := make(Tables, len(tables))
	for name, value := range tables {
		out[name] = Clone(value)
	}
	return out
}

// Decode parses a JSON object of tables.
func Decode(raw []byte) (Tables, error) {
	var tables map[string]any
	if err := json.Unmarshal(raw, &tables); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDataInvalid, "decode tables", err)
	}
	return Tables(tables), nil
}

// Normalize converts an arbitrary Go value ([]string, map[string][]string,
// structs with json tags) into the JSON shape tables use.
func Normalize(value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDataInvalid, "encode table", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDataInvalid, "decode table", err)
	}
	return out, nil
}

// Get returns a deep copy of the named table.
func Get(p Provider, name string) (any, error) {
	value, err := p.Lookup(name)
	if err != nil {
		return nil, err
	}
	return Clone(value), nil
}

// Clone deep-copies a JSON-shaped value.
func Clone(value any) any {
	switch v := value.(type) {
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Clone(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = Clone(item)
		}
		return out
	case []string:
		return append([]string(nil), v...)
	default:
		return v
	}
}

// Path walks nested objects inside the named table and returns a copy of
// the value found there.
func Path(p Provider, name string, path ...string) (any, error) {
	value, err := p.Lookup(name)
	if err != nil {
		return nil, err
	}
	for _, key := range path {
		object, ok := value.(map[string]any)
		if !ok {
			return nil, apperrors.WithMetadata(apperrors.CodeDataInvalid,
				fmt.Sprintf("table %q: %q is not inside an object", name, key),
				map[string]string{"table": name, "key": key})
		}
		value, ok = object[key]
		if !ok {
			return nil, apperrors.WithMetadata(apperrors.CodeDataNotFound,
				fmt.Sprintf("table %q: key %q not found", name, key),
				map[string]string{"table": name, "key": key})
		}
	}
	return Clone(value), nil
}

// Strings resolves a list of strings inside the named table.
func Strings(p Provider, name string, path ...string) ([]string, error) {
	value, err := Path(p, name, path...)
	if err != nil {
		return nil, err
	}
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, apperrors.Newf(apperrors.CodeDataInvalid, "table %q: item %d is %T, want string", name, i, item)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, apperrors.Newf(apperrors.CodeDataInvalid, "table %q: got %T, want list of strings", name, value)
	}
}

// Records resolves a list of objects inside the named table.
func Records(p Provider, name string, path ...string) ([]map[string]any, error) {
	value, err := Path(p, name, path...)
	if err != nil {
		return nil, err
	}
	items, ok := value.([]any)
	if !ok {
		return nil, apperrors.Newf(apperrors.CodeDataInvalid, "table %q: got %T, want list of objects", name, value)
	}
	out := make([]map[string]any, len(items))
	for i, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			return nil, apperrors.Newf(apperrors.CodeDataInvalid, "table %q: item %d is %T, want object", name, i, item)
		}
		out[i] = record
	}
	return out, nil
}

// Overlay layers explicit overrides on top of a base provider. Overrides are
// scoped to the overlay instance; the base is never modified.
type Overlay struct {
	base      Provider
	overrides map[string]any
}

// NewOverlay wraps base. A nil base behaves as an empty provider.
func NewOverlay(base Provider) *Overlay {
	if base == nil {
		base = Tables{}
	}
	return &Overlay{base: base, overrides: map[string]any{}}
}

// Set replaces the named table for lookups through this overlay.
func (o *Overlay) Set(name string, value any) error {
	normalized, err := Normalize(value)
	if err != nil {
		return err
	}
	o.overrides[name] = normalized
	return nil
}

// SetAll replaces every table named in tables.
func (o *Overlay) SetAll(tables map[string]any) error {
	for name, value := range tables {
		if err := o.Set(name, value); err != nil {
			return fmt.Errorf("set %q: %w", name, err)
		}
	}
	return nil
}

// Lookup prefers overrides and falls back to the base provider.
func (o *Overlay) Lookup(name string) (any, error) {
	if value, ok := o.overrides[name]; ok {
		return value, nil
	}
	return o.base.Lookup(name)
}

var (
	_ Provider = Tables(nil)
	_ Provider = (*Overlay)(nil)
)
