// Package filters holds the search-result filter form state.
//
// Values stay strings exactly as typed into the form (a price bound of "150"
// is stored as "150"); parsing happens in ParseCriteria, at the point where
// the filters are applied to a result set.
package filters

import (
	"net/url"
	"sort"
)

// Declared filter fields.
const (
	MinPrice  = "minPrice"
	MaxPrice  = "maxPrice"
	MinRating = "minRating"
	MaxRating = "maxRating"
)

// Fields lists the declared fields. They are always present in a Set.
var Fields = []string{MinPrice, MaxPrice, MinRating, MaxRating}

// Set maps a filter name to its raw value. Keys beyond Fields are allowed so
// new form controls work without a code change here.
type Set map[string]string

// Defaults returns a Set with every declared field empty.
func Defaults() Set {
	s := make(Set, len(Fields))
	for _, f := range Fields {
		s[f] = ""
	}
	return s
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Active reports whether any field has a value.
func (s Set) Active() bool {
	for _, v := range s {
		if v != "" {
			return true
		}
	}
	return false
}

// Store owns the filter Set of one view. It is not safe for concurrent use.
type Store struct {
	filters Set
}

// NewStore seeds the defaults with overrides; an override wins per field.
func NewStore(overrides Set) *Store {
	s := &Store{}
	s.SetFilters(overrides)
	return s
}

// Filters returns a copy of the current Set.
func (s *Store) Filters() Set {
	return s.filters.Clone()
}

// Get returns the raw value of one field, "" when unset.
func (s *Store) Get(name string) string {
	return s.filters[name]
}

// HandleFieldChange stores value under name and leaves every other field as
// it was. This is the form control's change handler: name and value come
// straight from the input element.
func (s *Store) HandleFieldChange(name, value string) {
	s.filters[name] = value
}

// SetFilters replaces the whole Set. Declared fields missing from set come
// back as "".
func (s *Store) SetFilters(set Set) {
	next := Defaults()
	for k, v := range set {
		next[k] = v
	}
	s.filters = next
}

// Reset clears every field back to the defaults.
func (s *Store) Reset() {
	s.filters = Defaults()
}

// ApplyQuery bulk-applies filters found in URL query parameters. Declared
// fields absent from the query are left untouched.
func (s *Store) ApplyQuery(q url.Values) {
	for _, f := range Fields {
		if _, ok := q[f]; ok {
			s.filters[f] = q.Get(f)
		}
	}
}

// Query renders the non-empty fields as URL query parameters.
func (s *Store) Query() url.Values {
	keys := make([]string, 0, len(s.filters))
	for k, v := range s.filters {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	q := make(url.Values, len(keys))
	for _, k := range keys {
		q.Set(k, s.filters[k])
	}
	return q
}
