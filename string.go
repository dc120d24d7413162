package localized

import (
	"context"
	"maps"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
)

// NaiveKey is the reserved entry key holding input that could not be parsed
// as a locale mapping. Its value acts as a universal fallback and is excluded
// from region-sibling matching.
const NaiveKey = "_naive"

// String is a text value carrying one translation per locale. It is backed
// either by an insertion-ordered set of locale->text entries or by a deferred
// Message that renders a bundle translation on demand.
//
// The zero value and a nil *String are both valid and resolve to "".
type String struct {
	keys   []string
	values map[string]string
	msg    *Message
}

// Pair is a single locale->text entry used by FromPairs.
type Pair struct {
	Locale string
	Text   string
}

// New builds a String from a locale->text map. Entries may hold empty
// strings; they count as present but unfilled. Since Go maps carry no order,
// keys are sorted lexicographically to keep resolution deterministic; use
// Parse or FromPairs when entry order matters.
func New(entries map[string]string) *String {
	s := &String{}
	if entries != nil {
		s.values = make(map[string]string, len(entries))
	}
	for _, k := range slices.Sorted(maps.Keys(entries)) {
		s.set(k, entries[k])
	}
	return s
}

// FromPairs builds a String preserving the order of the supplied entries.
func FromPairs(pairs ...Pair) *String {
	s := &String{}
	for _, p := range pairs {
		s.set(p.Locale, p.Text)
	}
	return s
}

// Parse builds a String from a raw storage representation.
//
// A JSON object becomes the entry set, in document order. JSON null becomes
// an empty String. Anything else, including malformed JSON, is kept verbatim
// under NaiveKey. Parse never fails.
func Parse(raw string) *String {
	if !gjson.Valid(raw) {
		return naive(raw)
	}
	res := gjson.Parse(raw)
	if res.Type == gjson.Null {
		return &String{}
	}
	if !res.IsObject() {
		return naive(raw)
	}
	s := &String{values: make(map[string]string)}
	res.ForEach(func(key, value gjson.Result) bool {
		s.set(key.String(), value.String())
		return true
	})
	return s
}

func naive(raw string) *String {
	s := &String{}
	s.set(NaiveKey, raw)
	return s
}

// set adds or overwrites an entry, keeping first-insertion order for keys.
func (s *String) set(locale, text string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[locale]; !ok {
		s.keys = append(s.keys, locale)
	}
	s.values[locale] = text
}

// Set adds or replaces the translation for locale. It has no effect on a
// deferred message String.
func (s *String) Set(locale, text string) {
	if s == nil || s.msg != nil {
		return
	}
	s.set(locale, text)
}

// Get returns the raw entry stored for locale without any fallback. On a
// deferred message String every locale is considered present and the message
// is rendered for it.
func (s *String) Get(locale string) (string, bool) {
	if s == nil {
		return "", false
	}
	if s.msg != nil {
		return s.msg.Render(locale), true
	}
	v, ok := s.values[locale]
	return v, ok
}

// Locales returns the entry keys in insertion order. A deferred message
// String has no materialized entries and returns nil.
func (s *String) Locales() []string {
	if s == nil || s.msg != nil {
		return nil
	}
	return slices.Clone(s.keys)
}

// Message returns the deferred message backing this String, if any.
func (s *String) Message() *Message {
	if s == nil {
		return nil
	}
	return s.msg
}

// Localize returns the best translation for locale, using the default
// manager's locale as the system fallback. See Manager.Localize for the
// resolution order.
func (s *String) Localize(locale string) string {
	return Default().Localize(s, locale)
}

// Resolve returns the best translation for the active locale carried in ctx,
// falling back to the default manager's locale. Equivalent to
// Default().Resolve.
func (s *String) Resolve(ctx context.Context) string {
	return Default().Resolve(ctx, s)
}

// String implements fmt.Stringer using the default manager's locale.
func (s *String) String() string {
	return s.Resolve(context.Background())
}

// localize implements the resolution chain shared by every entry point:
// exact locale, base language, first filled region sibling, the system
// default locale, then the first filled entry in insertion order. Entries
// holding empty strings are present but never selected.
func (s *String) localize(locale, systemDefault string) string {
	if s == nil {
		return ""
	}
	if s.msg != nil {
		return s.msg.Render(locale)
	}
	if len(s.keys) == 0 {
		return ""
	}

	base, _, _ := strings.Cut(locale, "-")

	if v := s.values[locale]; v != "" {
		return v
	}
	if v := s.values[base]; v != "" {
		return v
	}

	// Region siblings share the base language but are not the requested
	// locale. A sibling set whose values are all empty is skipped entirely
	// rather than matched as empty.
	for _, k := range s.keys {
		if k == NaiveKey || k == locale {
			continue
		}
		if kb, _, _ := strings.Cut(k, "-"); kb != base {
			continue
		}
		if v := s.values[k]; v != "" {
			return v
		}
	}

	if v := s.values[systemDefault]; v != "" {
		return v
	}
	for _, k := range s.keys {
		if v := s.values[k]; v != "" {
			return v
		}
	}
	return ""
}

// IsZero reports whether the String holds no usable translation: no entries
// at all, or only empty ones. A deferred message String is never zero.
func (s *String) IsZero() bool {
	if s == nil {
		return true
	}
	if s.msg != nil {
		return false
	}
	for _, k := range s.keys {
		if s.values[k] != "" {
			return false
		}
	}
	return true
}

// Map replaces every entry value with f(value) in place, keeping keys and
// their order. It reports whether the transform was applied; a deferred
// message String is not transformable and is left untouched.
func (s *String) Map(f func(string) string) bool {
	if s == nil || s.msg != nil {
		return false
	}
	for _, k := range s.keys {
		s.values[k] = f(s.values[k])
	}
	return true
}

// Equal reports whether both strings hold the same entries, regardless of
// entry order. Deferred message strings compare by message identity.
func (s *String) Equal(o *String) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.msg != nil || o.msg != nil {
		return s.msg == o.msg
	}
	return maps.Equal(s.values, o.values)
}

// Compare orders two strings by their resolved text under the active locale
// in ctx, following strings.Compare semantics.
func (s *String) Compare(ctx context.Context, o *String) int {
	return strings.Compare(s.Resolve(ctx), o.Resolve(ctx))
}
