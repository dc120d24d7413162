package localized

// Decompose splits the String into one editable value per given locale, in
// order. Missing entries come back empty. When the String holds text but
// none of it sits under the given locales, the best available translation is
// placed in the first slot so editing never starts from a blank form.
//
// Decompose performs no resolution beyond that fix-up; pair it with Compose
// to round-trip per-locale edits.
func (s *String) Decompose(locales []string) []string {
	out := make([]string, len(locales))
	if s == nil {
		return out
	}

	filled := false
	for i, locale := range locales {
		if v, ok := s.Get(locale); ok {
			out[i] = v
			if v != "" {
				filled = true
			}
		}
	}

	if !filled && len(locales) > 0 && !s.IsZero() {
		out[0] = s.Localize(locales[0])
	}

	return out
}

// Compose rebuilds a String from per-locale edited values, pairing each
// locale with the value at the same index. Missing values become empty
// entries, matching how an untouched form field submits.
func Compose(locales []string, values []string) *String {
	s := &String{}
	for i, locale := range locales {
		if i < len(values) {
			s.set(locale, values[i])
		} else {
			s.set(locale, "")
		}
	}
	return s
}
