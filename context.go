package localized

import (
	"context"
	"strings"
)

type contextKey string

func (c contextKey) String() string {
	return "localized/" + string(c)
}

const ctxKeyLocale = contextKey("localeKey")

// ToContext adds the caller's ordered locale preferences to the supplied
// context. The returned context scopes the override: the parent context is
// untouched, so the prior active locale is back in force the moment the
// derived context goes out of scope, failures included.
func ToContext(ctx context.Context, locales []string) context.Context {
	return context.WithValue(ctx, ctxKeyLocale, locales)
}

// FromContext extracts locale preferences from the supplied context if any exist.
func FromContext(ctx context.Context) []string {
	locales, ok := ctx.Value(ctxKeyLocale).([]string)
	if !ok {
		return nil
	}

	return locales
}

// WithLocale is the single-locale convenience form of ToContext.
func WithLocale(ctx context.Context, locale string) context.Context {
	return ToContext(ctx, []string{locale})
}

// ToMap writes locale preferences into a metadata map for carriers that only
// transport string maps, such as queue message headers.
func ToMap(m map[string]string, locales []string) map[string]string {
	m["lang"] = strings.Join(locales, ",")
	return m
}

// FromMap extracts locale preferences written by ToMap.
func FromMap(m map[string]string) []string {
	lang, ok := m["lang"]
	if !ok {
		return nil
	}
	return strings.Split(lang, ",")
}
