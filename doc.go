// Package localized provides a locale-aware string type for values that
// carry one translation per language, such as user-entered labels stored as
// a JSON object of locale codes to text.
//
// A String resolves to the best available translation for a requested
// locale, falling back through the base language, region siblings, the
// configured default locale and finally any filled translation. It parses
// from and serializes to a canonical JSON object, plugs into database
// columns as a driver.Valuer/sql.Scanner (with GORM dialect support), and
// can defer to a go-i18n bundle message for statically translated defaults.
//
// The active locale travels in a context.Context; the interceptors
// sub-packages feed it from HTTP headers and gRPC metadata.
package localized
