package localized

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pitabwire/util"
	"golang.org/x/text/language"
)

// Manager carries the locale configuration a String cannot know by itself:
// the system default locale, the supported-locale list used when a deferred
// message is expanded, and the go-i18n bundle deferred messages render from.
// A Manager is immutable after construction and safe for concurrent use.
type Manager struct {
	bundle        *i18n.Bundle
	defaultLocale string
	supported     []string
	matcher       language.Matcher
	matchable     []string
}

// Option configures a Manager during construction.
type Option func(*Manager)

// WithSupportedLocales sets the ordered list of locales the application
// supports. It drives deferred message expansion and Match.
func WithSupportedLocales(locales ...string) Option {
	return func(m *Manager) {
		m.supported = locales
	}
}

// WithTranslations loads go-i18n message files from the given folder for the
// listed languages. Files that cannot be loaded are logged and skipped so a
// missing translation never takes the application down.
func WithTranslations(translationsFolder string, languages ...string) Option {
	return func(m *Manager) {
		if translationsFolder == "" {
			translationsFolder = "localization"
		}
		for _, lang := range languages {
			path := fmt.Sprintf("%s/messages.%v.toml", translationsFolder, lang)
			if _, err := m.bundle.LoadMessageFile(path); err != nil {
				logger := util.Log(context.Background()).WithField("path", path).WithError(err)
				logger.Warn("WithTranslations -- could not load message file")
			}
		}
	}
}

// WithBundle replaces the manager's bundle with an externally prepared one.
func WithBundle(bundle *i18n.Bundle) Option {
	return func(m *Manager) {
		m.bundle = bundle
	}
}

// NewManager creates a Manager whose resolution falls back to defaultLocale.
func NewManager(defaultLocale string, opts ...Option) *Manager {
	if defaultLocale == "" {
		defaultLocale = "en"
	}

	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}

	m := &Manager{
		defaultLocale: defaultLocale,
		bundle:        i18n.NewBundle(tag),
	}
	m.bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, opt := range opts {
		opt(m)
	}

	m.buildMatcher()

	return m
}

// NewManagerFromConfig creates a Manager from an environment-derived Config.
func NewManagerFromConfig(cfg *Config, opts ...Option) *Manager {
	base := []Option{WithSupportedLocales(cfg.SupportedLocales...)}
	if len(cfg.TranslationLanguages) > 0 {
		base = append(base, WithTranslations(cfg.TranslationsFolder, cfg.TranslationLanguages...))
	}
	return NewManager(cfg.DefaultLocale, append(base, opts...)...)
}

func (m *Manager) buildMatcher() {
	if len(m.supported) == 0 {
		return
	}
	tags := make([]language.Tag, 0, len(m.supported))
	matchable := make([]string, 0, len(m.supported))
	for _, loc := range m.supported {
		tag, err := language.Parse(loc)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		matchable = append(matchable, loc)
	}
	if len(tags) == 0 {
		return
	}
	m.matcher = language.NewMatcher(tags)
	m.matchable = matchable
}

// Bundle returns the translation bundle deferred messages render from.
func (m *Manager) Bundle() *i18n.Bundle {
	return m.bundle
}

// DefaultLocale returns the system default locale.
func (m *Manager) DefaultLocale() string {
	return m.defaultLocale
}

// SupportedLocales returns the configured supported-locale list in order.
func (m *Manager) SupportedLocales() []string {
	return slices.Clone(m.supported)
}

// Localize returns the best translation of s for the requested locale.
//
// Resolution tries, in order: the exact locale, its base language, the first
// filled region sibling in entry order, the manager's default locale, then
// the first filled entry anywhere. It never fails; with nothing usable it
// returns "".
func (m *Manager) Localize(s *String, locale string) string {
	return s.localize(locale, m.defaultLocale)
}

// Resolve localizes s for the active locale carried in ctx, falling back to
// the manager's default locale when the context carries none.
func (m *Manager) Resolve(ctx context.Context, s *String) string {
	for _, locale := range FromContext(ctx) {
		if locale != "" {
			return m.Localize(s, locale)
		}
	}
	return m.Localize(s, m.defaultLocale)
}

// Serialize renders s to its canonical storage form: a JSON object holding
// only the filled entries, keys sorted. A deferred message is expanded over
// the supported-locale list first.
func (m *Manager) Serialize(s *String) ([]byte, error) {
	return marshalEntries(s, m.supported)
}

// FromMessage creates a deferred String around the bundle message with the
// given ID. The message is rendered lazily per locale and only materialized
// into entries when serialized.
func (m *Manager) FromMessage(messageID string, opts ...MessageOption) *String {
	msg := &Message{
		bundle:    m.bundle,
		id:        messageID,
		supported: slices.Clone(m.supported),
	}
	for _, opt := range opts {
		opt(msg)
	}
	return &String{msg: msg}
}

// Match picks the best supported locale for the caller's ordered language
// preferences, falling back to the default locale when nothing is usable.
func (m *Manager) Match(preferences ...string) string {
	if m.matcher == nil {
		return m.defaultLocale
	}

	prefs := make([]language.Tag, 0, len(preferences))
	for _, p := range preferences {
		tag, err := language.Parse(p)
		if err != nil {
			continue
		}
		prefs = append(prefs, tag)
	}
	if len(prefs) == 0 {
		return m.defaultLocale
	}

	_, idx, conf := m.matcher.Match(prefs...)
	if conf == language.No {
		return m.defaultLocale
	}
	return m.matchable[idx]
}

//nolint:gochecknoglobals //package default manager, slog.Default style
var defaultManager atomic.Pointer[Manager]

//nolint:gochecknoinits //seeds the package default manager
func init() {
	defaultManager.Store(NewManager("en"))
}

// Default returns the package-level Manager used by String's convenience
// methods.
func Default() *Manager {
	return defaultManager.Load()
}

// SetDefault replaces the package-level Manager.
func SetDefault(m *Manager) {
	if m != nil {
		defaultManager.Store(m)
	}
}
