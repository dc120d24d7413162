package localized

import (
	"github.com/caarlos0/env/v11"
)

// Config holds the locale settings an application supplies through the
// environment.
type Config struct {
	LogLevel string `envDefault:"info" env:"LOG_LEVEL" yaml:"log_level"`

	DefaultLocale    string   `envDefault:"en" env:"DEFAULT_LOCALE"    yaml:"default_locale"`
	SupportedLocales []string `envDefault:"en" env:"SUPPORTED_LOCALES" yaml:"supported_locales"`

	TranslationsFolder   string   `envDefault:"localization" env:"TRANSLATIONS_FOLDER"   yaml:"translations_folder"`
	TranslationLanguages []string `envDefault:""             env:"TRANSLATION_LANGUAGES" yaml:"translation_languages"`
}

// ConfigurationLocales is implemented by application configurations that can
// supply locale settings without depending on this package's Config.
type ConfigurationLocales interface {
	GetDefaultLocale() string
	GetSupportedLocales() []string
}

var _ ConfigurationLocales = new(Config)

func (c *Config) GetDefaultLocale() string {
	return c.DefaultLocale
}

func (c *Config) GetSupportedLocales() []string {
	return c.SupportedLocales
}

func (c *Config) LoggingLevel() string {
	return c.LogLevel
}

// FromEnv convenience method to process configs.
func FromEnv[T any]() (T, error) {
	return env.ParseAs[T]()
}

// FillEnv convenience method to fill a config object with environment data.
func FillEnv(v any) error {
	return env.Parse(v)
}
