package localized

import (
	"context"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pitabwire/util"
)

// Message is the deferred backing of a String: a bundle message rendered
// per locale on demand instead of a materialized entry set. It is how a
// statically translated default label travels through the same interface as
// stored per-locale text, only expanding to concrete entries when serialized.
type Message struct {
	bundle      *i18n.Bundle
	id          string
	data        map[string]any
	pluralCount any
	supported   []string
}

// MessageOption configures a deferred message created by Manager.FromMessage.
type MessageOption func(*Message)

// WithTemplateData supplies template variables for rendering the message.
func WithTemplateData(variables map[string]any) MessageOption {
	return func(m *Message) {
		m.data = variables
	}
}

// WithPluralCount sets the plural count used when rendering the message.
func WithPluralCount(count int) MessageOption {
	return func(m *Message) {
		m.pluralCount = count
	}
}

// ID returns the bundle message identifier.
func (m *Message) ID() string {
	return m.id
}

// Render evaluates the message under the given locale. The localizer is
// scoped to this one call, so no ambient locale state is touched and nothing
// needs restoring when rendering fails. Failures degrade to the message ID.
func (m *Message) Render(locale string) string {
	var locales []string
	if locale != "" {
		locales = append(locales, locale)
	}

	localizer := i18n.NewLocalizer(m.bundle, locales...)
	rendered, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      m.id,
		DefaultMessage: &i18n.Message{ID: m.id},
		TemplateData:   m.data,
		PluralCount:    m.pluralCount,
	})
	if err != nil {
		logger := util.Log(context.Background()).WithField("messageID", m.id).WithError(err)
		logger.Error("Render -- could not perform translation")
		return m.id
	}

	return rendered
}

// Has reports containment of a locale. Rendering never fails, so every
// locale is considered present.
func (m *Message) Has(_ string) bool {
	return true
}
