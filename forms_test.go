package localized_test

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"

	"github.com/pitabwire/localized"
)

type FormsTestSuite struct {
	suite.Suite
}

func TestFormsSuite(t *testing.T) {
	suite.Run(t, new(FormsTestSuite))
}

func (s *FormsTestSuite) TestDecompose() {
	testCases := []struct {
		name     string
		value    *localized.String
		locales  []string
		expected []string
	}{
		{
			name:     "one slot per locale in order",
			value:    localized.Parse(`{"de": "Hallo", "en": "Hello"}`),
			locales:  []string{"en", "de", "fr"},
			expected: []string{"Hello", "Hallo", ""},
		},
		{
			name:     "nil decomposes to empty slots",
			value:    nil,
			locales:  []string{"en", "de"},
			expected: []string{"", ""},
		},
		{
			name:     "naive text lands in the first slot",
			value:    localized.Parse("Hello"),
			locales:  []string{"de", "en"},
			expected: []string{"Hello", ""},
		},
		{
			name:     "text outside the edited locales surfaces in the first slot",
			value:    localized.Parse(`{"sw": "Jambo"}`),
			locales:  []string{"en", "de"},
			expected: []string{"Jambo", ""},
		},
		{
			name:     "empty entries stay empty",
			value:    localized.Parse(`{"en": "", "de": ""}`),
			locales:  []string{"en", "de"},
			expected: []string{"", ""},
		},
	}

	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.value.Decompose(tc.locales))
		})
	}
}

func (s *FormsTestSuite) TestDecomposeDeferred() {
	bundle := i18n.NewBundle(language.English)
	require.NoError(s.T(), bundle.AddMessages(language.English, &i18n.Message{
		ID:    "DefaultName",
		Other: "Unnamed event",
	}))
	require.NoError(s.T(), bundle.AddMessages(language.German, &i18n.Message{
		ID:    "DefaultName",
		Other: "Unbenanntes Ereignis",
	}))

	manager := localized.NewManager("en", localized.WithBundle(bundle))
	value := manager.FromMessage("DefaultName")

	require.Equal(s.T(),
		[]string{"Unnamed event", "Unbenanntes Ereignis"},
		value.Decompose([]string{"en", "de"}))
}

func (s *FormsTestSuite) TestCompose() {
	manager := localized.NewManager("en")

	value := localized.Compose([]string{"en", "de", "fr"}, []string{"Hello", "Hallo"})
	require.Equal(s.T(), []string{"en", "de", "fr"}, value.Locales())
	require.Equal(s.T(), "Hallo", manager.Localize(value, "de"))

	got, ok := value.Get("fr")
	require.True(s.T(), ok)
	require.Equal(s.T(), "", got)
}

func (s *FormsTestSuite) TestDecomposeComposeRoundTrip() {
	locales := []string{"en", "de", "fr"}
	original := localized.Parse(`{"de": "Hallo", "en": "Hello", "fr": ""}`)

	edited := original.Decompose(locales)
	edited[2] = "Bonjour"

	recomposed := localized.Compose(locales, edited)
	manager := localized.NewManager("en")
	require.Equal(s.T(), "Hello", manager.Localize(recomposed, "en"))
	require.Equal(s.T(), "Hallo", manager.Localize(recomposed, "de"))
	require.Equal(s.T(), "Bonjour", manager.Localize(recomposed, "fr"))
}
