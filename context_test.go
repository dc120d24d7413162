package localized_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/pitabwire/localized"
)

type ContextTestSuite struct {
	suite.Suite
}

func TestContextSuite(t *testing.T) {
	suite.Run(t, new(ContextTestSuite))
}

func (s *ContextTestSuite) TestContextCarry() {
	ctx := context.Background()
	require.Nil(s.T(), localized.FromContext(ctx))

	ctx = localized.ToContext(ctx, []string{"en", "sw"})
	require.Equal(s.T(), []string{"en", "sw"}, localized.FromContext(ctx))

	single := localized.WithLocale(ctx, "de")
	require.Equal(s.T(), []string{"de"}, localized.FromContext(single))
}

func (s *ContextTestSuite) TestScopedOverrideRestoredOnPanic() {
	manager := localized.NewManager("en")
	value := localized.Parse(`{"de": "Hallo", "en": "Hello"}`)

	ctx := localized.WithLocale(context.Background(), "en")

	func() {
		defer func() {
			require.NotNil(s.T(), recover())
		}()

		scoped := localized.WithLocale(ctx, "de")
		require.Equal(s.T(), "Hallo", manager.Resolve(scoped, value))
		panic("rendering blew up")
	}()

	// The override lived only in the derived context; the prior locale is intact.
	require.Equal(s.T(), []string{"en"}, localized.FromContext(ctx))
	require.Equal(s.T(), "Hello", manager.Resolve(ctx, value))
}

func (s *ContextTestSuite) TestMapCarry() {
	carried := localized.ToMap(map[string]string{"id": "abc"}, []string{"en", "sw"})
	require.Equal(s.T(), "en,sw", carried["lang"])
	require.Equal(s.T(), "abc", carried["id"])

	require.Equal(s.T(), []string{"en", "sw"}, localized.FromMap(carried))
	require.Nil(s.T(), localized.FromMap(map[string]string{}))
}
