package tablefind_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvorsen/tablefind"
)

func TestDefaultTableSettingsValid(t *testing.T) {
	settings := tablefind.DefaultTableSettings()
	require.NoError(t, tablefind.ValidateSettings(settings))
}

func TestValidateSettingsRejectsUnknownStrategy(t *testing.T) {
	settings := tablefind.DefaultTableSettings()
	settings.VerticalStrategy = "diagonal"

	err := tablefind.ValidateSettings(settings)
	require.Error(t, err)
	require.True(t, errors.Is(err, tablefind.ErrInvalidStrategy))
}

func TestValidateSettingsRejectsNegativeTolerance(t *testing.T) {
	settings := tablefind.DefaultTableSettings()
	settings.JoinTolerance = -2

	err := tablefind.ValidateSettings(settings)
	require.Error(t, err)
	require.True(t, errors.Is(err, tablefind.ErrNegativeSetting))
}

func TestValidateSettingsRequiresExplicitLines(t *testing.T) {
	settings := tablefind.DefaultTableSettings()
	settings.VerticalStrategy = tablefind.StrategyExplicit
	settings.ExplicitVerticalLines = []float64{10}

	err := tablefind.ValidateSettings(settings)
	require.Error(t, err)

	settings.ExplicitVerticalLines = []float64{10, 20}
	require.NoError(t, tablefind.ValidateSettings(settings))
}
