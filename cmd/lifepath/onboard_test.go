package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnboardCommand_Cancelled(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	out, stderr, err := execute(t, onboardCmd(), "\x03")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Onboarding cancelled.")
	assert.NotContains(t, out, "Numerology Report")
}
