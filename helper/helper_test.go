package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("HELPER_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnvOrDefault("HELPER_TEST_VALUE", "default"))
	assert.Equal(t, "default", GetEnvOrDefault("HELPER_TEST_UNSET", "default"))
}

func TestGetEnvBoolOrDefault(t *testing.T) {
	t.Run("Unset returns default", func(t *testing.T) {
		value, err := GetEnvBoolOrDefault("HELPER_TEST_UNSET", true)
		require.NoError(t, err)
		assert.True(t, value)
	})

	t.Run("Parses value", func(t *testing.T) {
		t.Setenv("HELPER_TEST_BOOL", "false")
		value, err := GetEnvBoolOrDefault("HELPER_TEST_BOOL", true)
		require.NoError(t, err)
		assert.False(t, value)
	})

	t.Run("Invalid value", func(t *testing.T) {
		t.Setenv("HELPER_TEST_BOOL", "sometimes")
		_, err := GetEnvBoolOrDefault("HELPER_TEST_BOOL", true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HELPER_TEST_BOOL")
	})
}

func TestGetMimeType(t *testing.T) {
	assert.Equal(t, "text/csv", GetMimeType("gapminder_2007.csv"))
	assert.Equal(t, "text/csv", GetMimeType("EXPORT.CSV"))
	assert.Equal(t, "application/json", GetMimeType("figure.json"))
	assert.Equal(t, "application/octet-stream", GetMimeType("dataset"))
}
