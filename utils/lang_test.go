package utils

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizeBuiltinMessages(t *testing.T) {
	require.NoError(t, InitI18NBundle(""))

	loc := NewLocalizer("en")
	assert.Equal(t, "Showing 3 location(s).", Localize(loc, MsgShowingLocations, map[string]interface{}{"Count": 3}))
	assert.Equal(t, "No locations found on May 1, 2024.",
		Localize(loc, MsgNoLocationsOnDate, map[string]interface{}{"Date": "May 1, 2024"}))
	assert.Equal(t, "Failed to load locations for a@b.com. Please try again later.",
		Localize(loc, MsgLoadLocationsFailed, map[string]interface{}{"Email": "a@b.com"}))
}

func TestLocalizeMessageFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "i18n")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	err = ioutil.WriteFile(filepath.Join(dir, "es.yaml"), []byte(
		"no_locations: \"No se encontraron ubicaciones para este correo.\"\n"), 0644)
	require.NoError(t, err)

	require.NoError(t, InitI18NBundle(dir))
	defer func() { _ = InitI18NBundle("") }()

	assert.Equal(t, "No se encontraron ubicaciones para este correo.", Localize(NewLocalizer("es"), MsgNoLocations, nil))
	// missing translations fall back to english
	assert.Equal(t, "No users found.", Localize(NewLocalizer("es"), MsgNoUsers, nil))
	assert.Equal(t, "No locations found for this email.", Localize(NewLocalizer("fr", "en"), MsgNoLocations, nil))
}

func TestLocalizeUnknownMessage(t *testing.T) {
	assert.Equal(t, "not_a_message", Localize(NewLocalizer("en"), "not_a_message", nil))
}
