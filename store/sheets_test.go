package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCredentials(t *testing.T) {
	raw := []byte(`{"type":"service_account","private_key":"-----BEGIN\\nKEY\\n-----"}`)

	fixed, err := normalizeCredentials(raw)
	require.NoError(t, err)

	var creds map[string]string
	require.NoError(t, json.Unmarshal(fixed, &creds))
	assert.Equal(t, "-----BEGIN\nKEY\n-----", creds["private_key"])
	assert.Equal(t, "service_account", creds["type"])
}

func TestNormalizeCredentialsBadJSON(t *testing.T) {
	_, err := normalizeCredentials([]byte("not json"))
	assert.Error(t, err)
}

func TestRowCellsRoundTrip(t *testing.T) {
	r := testRow(1)
	assert.Equal(t, r, rowFromCells(r.cells()))
}

func TestRowFromShortCells(t *testing.T) {
	r := rowFromCells([]string{"текст", "25.12"})
	assert.Equal(t, "текст", r.Text)
	assert.Equal(t, "25.12", r.Date)
	assert.Empty(t, r.Status)
	assert.False(t, r.Empty())
}

func TestToStringsNilCell(t *testing.T) {
	got := toStrings([]interface{}{"a", nil, "c"})
	assert.Equal(t, []string{"a", "", "c"}, got)
}
