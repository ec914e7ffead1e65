package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVPadsShortRows(t *testing.T) {
	out, err := CSV(Table{
		Headers: []string{"a", "b", "c"},
		Rows:    [][]string{{"1"}, {"1", "2", "3"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "a,b,c\n1,,\n1,2,3\n", string(out))
}

func TestCSVRequiresHeaders(t *testing.T) {
	_, err := CSV(Table{})
	require.Error(t, err)
}

func TestPDFRendersDocument(t *testing.T) {
	out, err := PDF(Table{
		Title:   "Test",
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"1", "2"}},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPDFRequiresHeaders(t *testing.T) {
	_, err := PDF(Table{})
	require.Error(t, err)
}
