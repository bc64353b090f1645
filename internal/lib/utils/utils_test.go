package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, map[string]int{"deleted": 2}))
	assert.Equal(t, "{\n\t\"deleted\": 2\n}\n", buf.String())

	buf.Reset()
	assert.Error(t, PrintJSON(&buf, func() {}))
	assert.Empty(t, buf.String())
}
