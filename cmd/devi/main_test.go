package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, demo(&buf))

	out := buf.String()
	assert.Contains(t, out, "array: Array[int32]( 5 8 6 )")
	assert.Contains(t, out, "view:  View[int32]( 3 3 )@21 strides ( 96 6 )")
	assert.Contains(t, out, "a[0 3 3] = 2")
	assert.Contains(t, out, "a[4 4 3] = 3")
}
