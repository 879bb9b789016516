package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "abc...", truncate("abcdef", 3))

	long := strings.Repeat("ñ", 10)
	out := truncate(long, 4)
	require.Equal(t, "ññññ...", out)
	require.True(t, utf8.ValidString(out))
}
