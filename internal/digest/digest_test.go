package digest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum_Deterministic(t *testing.T) {
	first := Sum("hello")
	second := Sum("hello")

	require.Equal(t, first, second)
	require.Len(t, first, HexLength)
	// known SHA-256 vector
	require.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", first)
}

func TestSum_DistinctInputs(t *testing.T) {
	corpus := []string{"", "a", "b", "hello", "hello ", "Hello", "contraseña123"}
	seen := map[string]string{}
	for _, text := range corpus {
		sum := Sum(text)
		require.Len(t, sum, HexLength)
		if prev, ok := seen[sum]; ok {
			t.Fatalf("collision between %q and %q", prev, text)
		}
		seen[sum] = text
	}
}

func TestVerify(t *testing.T) {
	sum := Sum("hello")

	require.True(t, Verify("hello", sum))
	require.True(t, Verify("hello", strings.ToUpper(sum)), "hex comparison is case-insensitive")
	require.False(t, Verify("goodbye", sum))
	require.False(t, Verify("hello", Sum("goodbye")))
	require.False(t, Verify("hello", "deadbeef"), "wrong length can never match")
	require.False(t, Verify("hello", ""))
}
