package diag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprintDeterministic(t *testing.T) {
	data := []byte("the quick brown fox")
	require.Equal(t, Fingerprint(data), Fingerprint(data))
}

func TestFingerprintDiffers(t *testing.T) {
	require.NotEqual(t, Fingerprint([]byte("a")), Fingerprint([]byte("b")))
}
