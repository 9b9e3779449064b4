package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.id, ID(tt.data))
			require.Equal(t, tt.id, Bytes([]byte(tt.data)))
		})
	}
}

func TestNameID(t *testing.T) {
	require.Equal(t, NameID("pan-tilt-abs"), NameID("Pan-Tilt-ABS"))
	require.Equal(t, ID("brightness"), NameID("BRIGHTNESS"))
	require.NotEqual(t, NameID("pan"), NameID("tilt"))
}

func BenchmarkNameID(b *testing.B) {
	for b.Loop() {
		NameID("white-balance-temp")
	}
}
