package base26_test

import (
	"testing"

	"github.com/katalvlaran/estkit/base26"
)

// BenchmarkEncode measures a four-letter label.
func BenchmarkEncode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := base26.Encode(475254); err != nil {
			b.Fatalf("Encode failed: %v", err)
		}
	}
}

// BenchmarkDecode measures the matching decode.
func BenchmarkDecode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := base26.Decode("ZZZZ"); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}
