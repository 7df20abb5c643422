package wiregauge_test

import (
	"testing"

	"github.com/katalvlaran/estkit/wiregauge"
)

// BenchmarkParseDiameter_Kcmil exercises the fallthrough from AWG to kcmil.
func BenchmarkParseDiameter_Kcmil(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := wiregauge.ParseDiameter("500 kcmil"); err != nil {
			b.Fatalf("ParseDiameter failed: %v", err)
		}
	}
}

// BenchmarkFormatDiameter_AWG measures the log-based step inversion.
func BenchmarkFormatDiameter_AWG(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := wiregauge.FormatDiameter(0.1019); err != nil {
			b.Fatalf("FormatDiameter failed: %v", err)
		}
	}
}
