package romantic_test

import (
	"testing"

	"github.com/Holllo/romantic"
)

// benchmarkEncode encodes value repeatedly and fails on unexpected errors.
func benchmarkEncode(b *testing.B, sys *romantic.System, value int64) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sys.Encode(value); err != nil {
			b.Fatalf("Encode failed: %v", err)
		}
	}
}

// benchmarkDecode decodes text repeatedly and fails on unexpected errors.
func benchmarkDecode(b *testing.B, sys *romantic.System, text string) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sys.Decode(text); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}

// BenchmarkEncode_Short benchmarks a one-glyph result.
func BenchmarkEncode_Short(b *testing.B) {
	benchmarkEncode(b, romantic.Default(), 1000)
}

// BenchmarkEncode_Long benchmarks the longest default-alphabet result.
func BenchmarkEncode_Long(b *testing.B) {
	benchmarkEncode(b, romantic.Default(), 3888)
}

// BenchmarkDecode_Short benchmarks a one-glyph input.
func BenchmarkDecode_Short(b *testing.B) {
	benchmarkDecode(b, romantic.Default(), "M")
}

// BenchmarkDecode_Long benchmarks the longest default-alphabet input.
func BenchmarkDecode_Long(b *testing.B) {
	benchmarkDecode(b, romantic.Default(), "MMMDCCCLXXXVIII")
}
