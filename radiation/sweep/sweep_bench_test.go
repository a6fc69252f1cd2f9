package sweep

import "testing"

func BenchmarkRun(b *testing.B) {
	cfg := DefaultConfig()
	for range b.N {
		if _, err := Run(cfg); err != nil {
			b.Fatal(err)
		}
	}
}
