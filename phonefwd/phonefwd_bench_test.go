package phonefwd

import (
	"fmt"
	"testing"
)

func generateForwardings(n int) (sources, targets []string) {
	sources = make([]string, n)
	targets = make([]string, n)
	for i := 0; i < n; i++ {
		sources[i] = fmt.Sprintf("1%010d", i)
		targets[i] = fmt.Sprintf("9%010d", i)
	}
	return sources, targets
}

func BenchmarkAdd(b *testing.B) {
	sources, targets := generateForwardings(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pf := New()
		for j := range sources {
			pf.Add(sources[j], targets[j])
		}
	}
}

func BenchmarkGet(b *testing.B) {
	sources, targets := generateForwardings(10000)
	pf := New()
	for i := range sources {
		pf.Add(sources[i], targets[i])
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pf.Get(sources[i%len(sources)] + "999")
	}
}

func BenchmarkReverse(b *testing.B) {
	sources, targets := generateForwardings(10000)
	pf := New()
	for i := range sources {
		pf.Add(sources[i], targets[i])
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pf.Reverse(targets[i%len(targets)])
	}
}

func BenchmarkGetReverse(b *testing.B) {
	sources, targets := generateForwardings(10000)
	pf := New()
	for i := range sources {
		pf.Add(sources[i], targets[i])
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pf.GetReverse(targets[i%len(targets)])
	}
}

func BenchmarkRemove(b *testing.B) {
	sources, targets := generateForwardings(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pf := New()
		for j := range sources {
			pf.Add(sources[j], targets[j])
		}
		for _, s := range sources {
			pf.Remove(s)
		}
	}
}

func BenchmarkGetParallel(b *testing.B) {
	sources, targets := generateForwardings(10000)
	pf := New()
	for i := range sources {
		pf.Add(sources[i], targets[i])
	}
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			pf.Get(sources[i%len(sources)] + "999")
			i++
		}
	})
}
