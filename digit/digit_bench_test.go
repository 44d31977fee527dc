package digit

import "testing"

func generateNumbers(n int) []string {
	numbers := make([]string, n)
	alphabet := "0123456789*#"
	for i := 0; i < n; i++ {
		buf := make([]byte, 12)
		for j := range buf {
			buf[j] = alphabet[(i+j)%len(alphabet)]
		}
		numbers[i] = string(buf)
	}
	return numbers
}

func BenchmarkIsDigit(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IsDigit(byte('0' + i%10))
	}
}

func BenchmarkToIndex(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ToIndex(byte('0' + i%10))
	}
}

func BenchmarkFromIndex(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FromIndex(i % Alphabet)
	}
}

func BenchmarkIsValidNumber(b *testing.B) {
	numbers := generateNumbers(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IsValidNumber(numbers[i%len(numbers)])
	}
}

func BenchmarkCompare(b *testing.B) {
	numbers := generateNumbers(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Compare(numbers[i%len(numbers)], numbers[(i+1)%len(numbers)])
	}
}

func BenchmarkIsValidNumberParallel(b *testing.B) {
	numbers := generateNumbers(1000)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			IsValidNumber(numbers[i%len(numbers)])
			i++
		}
	})
}
