package radix

import (
	"math/rand"
	"strconv"
	"testing"
)

// Scenarios follow the external benchmark suite: decimal string keys, with a
// plain Go map as baseline.

func BenchmarkInsert(b *testing.B) {
	b.Run("Set", func(b *testing.B) {
		r := rand.New(rand.NewSource(1))
		s := New()
		for i := 0; i < b.N; i++ {
			s.Insert([]byte(strconv.FormatUint(r.Uint64(), 10)))
		}
	})
	b.Run("map", func(b *testing.B) {
		r := rand.New(rand.NewSource(1))
		m := make(map[string]struct{})
		for i := 0; i < b.N; i++ {
			m[strconv.FormatUint(r.Uint64(), 10)] = struct{}{}
		}
	})
}

func BenchmarkContains(b *testing.B) {
	const maxKey = 1_000_000
	r := rand.New(rand.NewSource(1))
	s := New()
	m := make(map[string]struct{})
	for i := 0; i < maxKey/2; i++ {
		k := strconv.FormatUint(r.Uint64()%maxKey, 10)
		s.InsertString(k)
		m[k] = struct{}{}
	}
	b.Run("Set", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s.Contains([]byte(strconv.FormatUint(r.Uint64()%maxKey, 10)))
		}
	})
	b.Run("map", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = m[strconv.FormatUint(r.Uint64()%maxKey, 10)]
		}
	})
}

func BenchmarkRemove(b *testing.B) {
	const maxKey = 100_000
	keys := make([]string, maxKey)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	s := FromStrings(keys...)
	r := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		cl := s.Clone()
		k := []byte(keys[r.Intn(maxKey)])
		b.StartTimer()
		cl.Remove(k)
	}
}

func BenchmarkClone(b *testing.B) {
	keys := make([]string, 10_000)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	s := FromStrings(keys...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Clone()
	}
}
