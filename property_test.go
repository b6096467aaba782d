package radix

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestRandomizedAgainstModel -count=1
//   - Fuzz test:
//     go test . -run '^$' -fuzz FuzzSetAgainstModel -fuzztime=10s

func randomKey(r *rand.Rand) string {
	switch r.Intn(3) {
	case 0: // short keys over a tiny alphabet produce lots of splits and merges
		n := r.Intn(5)
		b := make([]byte, n)
		for i := range b {
			b[i] = byte('a' + r.Intn(3))
		}
		return string(b)
	case 1: // decimal keys with common leading digits
		return strconv.FormatUint(r.Uint64()%100_000, 10)
	}
	return strconv.FormatUint(r.Uint64(), 10)
}

func assertSetMatchesModel(t *testing.T, s *Set, model map[string]bool, queries []string) {
	t.Helper()
	if s.Len() != len(model) {
		t.Fatalf("size mismatch: got=%d want=%d", s.Len(), len(model))
	}
	for k := range model {
		if !s.ContainsString(k) {
			t.Fatalf("member %q missing", k)
		}
	}
	for _, k := range queries {
		if s.ContainsString(k) != model[k] {
			t.Fatalf("contains(%q) = %v, model says %v", k, !model[k], model[k])
		}
	}
	if err := s.Check(); err != nil {
		t.Fatal(err)
	}
}

func runRandomSequence(t *testing.T, seed int64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	s := New()
	model := make(map[string]bool)
	var queries []string
	for i := 0; i < steps; i++ {
		k := randomKey(r)
		queries = append(queries, k, k+"0", k[:len(k)/2])
		if r.Intn(3) == 0 {
			if got, want := s.RemoveString(k), model[k]; got != want {
				t.Fatalf("step %d: remove(%q) = %v, want %v", i, k, got, want)
			}
			delete(model, k)
		} else {
			if got, want := s.InsertString(k), !model[k]; got != want {
				t.Fatalf("step %d: insert(%q) = %v, want %v", i, k, got, want)
			}
			model[k] = true
		}
		if i%97 == 0 {
			assertSetMatchesModel(t, s, model, queries)
		}
	}
	assertSetMatchesModel(t, s, model, queries)
	for k := range model {
		if !s.RemoveString(k) {
			t.Fatalf("final remove(%q) failed", k)
		}
	}
	if !s.IsEmpty() || s.nodeCount() != 1 {
		t.Fatalf("expected bare root, have %d keys in %d nodes", s.Len(), s.nodeCount())
	}
}

func TestRandomizedAgainstModel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radix")
	defer teardown()

	for seed := int64(1); seed <= 8; seed++ {
		runRandomSequence(t, seed, 2000)
	}
}

func TestFakeWordsRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radix")
	defer teardown()

	faker := gofakeit.New(42)
	model := make(map[string]bool)
	s := New()
	for i := 0; i < 1000; i++ {
		var k string
		switch i % 3 {
		case 0:
			k = faker.Word()
		case 1:
			k = faker.Username()
		default:
			k = faker.URL()
		}
		s.InsertString(k)
		model[k] = true
	}
	assertSetMatchesModel(t, s, model, nil)
	cl := s.Clone()
	for k := range model {
		if !cl.RemoveString(k) {
			t.Fatalf("clone lost %q", k)
		}
		if !s.ContainsString(k) {
			t.Fatalf("removing %q from clone changed the source", k)
		}
	}
	if err := cl.Check(); err != nil {
		t.Fatal(err)
	}
	assertSetMatchesModel(t, s, model, nil)
}

func FuzzSetAgainstModel(f *testing.F) {
	f.Add(uint64(1), uint16(200))
	f.Add(uint64(99), uint16(1000))
	f.Fuzz(func(t *testing.T, seed uint64, steps uint16) {
		runRandomSequence(t, int64(seed), int(steps%2000))
	})
}
