package patricia

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func BenchmarkGoMap_Set(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = make(map[string]int)
	)

	b.ResetTimer()

	for i, key := range keys {
		m[string(key)] = i
	}
}

func BenchmarkGoMap_Get(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = make(map[string]int)
	)

	for i, key := range keys {
		m[string(key)] = i
	}

	b.ResetTimer()

	for _, key := range keys {
		_ = m[string(key)]
	}
}

func BenchmarkTrie_Add(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = New[byte, int]()
	)

	b.ResetTimer()

	for i, key := range keys {
		_ = tr.Add(key, i)
	}
}

func BenchmarkTrie_Get(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = New[byte, int]()
	)

	for i, key := range keys {
		_ = tr.Add(key, i)
	}

	b.ResetTimer()

	for _, key := range keys {
		_, _ = tr.Get(key)
	}
}

func BenchmarkTrie_PrefixValues(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = New[byte, int]()
	)

	for i, key := range keys {
		_ = tr.Add(key, i)
	}

	b.ResetTimer()

	for _, key := range keys {
		_ = tr.PrefixValues(key)
	}
}

func getKeys(total int) [][]byte {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		keys  = make([][]byte, total)
	)

	for i := range keys {
		keys[i] = []byte(faker.Sentence(4))
	}

	return keys
}
