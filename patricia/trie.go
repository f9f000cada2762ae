package patricia

import "errors"

// ErrEmptyKey is returned by Add when the key has no symbols.
var ErrEmptyKey = errors.New("patricia: empty key")

// Pair represents a key-value pair
type Pair[K comparable, V any] struct {
	Key []K
	Val V
}

// Trie maps non-empty symbol sequences to values. The zero value is an empty
// trie ready to use. A Trie must not be accessed concurrently from multiple
// goroutines without external synchronization.
type Trie[K comparable, V any] struct {
	size int
	head map[K]*node[K, V] // subtree roots keyed by a key's first symbol
}

// Init resets a Trie and adds the given key-value pairs. Pairs with an empty
// key are skipped. Returns the same Trie.
func Init[K comparable, V any](t *Trie[K, V], init ...Pair[K, V]) *Trie[K, V] {
	*t = Trie[K, V]{}
	for _, p := range init {
		_ = t.Add(p.Key, p.Val) // only fails on an empty key
	}
	return t
}

// New returns a new Trie optionally initialized with the given key-value pairs.
func New[K comparable, V any](init ...Pair[K, V]) *Trie[K, V] {
	return Init(&Trie[K, V]{}, init...)
}

// Len returns the number of live (added and not removed) keys in the trie.
func (t *Trie[K, V]) Len() int {
	return t.size
}

func (t *Trie[K, V]) Empty() bool {
	return t.size == 0
}

// Add associates a value with a key, silently replacing any previous value.
// Adding may re-root a subtree: the head entry is always stored back because
// a fork or wrapper node can replace the old root.
func (t *Trie[K, V]) Add(key []K, val V) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	if t.head == nil {
		t.head = make(map[K]*node[K, V])
	}

	root, grew := insert(t.head[key[0]], key[1:], val)
	t.head[key[0]] = root

	if grew {
		t.size++
	}
	return nil
}

// Remove clears the value stored under a key and returns it. The structure
// never shrinks: the key's node is left in place as a tombstone and no edges
// are merged.
func (t *Trie[K, V]) Remove(key []K) (V, bool) {
	if len(key) == 0 {
		var zero V
		return zero, false
	}

	root, ok := t.head[key[0]]
	if !ok {
		var zero V
		return zero, false
	}

	val, ok := root.remove(key[1:])
	if ok {
		t.size--
	}
	return val, ok
}

// Get returns the value associated with a key.
func (t *Trie[K, V]) Get(key []K) (V, bool) {
	if len(key) == 0 {
		var zero V
		return zero, false
	}

	root, ok := t.head[key[0]]
	if !ok {
		var zero V
		return zero, false
	}
	return root.get(key[1:])
}

// Contains reports whether a key is stored in the trie.
func (t *Trie[K, V]) Contains(key []K) bool {
	_, ok := t.Get(key)
	return ok
}

// PrefixValues returns the values of every stored key that is a prefix of
// buf, ordered from the shortest prefix to the longest. Sibling first symbols
// are unique, so at most one path matches.
func (t *Trie[K, V]) PrefixValues(buf []K) []V {
	if len(buf) == 0 {
		return nil
	}

	root, ok := t.head[buf[0]]
	if !ok {
		return nil
	}
	return root.appendPrefixValues(buf[1:], nil)
}
