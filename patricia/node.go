package patricia

// node is a single compressed-trie node. It owns its segment and every node
// reachable through its children map.
type node[K comparable, V any] struct {
	segment  []K
	children map[K]*node[K, V] // lazily allocated, at most one child per symbol
	val      V
	hasValue bool
}

func newNode[K comparable, V any](segment []K, val V) *node[K, V] {
	return &node[K, V]{
		segment:  cloneSeg(segment),
		val:      val,
		hasValue: true,
	}
}

// cloneSeg copies a segment so a node never aliases a caller's key slice.
func cloneSeg[K comparable](seg []K) []K {
	if len(seg) == 0 {
		return nil
	}
	return append([]K(nil), seg...)
}

// cutHead drops the first length symbols of the segment. The remainder is
// reallocated - segments are replaced wholesale, never edited in place.
func (n *node[K, V]) cutHead(length int) {
	n.segment = cloneSeg(n.segment[length:])
}

// matchSegment reports whether the whole segment equals the corresponding
// prefix of suffix.
func (n *node[K, V]) matchSegment(suffix []K) bool {
	if len(suffix) < len(n.segment) {
		return false
	}
	for i, s := range n.segment {
		if suffix[i] != s {
			return false
		}
	}
	return true
}

// insert adds suffix with the given value to the subtree rooted at n and
// returns the new subtree root (a fork or wrapper node may replace n).
// A nil n means there is no subtree yet. The second result reports whether
// a new live key appeared (false on overwrite).
func insert[K comparable, V any](n *node[K, V], suffix []K, val V) (*node[K, V], bool) {
	if n == nil {
		return newNode(suffix, val), true
	}

	// find the longest common prefix of the segment and the suffix
	var (
		i      int
		minLen = len(n.segment)
	)
	if len(suffix) < minLen {
		minLen = len(suffix)
	}
	for i < minLen && n.segment[i] == suffix[i] {
		i++
	}

	switch {
	case i < len(n.segment) && i < len(suffix):
		// divergence inside both - fork on the common prefix
		fork := &node[K, V]{
			segment:  cloneSeg(suffix[:i]),
			children: make(map[K]*node[K, V], 2),
		}
		fork.children[n.segment[i]] = n
		fork.children[suffix[i]] = newNode(suffix[i+1:], val)
		n.cutHead(i + 1)
		return fork, true

	case len(n.segment) < len(suffix):
		// segment exhausted - descend on the next symbol
		s := suffix[i]
		if n.children == nil {
			n.children = make(map[K]*node[K, V])
		}
		child, grew := insert(n.children[s], suffix[i+1:], val)
		n.children[s] = child
		return n, grew

	case len(suffix) < len(n.segment):
		// suffix exhausted inside the segment - wrap n in a new parent
		parent := &node[K, V]{
			segment:  cloneSeg(suffix),
			children: make(map[K]*node[K, V], 1),
			val:      val,
			hasValue: true,
		}
		parent.children[n.segment[i]] = n
		n.cutHead(i + 1)
		return parent, true

	default:
		// exact match - overwrite
		grew := !n.hasValue
		n.val = val
		n.hasValue = true
		return n, grew
	}
}

// remove clears the value of the node matching suffix and returns it.
// Nodes are tombstoned, never deleted, so the structure does not shrink.
func (n *node[K, V]) remove(suffix []K) (V, bool) {
	var zero V

	if !n.matchSegment(suffix) {
		return zero, false
	}
	if len(suffix) == len(n.segment) {
		if !n.hasValue {
			return zero, false // already a tombstone
		}
		val := n.val
		n.val = zero
		n.hasValue = false
		return val, true
	}

	child, ok := n.children[suffix[len(n.segment)]]
	if !ok {
		return zero, false
	}
	return child.remove(suffix[len(n.segment)+1:])
}

// get returns the value of the node matching suffix.
func (n *node[K, V]) get(suffix []K) (V, bool) {
	if !n.matchSegment(suffix) {
		var zero V
		return zero, false
	}
	if len(suffix) == len(n.segment) {
		return n.val, n.hasValue
	}

	child, ok := n.children[suffix[len(n.segment)]]
	if !ok {
		var zero V
		return zero, false
	}
	return child.get(suffix[len(n.segment)+1:])
}

// appendPrefixValues appends the values of every stored key that is a prefix
// of buf, walking the single matching path root-to-leaf.
func (n *node[K, V]) appendPrefixValues(buf []K, out []V) []V {
	if !n.matchSegment(buf) {
		return out
	}
	if n.hasValue {
		out = append(out, n.val)
	}
	if len(n.segment) < len(buf) {
		if child, ok := n.children[buf[len(n.segment)]]; ok {
			out = child.appendPrefixValues(buf[len(n.segment)+1:], out)
		}
	}
	return out
}
