// Package patricia defines an implementation of a Patricia (radix) trie
// mapping variable-length sequences of symbols to values.
//
// The trie consists of a head map and a number of connected nodes. The head
// map fans out on a key's first symbol, so there is no universal root node
// with an empty segment.
//
// Each node has three fields:
//
//   - segment  - the run of symbols shared by every key passing through the node;
//   - value    - an optional value, present iff a key terminates exactly here;
//   - children - a map from the next symbol to a child node.
//
// A symbol consumed by a child-map edge is not repeated in the child's
// segment, so a stored key is the concatenation of the head symbol, then
// segment/edge-symbol pairs down the matching path.
//
// Example trie:
// ------------
//
//	                          ,-- 't' -- [seg:"" val:1]
//	head['c'] -- [seg:"a"] --+
//	                          `-- 'r' -- [seg:"" val:2] -- 'p' -- [seg:"et" val:3]
//
// The trie above contains the following keys:
//
//   - "cat"    -> 1
//   - "car"    -> 2
//   - "carpet" -> 3
//
// Removing a key only clears the value of its node (a tombstone); nodes are
// never deleted or merged, so the node count never decreases over a trie's
// lifetime.
package patricia
