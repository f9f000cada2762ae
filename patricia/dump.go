package patricia

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Dump writes an indented diagnostic view of the trie, one line per node in
// the form "<first-symbol> +segment-length (value)", with "-" for a node
// holding no value. The exact format carries no stability contract.
func (t *Trie[K, V]) Dump(w io.Writer) {
	for _, first := range sortedSymbols(t.head) {
		t.head[first].dump(w, first, 0)
	}
}

func (n *node[K, V]) dump(w io.Writer, first K, depth int) {
	if n.hasValue {
		fmt.Fprintf(w, "%s<%v> +%d (%v)\n", strings.Repeat("  ", depth), first, len(n.segment), n.val)
	} else {
		fmt.Fprintf(w, "%s<%v> +%d (-)\n", strings.Repeat("  ", depth), first, len(n.segment))
	}

	for _, s := range sortedSymbols(n.children) {
		n.children[s].dump(w, s, depth+1)
	}
}

// sortedSymbols orders map keys by their printed form. K is only comparable,
// not ordered, so this is the cheapest deterministic order available.
func sortedSymbols[K comparable, V any](m map[K]*node[K, V]) []K {
	syms := make([]K, 0, len(m))
	for s := range m {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool {
		return fmt.Sprint(syms[i]) < fmt.Sprint(syms[j])
	})
	return syms
}
