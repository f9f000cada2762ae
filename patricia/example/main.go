package main

import (
	"fmt"
	"os"

	"github.com/y-shindoh/patricia-trie/patricia"
)

func main() {
	keys := []string{
		"これは日本語です。",
		"今日からがんばる。",
		"これは英語です。",
		"今日は雨です。",
		"今日からがんばる。",
		"ABCD.",
		"今日からがんばる。つもりです。",
		"これは",
	}

	pt := patricia.New[byte, int]()

	// register the even-indexed keys only
	for i, key := range keys {
		if i%2 != 0 {
			continue
		}
		if err := pt.Add([]byte(key), i); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	pt.Dump(os.Stdout)

	// exact lookups
	for i, key := range keys {
		if v, ok := pt.Get([]byte(key)); ok {
			fmt.Printf("[%d: %d] %s\n", i, v, keys[v])
		} else {
			fmt.Printf("[%d: -] %s\n", i, key)
		}
	}

	probe := []byte("今日からがんばる。つもりです。うそです。")

	// common-prefix search
	for _, v := range pt.PrefixValues(probe) {
		fmt.Printf("[%d] %s\n", v, keys[v])
	}

	// common-prefix search after a removal
	pt.Remove([]byte(keys[1]))
	for _, v := range pt.PrefixValues(probe) {
		fmt.Printf("[%d] %s\n", v, keys[v])
	}

	// common-prefix search after re-adding the key
	if err := pt.Add([]byte(keys[1]), 1); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, v := range pt.PrefixValues(probe) {
		fmt.Printf("[%d] %s\n", v, keys[v])
	}
}
