package token

import "strings"

// TrieState classifies a position in a keyword trie (spec §4.2).
type TrieState int

const (
	// NotAKeyword means no phrase ends or continues at this path.
	NotAKeyword TrieState = iota
	// PartialOnly means the path so far is not itself a complete keyword
	// but could extend into one.
	PartialOnly
	// PartialOrFinal means the path is a complete keyword and could also
	// extend into a longer one.
	PartialOrFinal
	// Final means the path is a complete keyword with no extensions.
	Final
)

type trieNode struct {
	children map[string]*trieNode
	terminal bool
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[string]*trieNode)}
}

func (n *trieNode) state() TrieState {
	switch {
	case n.terminal && len(n.children) > 0:
		return PartialOrFinal
	case n.terminal:
		return Final
	case len(n.children) > 0:
		return PartialOnly
	default:
		return NotAKeyword
	}
}

// Trie is a prefix tree over whitespace-separated keyword phrases, used for
// longest-match multi-word keyword recognition (spec §4.2).
type Trie struct {
	root *trieNode
}

// NewTrie builds an immutable Trie from a set of phrases, e.g.
// "group by", "left outer join", "is not distinct from". Matching is
// case-insensitive; phrases are lower-cased at build time.
func NewTrie(phrases ...string) *Trie {
	t := &Trie{root: newTrieNode()}
	for _, p := range phrases {
		t.insert(strings.Fields(strings.ToLower(p)))
	}
	return t
}

func (t *Trie) insert(words []string) {
	n := t.root
	for _, w := range words {
		child, ok := n.children[w]
		if !ok {
			child = newTrieNode()
			n.children[w] = child
		}
		n = child
	}
	n.terminal = true
}

// LongestMatch walks words (assumed already lower-cased by the caller's
// reader, or compared case-insensitively here) and returns the number of
// leading words that form the longest recognized keyword, and whether any
// match was found at all. It stops as soon as the path can no longer
// extend, per the matcher rule in spec §4.2: keep the longest path that
// reached Final or PartialOrFinal; if the next word fails from a
// PartialOrFinal state, the last accepted keyword wins.
func (t *Trie) LongestMatch(words []string) (n int, ok bool) {
	node := t.root
	lastGood := 0
	for i, w := range words {
		child, present := node.children[strings.ToLower(w)]
		if !present {
			break
		}
		node = child
		switch node.state() {
		case Final:
			lastGood = i + 1
			return lastGood, true
		case PartialOrFinal:
			lastGood = i + 1
		case PartialOnly:
			// keep extending
		case NotAKeyword:
			break
		}
	}
	return lastGood, lastGood > 0
}

// Match reports the TrieState reached after consuming words in order,
// stopping early if the path dies. Used by callers that want to know
// whether a prefix could still extend (PartialOnly/PartialOrFinal) versus
// being a dead end.
func (t *Trie) Match(words []string) TrieState {
	node := t.root
	for _, w := range words {
		child, present := node.children[strings.ToLower(w)]
		if !present {
			return NotAKeyword
		}
		node = child
	}
	return node.state()
}
