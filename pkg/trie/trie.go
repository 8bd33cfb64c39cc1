// Package trie is the dictionary core: a rune-keyed prefix tree whose nodes
// remember the popularity of the words ending at them.
//
// Children are kept in first-insertion order, which makes enumeration,
// prediction tie-breaks and every fold deterministic. Removing a word prunes
// the branch that only existed for it, so the tree never holds a node that is
// neither a word end nor on the way to one.
//
// A Trie is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package trie

import "errors"

// ErrEmptyWord is the panic value for operations called with an empty word or
// prefix. Callers are expected to guard against it.
var ErrEmptyWord = errors.New("trie: empty word")

// Trie is a single node, and the root node is the whole dictionary.
// The zero value is an empty dictionary ready to use.
type Trie struct {
	kids children
	pop  *int
}

// New returns an empty dictionary.
func New() *Trie {
	return &Trie{}
}

// Add inserts word with the default popularity of 0.
func (t *Trie) Add(word string) {
	t.Insert(word, 0)
}

// Insert stores word with the given popularity, overwriting the popularity
// of an existing entry.
func (t *Trie) Insert(word string, popularity int) {
	mustWord(word)

	node := t
	for _, r := range word {
		node = node.kids.getOrCreate(r)
	}
	p := popularity
	node.pop = &p
}

// Contains reports whether word was inserted and not removed since.
// A path that only exists as the prefix of longer words does not count.
func (t *Trie) Contains(word string) bool {
	mustWord(word)

	node, ok := t.Sub(word)
	return ok && node.IsWord()
}

// Popularity returns the popularity stored for word.
func (t *Trie) Popularity(word string) (int, bool) {
	mustWord(word)

	node, ok := t.Sub(word)
	if !ok || !node.IsWord() {
		return 0, false
	}
	return *node.pop, true
}

// Remove deletes word and unlinks every node that was only kept alive by it,
// walking up until an ancestor still leads to another word or is a word end
// itself. It returns true if at least one node was unlinked. Removing a word
// that is not stored does nothing.
func (t *Trie) Remove(word string) bool {
	mustWord(word)

	runes := []rune(word)
	path := make([]*Trie, 0, len(runes)+1)
	node := t
	path = append(path, node)
	for _, r := range runes {
		node = node.kids.get(r)
		if node == nil {
			return false
		}
		path = append(path, node)
	}
	node.pop = nil

	pruned := false
	for i := len(runes); i > 0; i-- {
		if !path[i].dead() {
			break
		}
		path[i-1].kids.remove(runes[i-1])
		pruned = true
	}
	return pruned
}

// Sub returns the node reached by following prefix from t. The empty prefix
// yields t itself. Words enumerated from the returned node are suffixes of
// prefix.
func (t *Trie) Sub(prefix string) (*Trie, bool) {
	node := t
	for _, r := range prefix {
		node = node.kids.get(r)
		if node == nil {
			return nil, false
		}
	}
	return node, true
}

// IsWord reports whether a word ends at this node.
func (t *Trie) IsWord() bool {
	return t.pop != nil
}

// Degree returns the number of children of this node.
func (t *Trie) Degree() int {
	return t.kids.len()
}

// Empty reports whether nothing is stored under this node.
func (t *Trie) Empty() bool {
	return t.kids.len() == 0
}

func (t *Trie) dead() bool {
	return !t.IsWord() && t.kids.len() == 0
}

func mustWord(word string) {
	if word == "" {
		panic(ErrEmptyWord)
	}
}
