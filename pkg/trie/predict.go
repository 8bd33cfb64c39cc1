package trie

import "sort"

// Prediction is a ranked completion.
type Prediction struct {
	Word       string `msgpack:"w"`
	Popularity int    `msgpack:"p"`
}

// AllWords returns every word stored under t, depth first with children in
// insertion order. A word is listed before the words it is a prefix of.
// The result is rebuilt on every call.
func (t *Trie) AllWords() []string {
	words := []string{}
	t.walk(nil, func(word []rune, _ int) {
		words = append(words, string(word))
	})
	return words
}

// WordsWithPrefix lists the stored words starting with prefix in enumeration
// order, prefix itself first when it is stored. The empty prefix lists every
// word.
func (t *Trie) WordsWithPrefix(prefix string) []string {
	words := []string{}
	node, ok := t.Sub(prefix)
	if !ok {
		return words
	}
	if node.IsWord() {
		words = append(words, prefix)
	}
	node.walk([]rune(prefix), func(word []rune, _ int) {
		words = append(words, string(word))
	})
	return words
}

// Predict returns the most popular word starting with prefix, prefix itself
// included when it is stored.
func (t *Trie) Predict(prefix string) (string, bool) {
	best := t.PredictScored(prefix, 1)
	if len(best) == 0 {
		return "", false
	}
	return best[0].Word, true
}

// PredictN returns up to n words starting with prefix, most popular first.
// It returns an empty slice when no word matches or n < 1.
func (t *Trie) PredictN(prefix string, n int) []string {
	mustWord(prefix)
	if n < 1 {
		return []string{}
	}
	ranked := t.PredictScored(prefix, n)
	words := make([]string, len(ranked))
	for i, p := range ranked {
		words[i] = p.Word
	}
	return words
}

// PredictScored ranks the words starting with prefix by popularity and keeps
// the first n of them, or all of them when n < 1. Equal popularities keep
// enumeration order, with prefix itself considered after its extensions.
func (t *Trie) PredictScored(prefix string, n int) []Prediction {
	mustWord(prefix)

	node, ok := t.Sub(prefix)
	if !ok {
		return []Prediction{}
	}

	ranked := []Prediction{}
	node.walk([]rune(prefix), func(word []rune, pop int) {
		ranked = append(ranked, Prediction{Word: string(word), Popularity: pop})
	})
	if node.IsWord() {
		ranked = append(ranked, Prediction{Word: prefix, Popularity: *node.pop})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Popularity > ranked[j].Popularity
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// walk emits every word end below t. word is only valid during the call.
func (t *Trie) walk(word []rune, emit func(word []rune, pop int)) {
	t.kids.each(func(r rune, n *Trie) {
		next := append(word, r)
		if n.IsWord() {
			emit(next, *n.pop)
		}
		n.walk(next, emit)
	})
}
