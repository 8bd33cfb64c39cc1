package trie

// Fold reduces the tree rooted at t bottom-up. Every child is folded first,
// in insertion order, and f combines the node with its children's results.
// A leaf sees an empty slice.
func Fold[A any](t *Trie, f func(node *Trie, children []A) A) A {
	results := make([]A, 0, t.kids.len())
	t.kids.each(func(_ rune, n *Trie) {
		results = append(results, Fold(n, f))
	})
	return f(t, results)
}

// Stats bundles the structural figures of a dictionary.
type Stats struct {
	Size             int    `msgpack:"size"`
	Height           int    `msgpack:"height"`
	Leaves           int    `msgpack:"leaves"`
	MaximumBranching int    `msgpack:"branching"`
	Words            int    `msgpack:"words"`
	LongestWord      string `msgpack:"longest"`
}

// Stats computes all figures in one call.
func (t *Trie) Stats() Stats {
	return Stats{
		Size:             t.Size(),
		Height:           t.Height(),
		Leaves:           t.NumLeaves(),
		MaximumBranching: t.MaximumBranching(),
		Words:            t.Count(),
		LongestWord:      t.LongestWord(),
	}
}

// Size returns the number of nodes, root included.
func (t *Trie) Size() int {
	return Fold(t, func(_ *Trie, kids []int) int {
		return 1 + sum(kids)
	})
}

// Height returns the length of the longest branch. An empty dictionary has
// height 0.
func (t *Trie) Height() int {
	return Fold(t, func(_ *Trie, kids []int) int {
		return 1 + maxOf(kids, 0)
	}) - 1
}

// NumLeaves returns the number of childless nodes, which is the number of
// words that are not a prefix of another word. An empty dictionary has one
// leaf: the root.
func (t *Trie) NumLeaves() int {
	return Fold(t, func(node *Trie, kids []int) int {
		if node.kids.len() == 0 {
			return 1
		}
		return sum(kids)
	})
}

// MaximumBranching returns the largest number of children held by any node.
func (t *Trie) MaximumBranching() int {
	return Fold(t, func(node *Trie, kids []int) int {
		return maxOf(kids, node.kids.len())
	})
}

// Count returns the number of stored words.
func (t *Trie) Count() int {
	return Fold(t, func(node *Trie, kids []int) int {
		n := sum(kids)
		if node.IsWord() {
			n++
		}
		return n
	})
}

// LongestWord returns a word of maximal length. When several words share that
// length the one reached through the earliest inserted branch wins.
func (t *Trie) LongestWord() string {
	var (
		best    *Trie
		bestKey rune
		height  = -1
	)
	t.kids.each(func(r rune, n *Trie) {
		if h := n.Height(); h > height {
			best, bestKey, height = n, r, h
		}
	})
	if best == nil {
		return ""
	}
	return string(bestKey) + best.LongestWord()
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func maxOf(xs []int, floor int) int {
	m := floor
	for _, x := range xs {
		if x > m {
			m = x
		}
	}
	return m
}
