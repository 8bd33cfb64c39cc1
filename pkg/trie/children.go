package trie

// children maps runes to child nodes and remembers the order in which each
// rune was first linked. A rune that is unlinked and linked again goes to the
// end.
type children struct {
	keys  []rune
	nodes map[rune]*Trie
}

func (c *children) len() int {
	return len(c.keys)
}

func (c *children) get(r rune) *Trie {
	return c.nodes[r]
}

func (c *children) getOrCreate(r rune) *Trie {
	if n, ok := c.nodes[r]; ok {
		return n
	}
	if c.nodes == nil {
		c.nodes = make(map[rune]*Trie, 1)
	}
	n := &Trie{}
	c.nodes[r] = n
	c.keys = append(c.keys, r)
	return n
}

func (c *children) remove(r rune) {
	if _, ok := c.nodes[r]; !ok {
		return
	}
	delete(c.nodes, r)
	for i, k := range c.keys {
		if k == r {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}

// each calls fn for every child in insertion order.
func (c *children) each(fn func(r rune, n *Trie)) {
	for _, r := range c.keys {
		fn(r, c.nodes[r])
	}
}
