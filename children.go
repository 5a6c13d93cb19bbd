package arbor

// ChildList is the ordered child storage shared by the variable-arity
// combinators. Children are owned by value; the list order is composition
// order, so the last child is drawn on top and hit tested first.
type ChildList struct {
	items []Element
}

// AddChild appends n as the frontmost child.
func (c *ChildList) AddChild(n Node) {
	c.items = append(c.items, Wrap(n))
	if globalDebug {
		debugCheckChildCount(c)
	}
}

// AddChildren appends each node in order.
func (c *ChildList) AddChildren(nodes ...Node) {
	for _, n := range nodes {
		c.AddChild(n)
	}
}

// AddChildAt inserts n at index. Panics if index is out of range.
func (c *ChildList) AddChildAt(n Node, index int) {
	if index < 0 || index > len(c.items) {
		panic("arbor: child index out of range")
	}
	c.items = append(c.items, Element{})
	copy(c.items[index+1:], c.items[index:])
	c.items[index] = Wrap(n)
	if globalDebug {
		debugCheckChildCount(c)
	}
}

// RemoveChildAt removes and returns the child at index.
func (c *ChildList) RemoveChildAt(index int) Element {
	if index < 0 || index >= len(c.items) {
		panic("arbor: child index out of range")
	}
	e := c.items[index]
	copy(c.items[index:], c.items[index+1:])
	c.items[len(c.items)-1] = Element{}
	c.items = c.items[:len(c.items)-1]
	return e
}

// RemoveChildren drops every child.
func (c *ChildList) RemoveChildren() {
	clear(c.items)
	c.items = c.items[:0]
}

// SetChildIndex moves the child at from to index to, shifting the others.
func (c *ChildList) SetChildIndex(from, to int) {
	n := len(c.items)
	if from < 0 || from >= n || to < 0 || to >= n {
		panic("arbor: child index out of range")
	}
	if from == to {
		return
	}
	e := c.items[from]
	if from < to {
		copy(c.items[from:], c.items[from+1:to+1])
	} else {
		copy(c.items[to+1:], c.items[to:from])
	}
	c.items[to] = e
}

// ChildAt returns the child at index.
func (c *ChildList) ChildAt(index int) *Element {
	return &c.items[index]
}

// NumChildren returns the number of children.
func (c *ChildList) NumChildren() int {
	return len(c.items)
}
