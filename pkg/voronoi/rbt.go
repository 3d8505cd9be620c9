package voronoi

// rbTree is a red-black tree whose nodes are also threaded into a doubly
// linked list in key order. Callers position new nodes explicitly with
// insertSuccessor, so the tree itself never compares values: the beachline
// orders arcs by x at the sweep line and the event queue orders circle events
// by sweep coordinate.
type rbTree[T any] struct {
	root *rbNode[T]
	size int
}

type rbNode[T any] struct {
	value    T
	left     *rbNode[T]
	right    *rbNode[T]
	parent   *rbNode[T]
	previous *rbNode[T]
	next     *rbNode[T]
	red      bool
}

func (t *rbTree[T]) len() int {
	return t.size
}

// insertSuccessor inserts value immediately after node in order. A nil node
// inserts value as the new first element.
func (t *rbTree[T]) insertSuccessor(node *rbNode[T], value T) *rbNode[T] {
	successor := &rbNode[T]{value: value, red: true}
	t.size++

	var parent *rbNode[T]
	switch {
	case node != nil:
		successor.previous = node
		successor.next = node.next
		if node.next != nil {
			node.next.previous = successor
		}
		node.next = successor
		if node.right != nil {
			parent = t.first(node.right)
			parent.left = successor
		} else {
			node.right = successor
			parent = node
		}
	case t.root != nil:
		parent = t.first(t.root)
		successor.next = parent
		parent.previous = successor
		parent.left = successor
	default:
		t.root = successor
	}
	successor.parent = parent

	t.fixInsert(successor)
	return successor
}

func (t *rbTree[T]) fixInsert(node *rbNode[T]) {
	parent := node.parent
	for parent != nil && parent.red {
		grandpa := parent.parent
		if parent == grandpa.left {
			uncle := grandpa.right
			if uncle != nil && uncle.red {
				parent.red = false
				uncle.red = false
				grandpa.red = true
				node = grandpa
			} else {
				if node == parent.right {
					t.rotateLeft(parent)
					node = parent
					parent = node.parent
				}
				parent.red = false
				grandpa.red = true
				t.rotateRight(grandpa)
			}
		} else {
			uncle := grandpa.left
			if uncle != nil && uncle.red {
				parent.red = false
				uncle.red = false
				grandpa.red = true
				node = grandpa
			} else {
				if node == parent.left {
					t.rotateRight(parent)
					node = parent
					parent = node.parent
				}
				parent.red = false
				grandpa.red = true
				t.rotateLeft(grandpa)
			}
		}
		parent = node.parent
	}
	t.root.red = false
}

// removeNode unlinks node from both the tree and the ordered list.
func (t *rbTree[T]) removeNode(node *rbNode[T]) {
	t.size--
	if node.next != nil {
		node.next.previous = node.previous
	}
	if node.previous != nil {
		node.previous.next = node.next
	}
	node.next = nil
	node.previous = nil

	parent := node.parent
	left := node.left
	right := node.right

	var next *rbNode[T]
	switch {
	case left == nil:
		next = right
	case right == nil:
		next = left
	default:
		next = t.first(right)
	}

	if parent != nil {
		if parent.left == node {
			parent.left = next
		} else {
			parent.right = next
		}
	} else {
		t.root = next
	}

	var red bool
	if left != nil && right != nil {
		red = next.red
		next.red = node.red
		next.left = left
		left.parent = next
		if next != right {
			parent = next.parent
			next.parent = node.parent
			node = next.right
			parent.left = node
			next.right = right
			right.parent = next
		} else {
			next.parent = parent
			parent = next
			node = next.right
		}
	} else {
		red = node.red
		node = next
	}

	if node != nil {
		node.parent = parent
	}
	if red {
		return
	}
	if node != nil && node.red {
		node.red = false
		return
	}
	t.fixRemove(node, parent)
}

func (t *rbTree[T]) fixRemove(node, parent *rbNode[T]) {
	var sibling *rbNode[T]
	for node != t.root {
		if node == parent.left {
			sibling = parent.right
			if sibling.red {
				sibling.red = false
				parent.red = true
				t.rotateLeft(parent)
				sibling = parent.right
			}
			if isRed(sibling.left) || isRed(sibling.right) {
				if !isRed(sibling.right) {
					sibling.left.red = false
					sibling.red = true
					t.rotateRight(sibling)
					sibling = parent.right
				}
				sibling.red = parent.red
				parent.red = false
				sibling.right.red = false
				t.rotateLeft(parent)
				node = t.root
				break
			}
		} else {
			sibling = parent.left
			if sibling.red {
				sibling.red = false
				parent.red = true
				t.rotateRight(parent)
				sibling = parent.left
			}
			if isRed(sibling.left) || isRed(sibling.right) {
				if !isRed(sibling.left) {
					sibling.right.red = false
					sibling.red = true
					t.rotateLeft(sibling)
					sibling = parent.left
				}
				sibling.red = parent.red
				parent.red = false
				sibling.left.red = false
				t.rotateRight(parent)
				node = t.root
				break
			}
		}
		sibling.red = true
		node = parent
		parent = parent.parent
		if node.red {
			break
		}
	}
	if node != nil {
		node.red = false
	}
}

func isRed[T any](node *rbNode[T]) bool {
	return node != nil && node.red
}

func (t *rbTree[T]) rotateLeft(p *rbNode[T]) {
	q := p.right
	t.replaceChild(p, q)
	q.parent = p.parent
	p.parent = q
	p.right = q.left
	if p.right != nil {
		p.right.parent = p
	}
	q.left = p
}

func (t *rbTree[T]) rotateRight(p *rbNode[T]) {
	q := p.left
	t.replaceChild(p, q)
	q.parent = p.parent
	p.parent = q
	p.left = q.right
	if p.left != nil {
		p.left.parent = p
	}
	q.right = p
}

// replaceChild points p's parent (or the root) at q.
func (t *rbTree[T]) replaceChild(p, q *rbNode[T]) {
	parent := p.parent
	switch {
	case parent == nil:
		t.root = q
	case parent.left == p:
		parent.left = q
	default:
		parent.right = q
	}
}

// first returns the leftmost node of the subtree rooted at node.
func (t *rbTree[T]) first(node *rbNode[T]) *rbNode[T] {
	for node.left != nil {
		node = node.left
	}
	return node
}

// head returns the first node in order, or nil for an empty tree.
func (t *rbTree[T]) head() *rbNode[T] {
	if t.root == nil {
		return nil
	}
	return t.first(t.root)
}
