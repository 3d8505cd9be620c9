package voronoi

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// walk returns the values of the tree in order, read from the tree links.
func walk(t *rbTree[int]) []int {
	var out []int
	var visit func(n *rbNode[int])
	visit = func(n *rbNode[int]) {
		if n == nil {
			return
		}
		visit(n.left)
		out = append(out, n.value)
		visit(n.right)
	}
	visit(t.root)
	return out
}

// list returns the values of the tree in order, read from the thread.
func list(t *rbTree[int]) []int {
	var out []int
	for n := t.head(); n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// blackHeight checks the red-black rules below n and returns its black height.
func blackHeight(t *testing.T, n *rbNode[int]) int {
	t.Helper()
	if n == nil {
		return 1
	}
	if n.left != nil {
		require.Same(t, n, n.left.parent)
	}
	if n.right != nil {
		require.Same(t, n, n.right.parent)
	}
	if n.red {
		require.False(t, isRed(n.left), "red node %d has a red child", n.value)
		require.False(t, isRed(n.right), "red node %d has a red child", n.value)
	}
	l := blackHeight(t, n.left)
	r := blackHeight(t, n.right)
	require.Equal(t, l, r, "unbalanced at %d", n.value)
	if n.red {
		return l
	}
	return l + 1
}

func requireTree(t *testing.T, tree *rbTree[int], want []int) {
	t.Helper()
	if diff := cmp.Diff(want, walk(tree), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("tree order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, list(tree), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("list order mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, len(want), tree.len())
	if tree.root != nil {
		require.False(t, tree.root.red, "root is red")
		require.Nil(t, tree.root.parent)
	}
	blackHeight(t, tree.root)
}

func TestRBTree_InsertSuccessor(t *testing.T) {
	var tree rbTree[int]
	require.Nil(t, tree.head())

	a := tree.insertSuccessor(nil, 1)
	c := tree.insertSuccessor(a, 3)
	tree.insertSuccessor(a, 2)
	tree.insertSuccessor(nil, 0)
	tree.insertSuccessor(c, 4)

	requireTree(t, &tree, []int{0, 1, 2, 3, 4})
	require.Equal(t, 0, tree.head().value)
	require.Nil(t, tree.head().previous)
}

func TestRBTree_Append(t *testing.T) {
	var tree rbTree[int]
	var last *rbNode[int]
	var want []int
	for i := 0; i < 1000; i++ {
		last = tree.insertSuccessor(last, i)
		want = append(want, i)
	}
	requireTree(t, &tree, want)
}

func TestRBTree_Random(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	var tree rbTree[int]
	// nodes mirrors the tree in order
	var nodes []*rbNode[int]

	values := func() []int {
		out := make([]int, len(nodes))
		for i, n := range nodes {
			out[i] = n.value
		}
		return out
	}

	for i := 0; i < 2000; i++ {
		if len(nodes) > 0 && rnd.Intn(3) == 0 {
			k := rnd.Intn(len(nodes))
			tree.removeNode(nodes[k])
			nodes = append(nodes[:k], nodes[k+1:]...)
		} else {
			k := rnd.Intn(len(nodes) + 1)
			var after *rbNode[int]
			if k > 0 {
				after = nodes[k-1]
			}
			n := tree.insertSuccessor(after, i)
			nodes = append(nodes[:k], append([]*rbNode[int]{n}, nodes[k:]...)...)
		}
		if i%97 == 0 {
			requireTree(t, &tree, values())
		}
	}
	requireTree(t, &tree, values())

	for len(nodes) > 0 {
		k := rnd.Intn(len(nodes))
		tree.removeNode(nodes[k])
		nodes = append(nodes[:k], nodes[k+1:]...)
	}
	requireTree(t, &tree, nil)
	require.Nil(t, tree.root)
}
