package Trees

import (
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 40000
	tAddValRange = 80000
)

func randomTree(t *testing.T, n, valRange int) (*BSTree[int], map[int]struct{}) {
	t.Helper()
	tree := New[int]()
	content := make(map[int]struct{})
	for range n {
		a := rg.Intn(valRange)
		tree.Add(a)
		content[a] = struct{}{}
	}
	return tree, content
}

func TestBSTree_Add(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	{
		a := make([]int, tAddN)
		for i := range a {
			a[i] = rg.Intn(tAddValRange)
		}
		for _, b := range a {
			_, in := content[b]
			before := tree.Len()
			if n := tree.Add(b); n == nil || n.Value() != b {
				t.Errorf("failed to insert key %v", b)
			}
			if in && tree.Len() != before {
				t.Errorf("duplicate key %v changed the size", b)
			}
			content[b] = struct{}{}
		}
	}
	if tree.Len() != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Len(), len(content))
	}
	t.Logf("depth: %f, height: %d, size: %d.\n", tree.AverageDepth(), tree.Height(), tree.Len())
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	for v := range tree.All() {
		if _, in := content[v]; !in {
			t.Errorf("tree has non existent key %v", v)
		}
	}
	if tree.Corrupt() {
		t.Fatal("corrupt tree")
	}
}

func TestBSTree_Remove(t *testing.T) {
	tree := New[int]()
	if tree.Remove(0) != false {
		t.Errorf("empty tree has non existent key %v", 0)
	}
	content := make(map[int]struct{})
	{
		a := make([]int, tAddN)
		for i := range a {
			a[i] = rg.Intn(tAddValRange)
		}
		for _, b := range a {
			tree.Add(b)
			content[b] = struct{}{}
		}
		for i := range rg.Intn(len(a)) {
			_, in := content[a[i]]
			if tree.Remove(a[i]) != in {
				t.Errorf("failed to delete key %v", a[i])
			}
			if tree.Remove(a[i]) == true {
				t.Errorf("can delete a second time key %v", a[i])
			}
			delete(content, a[i])
		}
	}
	if tree.Len() != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Len(), len(content))
	}
	t.Logf("depth: %f, height: %d, size: %d.\n", tree.AverageDepth(), tree.Height(), tree.Len())
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	if tree.Corrupt() {
		t.Fatal("corrupt tree")
	}
}

func TestBSTree_AddRemove(t *testing.T) {
	tree, content := randomTree(t, tAddN, tAddValRange)
	for range 4 {
		a := make([]int, rg.Intn(tAddN))
		for i := range a {
			a[i] = rg.Intn(tAddValRange)
		}
		for _, b := range a {
			tree.Add(b)
			content[b] = struct{}{}
		}
		for i := range rg.Intn(len(a) + 1) {
			_, in := content[a[i]]
			if tree.Remove(a[i]) != in {
				t.Errorf("failed to delete key %v", a[i])
			}
			delete(content, a[i])
		}
		if tree.Corrupt() {
			t.Fatal("corrupt tree")
		}
	}
	if tree.Len() != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Len(), len(content))
	}
	s := tree.ToSlice()
	if !slices.IsSorted(s) {
		t.Errorf("sorted is not sorted")
	}
	for _, v := range s {
		if _, in := content[v]; !in {
			t.Errorf("sorted has non existent key %v", v)
		}
	}
}

func TestBSTree_RemoveToEmpty(t *testing.T) {
	tree, content := randomTree(t, 2000, 4000)
	for k := range content {
		if !tree.Remove(k) {
			t.Fatalf("failed to delete key %v", k)
		}
	}
	if tree.Len() != 0 || tree.Root() != nil || !tree.Empty() {
		t.Fatalf("tree not empty, size %d", tree.Len())
	}
	if tree.Corrupt() {
		t.Fatal("corrupt tree")
	}
}

func TestBSTree_InOrder(t *testing.T) {
	tree, content := randomTree(t, tAddN, tAddValRange)
	var st []*Node[int]
	for range 10 {
		var s []int
		st = tree.InOrder(func(n *Node[int]) bool {
			s = append(s, n.Value())
			return rg.Intn(tree.Len()/2) != 0
		}, st)
		if !slices.IsSorted(s) {
			t.Errorf("sorted is not sorted")
		}
	}
	s := tree.ToSlice()
	if len(s) != tree.Len() {
		t.Errorf("sorted size is %d, want %d", len(s), tree.Len())
	}
	for k := range content {
		if _, found := slices.BinarySearch(s, k); !found {
			t.Errorf("sorted does not have key %v", k)
		}
	}
	if !slices.IsSorted(s) {
		t.Errorf("sorted is not sorted")
	}
}

func TestBSTree_InOrderR(t *testing.T) {
	tree, _ := randomTree(t, tAddN, tAddValRange)
	var s []int
	tree.InOrderR(func(n *Node[int]) bool {
		s = append(s, n.Value())
		return true
	}, make([]*Node[int], 0, 32))
	if len(s) != tree.Len() {
		t.Errorf("sorted size is %d, want %d", len(s), tree.Len())
	}
	if b := slices.Collect(tree.Backward()); !slices.Equal(b, s) {
		t.Errorf("Backward differs from InOrderR")
	}
	if slices.Reverse(s); !slices.IsSorted(s) {
		t.Errorf("sorted is not sorted")
	}
}

func TestBSTree_Degenerate(t *testing.T) {
	const n = 5000
	tree := New[int]()
	for i := range n {
		tree.Add(i)
	}
	if tree.Height() != n {
		t.Fatalf("height %d, want %d", tree.Height(), n)
	}
	i := 0
	for v := range tree.All() {
		if v != i {
			t.Fatalf("wrong value %d at %d", v, i)
		}
		i++
	}
	for i := n - 1; i >= 0; i -= 2 {
		if !tree.Remove(i) {
			t.Fatalf("failed to delete key %v", i)
		}
	}
	if tree.Len() != n/2 || tree.Corrupt() {
		t.Fatalf("size %d, want %d", tree.Len(), n/2)
	}
}

func TestBSTree_PreSucc(t *testing.T) {
	const n = 2000
	content := make([]int, n+2)
	content[0] = -1
	content[n+1] = n * 3
	for i := 1; i <= n; i++ {
		content[i] = i * 2
	}
	a := slices.Clone(content)
	rg.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
	tree := New(a...)
	for i := 1; i <= n; i++ {
		if a := tree.Predecessor(content[i], true).Value(); a != content[i-1] {
			t.Fatalf("wrong predecessor %d %d", a, content[i-1])
		}
		if a := tree.Successor(content[i], true).Value(); a != content[i+1] {
			t.Fatalf("wrong successor %d %d", a, content[i+1])
		}
		if a := tree.Predecessor(content[i]+1, false).Value(); a != content[i] {
			t.Fatalf("wrong predecessor %d %d", a, content[i])
		}
		if a := tree.Successor(content[i]-1, false).Value(); a != content[i] {
			t.Fatalf("wrong successor %d %d", a, content[i])
		}
		if a := tree.Predecessor(content[i], false).Value(); a != content[i] {
			t.Fatalf("wrong predecessor %d %d", a, content[i])
		}
	}
	if tree.Predecessor(content[0], true) != nil {
		t.Fatal("shouldn't have predecessor")
	}
	if tree.Successor(content[len(content)-1], true) != nil {
		t.Fatal("shouldn't have successor")
	}
}

func TestNode_NextPrev(t *testing.T) {
	tree, _ := randomTree(t, 3000, 10000)
	s := tree.ToSlice()
	i := 0
	for n := tree.Begin(); n != nil; n = n.Next() {
		if n.Value() != s[i] {
			t.Fatalf("wrong next %d at %d, want %d", n.Value(), i, s[i])
		}
		i++
	}
	if i != len(s) {
		t.Fatalf("visited %d, want %d", i, len(s))
	}
	for n := tree.End(); n != nil; n = n.Prev() {
		i--
		if n.Value() != s[i] {
			t.Fatalf("wrong prev %d at %d, want %d", n.Value(), i, s[i])
		}
	}
	if tree.Begin().Root() != tree.Root() || tree.End().Root() != tree.Root() {
		t.Fatal("wrong root")
	}
}
