package layout

import "testing"

// buildTree creates a tree with the specified branching factor and depth.
// Containers alternate between grid and flex at each level.
func buildTree(branching, depth int) *Node {
	root := NewNode(DefaultStyle())
	root.Style.Width = Fixed(1000)
	root.Style.Height = Fixed(1000)

	if depth > 0 {
		addChildrenRecursive(root, branching, depth-1, 0)
	}

	return root
}

func addChildrenRecursive(parent *Node, branching, remainingDepth, level int) {
	if level%2 == 0 {
		parent.SetGrid(NewGrid(
			[]Track{RepeatFit(100, Fr(1))},
			[]Track{AutoTrack(), Fr(1)},
		))
	} else {
		parent.SetFlex(FlexConfig{Direction: Column, Wrap: true, Gap: 2, AlignItems: AlignStretch})
	}

	for i := 0; i < branching; i++ {
		child := NewNode(DefaultStyle())
		child.Style.Item.Grow = 1
		child.Measure = func() (int, int) { return 20 + i, 10 }
		parent.AddChild(child)

		if remainingDepth > 0 {
			addChildrenRecursive(child, branching, remainingDepth-1, level+1)
		}
	}
}

// countNodes counts the total number of nodes in a tree.
func countNodes(node *Node) int {
	if node == nil {
		return 0
	}
	count := 1
	for _, child := range node.Children {
		count += countNodes(child)
	}
	return count
}

// BenchmarkCalculate_100Nodes benchmarks layout calculation with ~100 nodes.
// Tree structure: branching=3, depth=4 = 1 + 3 + 9 + 27 + 81 = 121 nodes
func BenchmarkCalculate_100Nodes(b *testing.B) {
	root := buildTree(3, 4)
	b.Logf("Node count: %d", countNodes(root))
	defer root.Release()

	Calculate(root, 1000, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root.MarkDirty()
		Calculate(root, 1000, 1000)
	}
}

// BenchmarkCalculate_Incremental benchmarks incremental layout
// when only a single leaf node is modified.
func BenchmarkCalculate_Incremental(b *testing.B) {
	root := buildTree(3, 4)
	defer root.Release()
	Calculate(root, 1000, 1000)

	leaf := root
	for len(leaf.Children) > 0 {
		leaf = leaf.Children[0]
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		leaf.MarkDirty()
		Calculate(root, 1000, 1000)
	}
}

// BenchmarkResolveTracks benchmarks repeat expansion at the ceiling.
func BenchmarkResolveTracks(b *testing.B) {
	descs := []Track{Px(10), Repeat(1, Px(1), Fr(1)), Fr(2)}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ResolveTracks(descs, 1_000_000, 0)
	}
}

// BenchmarkPlaceItems benchmarks auto-placement of many items.
func BenchmarkPlaceItems(b *testing.B) {
	reqs := make([]CellRequest, 1000)
	for i := range reqs {
		reqs[i] = CellRequest{Column: AutoCell(1+i%3, AlignStretch), Row: AutoCell(1, AlignStretch)}
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		PlaceItems(reqs, 12, 0, FlowRow)
	}
}
