package layout

import "sync"

// dirtyMarker is implemented by nodes that propagate dirtiness to their
// ancestors. Containers without it are marked with SetDirty(true).
type dirtyMarker interface {
	MarkDirty()
}

// templates maps each shared grid template to the containers using it.
// Containers must be comparable (typically pointers).
var templates = struct {
	sync.Mutex
	users map[*Grid]map[Layoutable]struct{}
}{users: make(map[*Grid]map[Layoutable]struct{})}

// AttachGrid registers container as a user of g.
func AttachGrid(g *Grid, container Layoutable) {
	if g == nil || container == nil {
		return
	}
	templates.Lock()
	defer templates.Unlock()

	set, ok := templates.users[g]
	if !ok {
		set = make(map[Layoutable]struct{})
		templates.users[g] = set
	}
	set[container] = struct{}{}
}

// DetachGrid removes container from the users of g.
func DetachGrid(g *Grid, container Layoutable) {
	if g == nil || container == nil {
		return
	}
	templates.Lock()
	defer templates.Unlock()

	set := templates.users[g]
	delete(set, container)
	if len(set) == 0 {
		delete(templates.users, g)
	}
}

// GridUsers returns the number of containers attached to g.
func GridUsers(g *Grid) int {
	templates.Lock()
	defer templates.Unlock()
	return len(templates.users[g])
}

// ReportGridChange marks every container attached to g dirty.
// A nil g marks every container attached to any grid.
func ReportGridChange(g *Grid) {
	templates.Lock()
	var dirty []Layoutable
	for grid, set := range templates.users {
		if g != nil && grid != g {
			continue
		}
		for c := range set {
			dirty = append(dirty, c)
		}
	}
	templates.Unlock()

	for _, c := range dirty {
		markDirty(c)
	}
}

func markDirty(l Layoutable) {
	if m, ok := l.(dirtyMarker); ok {
		m.MarkDirty()
		return
	}
	l.SetDirty(true)
}

// active holds the containers whose layout is being computed.
var active = struct {
	sync.Mutex
	nodes map[Layoutable]struct{}
}{nodes: make(map[Layoutable]struct{})}

// enter records node as in progress. It returns false if node is already
// being computed.
func enter(node Layoutable) bool {
	active.Lock()
	defer active.Unlock()
	if _, busy := active.nodes[node]; busy {
		return false
	}
	active.nodes[node] = struct{}{}
	return true
}

func leave(node Layoutable) {
	active.Lock()
	defer active.Unlock()
	delete(active.nodes, node)
}
