package layout

import "sync"

// pass memoizes the natural size of every item queried during one Calculate
// or Compute call. It is discarded when that call returns.
type pass struct {
	naturals map[Layoutable]Size
}

// passes maps the items queried by a running pass to that pass, so that
// ContentExtent called from an item's IntrinsicSize reuses the same memo.
var passes = struct {
	sync.Mutex
	byItem map[Layoutable]*pass
}{byItem: make(map[Layoutable]*pass)}

func newPass() *pass {
	return &pass{naturals: make(map[Layoutable]Size)}
}

// passFor returns the running pass that queried item, or nil.
func passFor(item Layoutable) *pass {
	passes.Lock()
	defer passes.Unlock()
	return passes.byItem[item]
}

// natural returns the intrinsic size of item, queried at most once per pass.
// A nil pass queries every time.
func (p *pass) natural(item Layoutable) Size {
	if p == nil {
		return querySize(item)
	}
	if size, ok := p.naturals[item]; ok {
		return size
	}

	passes.Lock()
	if _, taken := passes.byItem[item]; !taken {
		passes.byItem[item] = p
	}
	passes.Unlock()

	size := querySize(item)
	p.naturals[item] = size
	return size
}

// release forgets the items registered by p.
func (p *pass) release() {
	passes.Lock()
	defer passes.Unlock()
	for item := range p.naturals {
		if passes.byItem[item] == p {
			delete(passes.byItem, item)
		}
	}
}

func querySize(item Layoutable) Size {
	w, h := item.IntrinsicSize()
	return Size{Width: max(0, w), Height: max(0, h)}
}
