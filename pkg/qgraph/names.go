package qgraph

import "strconv"

// namePool hands out external node names with a common prefix ("v" for
// node vertices and auxiliary stubs, "b" for boundary vertices). The used
// set is shared between pools so a name can never be handed out twice
// even across pools.
//
// The pool is an index-addressed arena: instead of pre-generating and
// removing candidate names, a cursor walks the name space and a presence
// check skips names already taken.
type namePool struct {
	prefix string
	next   int
	used   map[string]bool
}

func newNamePool(prefix string, used map[string]bool) *namePool {
	return &namePool{prefix: prefix, used: used}
}

// take returns preferred if it is non-empty and not yet used, marking it
// used; otherwise it mints the next free name from the arena.
//
// A preferred name that lies outside this pool's prefix space (so it was
// never a pool candidate) is still honored: the used-set check alone
// guarantees uniqueness, so the miss is tolerated rather than treated as
// an invariant violation.
func (p *namePool) take(preferred string) string {
	if preferred != "" && !p.used[preferred] {
		p.used[preferred] = true
		return preferred
	}
	return p.fresh()
}

// fresh mints the next unused name from the arena.
func (p *namePool) fresh() string {
	for {
		name := p.prefix + strconv.Itoa(p.next)
		p.next++
		if !p.used[name] {
			p.used[name] = true
			return name
		}
	}
}
