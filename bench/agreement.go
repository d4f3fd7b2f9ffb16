package bench

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gophloop/loopforge/lsg"
)

// memberSetKey renders a loop's sorted member IDs as a comparable string, so
// two loops with the same members compare equal regardless of engine,
// emission order, or internal loop identity.
func memberSetKey(l *lsg.SimpleLoop) string {
	members := l.Members()
	ids := make([]int, len(members))
	for i, m := range members {
		ids[i] = m.ID()
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ",")
}

// agree reports whether a and b registered the same multiset of loop member
// sets, independent of emission order or nesting representation.
func agree(a, b *lsg.LoopStructureGraph) bool {
	aKeys := loopKeys(a)
	bKeys := loopKeys(b)
	if len(aKeys) != len(bKeys) {
		return false
	}
	sort.Strings(aKeys)
	sort.Strings(bKeys)
	for i := range aKeys {
		if aKeys[i] != bKeys[i] {
			return false
		}
	}
	return true
}

func loopKeys(g *lsg.LoopStructureGraph) []string {
	loops := g.Loops()
	keys := make([]string, len(loops))
	for i, l := range loops {
		keys[i] = memberSetKey(l)
	}
	return keys
}
