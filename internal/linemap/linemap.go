// Package linemap groups the leaf lines of a syntax tree under the line of
// the statement or declaration that owns them.
package linemap

import (
	"sort"

	"github.com/phobologic/locstostms/internal/model"
)

// Map associates each owner line with the set of member lines resolved to
// it. Every owner's set contains the owner itself.
type Map map[int]map[int]struct{}

// Build walks root depth-first in pre-order and records every leaf.
// Comment and enum-constant subtrees are pruned without recursion.
func Build(root *model.Node) Map {
	m := make(Map)
	if root != nil {
		m.walk(root)
	}
	return m
}

func (m Map) walk(n *model.Node) {
	if excluded(n.Kind) {
		return
	}
	if n.IsLeaf() {
		m.Record(n)
		return
	}
	for _, child := range n.Children {
		m.walk(child)
	}
}

// Record adds leaf's begin line to the member set of its owner line.
// Excluded kinds and parentless nodes are ignored.
func (m Map) Record(leaf *model.Node) {
	if excluded(leaf.Kind) || leaf.Parent() == nil {
		return
	}
	m.add(Resolve(leaf), leaf.BeginLine)
}

func (m Map) add(owner, member int) {
	members, ok := m[owner]
	if !ok {
		members = map[int]struct{}{owner: {}}
		m[owner] = members
	}
	members[member] = struct{}{}
}

// Len returns the number of owner lines.
func (m Map) Len() int {
	return len(m)
}

// Owners returns the owner lines in ascending order.
func (m Map) Owners() []int {
	owners := make([]int, 0, len(m))
	for owner := range m {
		owners = append(owners, owner)
	}
	sort.Ints(owners)
	return owners
}

// Members returns the member lines of owner in ascending order, or nil if
// owner is not a key.
func (m Map) Members(owner int) []int {
	set, ok := m[owner]
	if !ok {
		return nil
	}
	lines := make([]int, 0, len(set))
	for line := range set {
		lines = append(lines, line)
	}
	sort.Ints(lines)
	return lines
}

// Pairs returns every (owner, member) association sorted by owner then
// member. Self pairs carry no information and are dropped.
func (m Map) Pairs() []model.Pair {
	var pairs []model.Pair
	for _, owner := range m.Owners() {
		for _, member := range m.Members(owner) {
			if member == owner {
				continue
			}
			pairs = append(pairs, model.Pair{Owner: owner, Member: member})
		}
	}
	return pairs
}
