package render

import (
	"github.com/matzehuels/spinesort/pkg/arrange"
	"github.com/matzehuels/spinesort/pkg/palette"
)

// Kind distinguishes stripes from dividers.
type Kind int

const (
	KindStripe Kind = iota
	KindDivider
)

// String returns "stripe" or "divider".
func (k Kind) String() string {
	if k == KindDivider {
		return "divider"
	}
	return "stripe"
}

// Element is one entry in the stripe list.
type Element struct {
	Kind   Kind
	Group  int            // index of the group the element belongs to (dividers: the group they open)
	Record palette.Record // zero for dividers
}

// IsDivider reports whether e separates two groups.
func (e Element) IsDivider() bool { return e.Kind == KindDivider }

// Build maps groups to the flat stripe list.
func Build(groups arrange.Groups) []Element {
	elems := make([]Element, 0, groups.Len()+len(groups))
	for i, grp := range groups {
		if i > 0 {
			elems = append(elems, Element{Kind: KindDivider, Group: i})
		}
		for _, rec := range grp {
			elems = append(elems, Element{Kind: KindStripe, Group: i, Record: rec})
		}
	}
	return elems
}

// Counts summarizes a stripe list.
type Counts struct {
	Stripes  int
	Dividers int
}

// Count tallies stripes and dividers.
func Count(elems []Element) Counts {
	var c Counts
	for _, e := range elems {
		if e.IsDivider() {
			c.Dividers++
		} else {
			c.Stripes++
		}
	}
	return c
}

// Regroup rebuilds groups from a stripe list, the inverse of [Build].
func Regroup(elems []Element) arrange.Groups {
	groups := arrange.Groups{nil}
	for _, e := range elems {
		if e.IsDivider() {
			groups = append(groups, nil)
			continue
		}
		last := len(groups) - 1
		groups[last] = append(groups[last], e.Record)
	}
	return groups
}
