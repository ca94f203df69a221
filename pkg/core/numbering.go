package core

import (
	"slices"
	"sort"
)

// LevelOverride replaces the properties of one level of a numbering
// definition. Only the start value is modelled.
type LevelOverride struct {
	Level int  `json:"level" yaml:"level"`
	Start *int `json:"start,omitempty" yaml:"start,omitempty"`
}

// SetStartOverride forces the counter of the overridden level to begin at v.
func (o *LevelOverride) SetStartOverride(v int) {
	o.Start = &v
}

// Num is a concrete numbering definition. Paragraphs reference it by NumID.
type Num struct {
	NumID         int              `json:"num_id" yaml:"num_id"`
	AbstractNumID int              `json:"abstract_num_id" yaml:"abstract_num_id"`
	Overrides     []*LevelOverride `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// AddLevelOverride appends an override for level and returns it.
func (n *Num) AddLevelOverride(level int) *LevelOverride {
	o := &LevelOverride{Level: level}
	n.Overrides = append(n.Overrides, o)
	return o
}

// Override returns the override for level, or nil.
func (n *Num) Override(level int) *LevelOverride {
	for _, o := range n.Overrides {
		if o != nil && o.Level == level {
			return o
		}
	}
	return nil
}

// Numbering is the store of numbering definitions of a document.
type Numbering struct {
	nums []*Num
}

// AddNum registers a new definition bound to the abstract definition
// abstractNumID. It takes the lowest unused id starting at 1.
func (n *Numbering) AddNum(abstractNumID int) *Num {
	num := &Num{NumID: n.nextNumID(), AbstractNumID: abstractNumID}
	n.nums = append(n.nums, num)
	return num
}

// Num looks a definition up by id.
func (n *Numbering) Num(id int) (*Num, bool) {
	for _, num := range n.nums {
		if num.NumID == id {
			return num, true
		}
	}
	return nil, false
}

// Nums returns the definitions in registration order.
func (n *Numbering) Nums() []*Num {
	return slices.Clone(n.nums)
}

// Len returns the number of registered definitions.
func (n *Numbering) Len() int {
	return len(n.nums)
}

// restore registers num with its id as-is; used when loading snapshots.
func (n *Numbering) restore(num *Num) {
	n.nums = append(n.nums, num)
}

func (n *Numbering) nextNumID() int {
	used := make([]int, 0, len(n.nums))
	for _, num := range n.nums {
		used = append(used, num.NumID)
	}
	sort.Ints(used)

	next := 1
	for _, id := range used {
		if id == next {
			next++
		} else if id > next {
			break
		}
	}
	return next
}
