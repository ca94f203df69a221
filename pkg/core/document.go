package core

import (
	"fmt"
	"sort"
)

// Document is the central entity of the domain: an ordered body of
// paragraphs plus the numbering definitions they reference.
type Document struct {
	ID        string
	body      Body
	numbering Numbering
}

// NewDocument returns an empty document identified by id.
func NewDocument(id string) *Document {
	return &Document{ID: id}
}

// Body returns the paragraph container of the document.
func (d *Document) Body() *Body {
	return &d.body
}

// Numbering returns the numbering definitions store of the document.
func (d *Document) Numbering() *Numbering {
	return &d.numbering
}

// Paragraphs returns the body paragraphs in document order.
func (d *Document) Paragraphs() []*Paragraph {
	return d.body.Paragraphs()
}

// Summary is a lightweight description of a stored document.
type Summary struct {
	ID         string `json:"id" yaml:"id"`
	Paragraphs int    `json:"paragraphs" yaml:"paragraphs"`
	Items      int    `json:"items" yaml:"items"`
	NumIDs     []int  `json:"num_ids,omitempty" yaml:"num_ids,omitempty"`
}

// Summary computes the Summary of the current document state.
func (d *Document) Summary() Summary {
	s := Summary{ID: d.ID, Paragraphs: d.body.Len()}
	seen := make(map[int]bool)
	for _, p := range d.body.paragraphs {
		if p.Numbering == nil {
			continue
		}
		s.Items++
		if !seen[p.Numbering.NumID] {
			seen[p.Numbering.NumID] = true
			s.NumIDs = append(s.NumIDs, p.Numbering.NumID)
		}
	}
	sort.Ints(s.NumIDs)
	return s
}

// Snapshot is the storage-neutral form of a Document.
// Adapters serialize snapshots; they never touch the live object graph.
type Snapshot struct {
	ID         string              `json:"id" yaml:"id"`
	Paragraphs []ParagraphSnapshot `json:"paragraphs" yaml:"paragraphs"`
	Nums       []*Num              `json:"nums,omitempty" yaml:"nums,omitempty"`
}

// ParagraphSnapshot is the storage-neutral form of a Paragraph.
type ParagraphSnapshot struct {
	Text       string      `json:"text" yaml:"text"`
	LeftIndent int64       `json:"left_indent,omitempty" yaml:"left_indent,omitempty"`
	Numbering  *Membership `json:"numbering,omitempty" yaml:"numbering,omitempty"`
}

// Snapshot captures the document state.
func (d *Document) Snapshot() Snapshot {
	s := Snapshot{ID: d.ID, Paragraphs: make([]ParagraphSnapshot, 0, d.body.Len())}
	for _, p := range d.body.paragraphs {
		ps := ParagraphSnapshot{Text: p.Text, LeftIndent: p.LeftIndent.Emu()}
		if p.Numbering != nil {
			m := *p.Numbering
			ps.Numbering = &m
		}
		s.Paragraphs = append(s.Paragraphs, ps)
	}
	for _, num := range d.numbering.nums {
		c := *num
		c.Overrides = make([]*LevelOverride, 0, len(num.Overrides))
		for _, o := range num.Overrides {
			oc := *o
			c.Overrides = append(c.Overrides, &oc)
		}
		s.Nums = append(s.Nums, &c)
	}
	return s
}

// FromSnapshot rebuilds a Document. Duplicate numbering ids are rejected;
// null definitions and null level overrides are dropped.
func FromSnapshot(s Snapshot) (*Document, error) {
	d := NewDocument(s.ID)
	for _, num := range s.Nums {
		if num == nil {
			continue
		}
		if _, dup := d.numbering.Num(num.NumID); dup {
			return nil, fmt.Errorf("duplicate numbering id %d", num.NumID)
		}
		c := &Num{NumID: num.NumID, AbstractNumID: num.AbstractNumID}
		for _, o := range num.Overrides {
			if o != nil {
				oc := *o
				c.Overrides = append(c.Overrides, &oc)
			}
		}
		d.numbering.restore(c)
	}
	for _, ps := range s.Paragraphs {
		p := &Paragraph{Text: ps.Text, LeftIndent: Emu(ps.LeftIndent)}
		if ps.Numbering != nil {
			m := *ps.Numbering
			p.Numbering = &m
		}
		d.body.attach(p)
	}
	return d, nil
}
