package core

import "slices"

// Membership ties a paragraph to a numbering definition at a given level.
// A paragraph without membership is plain body text.
type Membership struct {
	NumID int `json:"num_id" yaml:"num_id"`
	Level int `json:"level" yaml:"level"`
}

// Paragraph is a single block of text in a document body.
type Paragraph struct {
	Text       string
	LeftIndent Length
	Numbering  *Membership

	body *Body
}

// SetNumbering makes the paragraph a member of the numbering definition numID.
func (p *Paragraph) SetNumbering(numID, level int) {
	p.Numbering = &Membership{NumID: numID, Level: level}
}

// ClearNumbering turns the paragraph back into plain body text.
func (p *Paragraph) ClearNumbering() {
	p.Numbering = nil
}

// NumID returns the numbering id and whether the paragraph has one.
func (p *Paragraph) NumID() (int, bool) {
	if p.Numbering == nil {
		return 0, false
	}
	return p.Numbering.NumID, true
}

// Attached reports whether the paragraph still lives in a body.
func (p *Paragraph) Attached() bool {
	return p.body != nil && p.body.indexOf(p) >= 0
}

// InsertParagraphBefore creates a new paragraph holding text and places it
// immediately before p in the same body.
func (p *Paragraph) InsertParagraphBefore(text string) (*Paragraph, error) {
	if p == nil || p.body == nil {
		return nil, ErrInvalidAnchor
	}
	return p.body.insertBefore(p, text)
}

// Body is the ordered sequence of paragraphs of a document.
type Body struct {
	paragraphs []*Paragraph
}

// AddParagraph appends a paragraph holding text to the end of the body.
func (b *Body) AddParagraph(text string) *Paragraph {
	p := &Paragraph{Text: text, body: b}
	b.paragraphs = append(b.paragraphs, p)
	return p
}

// Paragraphs returns the paragraphs in document order.
// The returned slice is a copy; the paragraphs are shared.
func (b *Body) Paragraphs() []*Paragraph {
	return slices.Clone(b.paragraphs)
}

// Len returns the number of paragraphs.
func (b *Body) Len() int {
	return len(b.paragraphs)
}

// At returns the paragraph at index i, or nil when out of range.
func (b *Body) At(i int) *Paragraph {
	if i < 0 || i >= len(b.paragraphs) {
		return nil
	}
	return b.paragraphs[i]
}

// Remove detaches p from the body.
func (b *Body) Remove(p *Paragraph) error {
	i := b.indexOf(p)
	if i < 0 {
		return ErrInvalidAnchor
	}
	b.paragraphs = slices.Delete(b.paragraphs, i, i+1)
	p.body = nil
	return nil
}

func (b *Body) insertBefore(anchor *Paragraph, text string) (*Paragraph, error) {
	i := b.indexOf(anchor)
	if i < 0 {
		return nil, ErrInvalidAnchor
	}
	p := &Paragraph{Text: text, body: b}
	b.paragraphs = slices.Insert(b.paragraphs, i, p)
	return p, nil
}

// attach appends an already built paragraph; used when loading snapshots.
func (b *Body) attach(p *Paragraph) {
	p.body = b
	b.paragraphs = append(b.paragraphs, p)
}

func (b *Body) indexOf(p *Paragraph) int {
	return slices.Index(b.paragraphs, p)
}
