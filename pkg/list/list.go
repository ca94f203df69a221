// Package list groups the paragraphs of a document into numbered or bulleted
// lists and nests them.
//
// A List is a lightweight handle: it owns no paragraphs and can be dropped
// at any time. Its items are recomputed from the document on every call to
// Items, so they always reflect the current state of the body.
//
//	top := list.New(doc, doc, list.WithFormat(list.FormatDecimal))
//	top.AddItem("first")
//	sub := top.CreateSubList(list.WithFormat(list.FormatBullet))
//	sub.AddItem("nested")
package list

import (
	"log/slog"

	"github.com/aretw0/outline/pkg/core"
)

// IndentPerLevel is the left indentation added for each nesting level.
const IndentPerLevel = 0.25 // inches

// Container exposes the paragraphs a list filters for its items.
// core.Document and core.Body both satisfy it.
type Container interface {
	Paragraphs() []*core.Paragraph
}

// Document is the part of a document a list writes into.
type Document interface {
	Body() *core.Body
	Numbering() *core.Numbering
}

// List is a handle on the paragraphs of a document sharing one numbering id.
type List struct {
	parent Container
	doc    Document
	numID  int
	level  int
	logger *slog.Logger
}

// New registers a fresh numbering definition in doc and returns a list bound
// to it. The definition restarts at 1 on every level from 0 through the
// list level, so a nested list never continues a counter shared with an
// earlier list.
//
// The registration is permanent: discarding the List does not remove it.
func New(parent Container, doc Document, opts ...Option) *List {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	abstractID, known := AbstractNumID(o.format)
	if !known && o.logger != nil {
		o.logger.Warn("unknown numbering format, using fallback",
			"format", o.format,
			"abstract_num_id", abstractID,
		)
	}

	num := doc.Numbering().AddNum(abstractID)
	for lvl := 0; lvl <= o.level; lvl++ {
		num.AddLevelOverride(lvl).SetStartOverride(1)
	}

	if o.logger != nil {
		o.logger.Debug("numbering registered", "num_id", num.NumID, "abstract_num_id", abstractID, "level", o.level)
	}

	return &List{
		parent: parent,
		doc:    doc,
		numID:  num.NumID,
		level:  o.level,
		logger: o.logger,
	}
}

// Attach returns a list bound to an existing numbering id. The document is
// not modified.
func Attach(parent Container, doc Document, numID, level int) *List {
	if level < 0 {
		level = 0
	}
	return &List{parent: parent, doc: doc, numID: numID, level: level}
}

// NumID returns the numbering id shared by the list items.
func (l *List) NumID() int { return l.numID }

// Level returns the nesting depth; 0 is the outermost list.
func (l *List) Level() int { return l.level }

// CreateSubList returns a list one level deeper with its own numbering
// definition. WithLevel is ignored. No paragraph is created; the sub-list
// shows up in the document once an item is added through it.
func (l *List) CreateSubList(opts ...Option) *List {
	opts = append(opts, WithLevel(l.level+1))
	if l.logger != nil {
		opts = append([]Option{WithLogger(l.logger)}, opts...)
	}
	return New(l.parent, l.doc, opts...)
}

// AttachSubList returns a list one level deeper bound to the existing
// numbering id numID.
func (l *List) AttachSubList(numID int) *List {
	sub := Attach(l.parent, l.doc, numID, l.level+1)
	sub.logger = l.logger
	return sub
}

// AddParagraph appends a plain paragraph indented to the list level.
// The paragraph is not an item and never appears in Items.
func (l *List) AddParagraph(text string) *core.Paragraph {
	p := l.doc.Body().AddParagraph(text)
	l.indent(p)
	return p
}

// InsertParagraphBefore inserts a plain paragraph indented to the list level
// immediately before anchor. Errors from the document are returned as-is.
func (l *List) InsertParagraphBefore(anchor *core.Paragraph, text string) (*core.Paragraph, error) {
	p, err := anchor.InsertParagraphBefore(text)
	if err != nil {
		return nil, err
	}
	l.indent(p)
	return p, nil
}

// AddItem appends a paragraph to the document and makes it an item of the list.
func (l *List) AddItem(text string) *core.Paragraph {
	p := l.doc.Body().AddParagraph(text)
	l.enlist(p)
	return p
}

// InsertItemBefore inserts an item immediately before anchor.
func (l *List) InsertItemBefore(anchor *core.Paragraph, text string) (*core.Paragraph, error) {
	p, err := anchor.InsertParagraphBefore(text)
	if err != nil {
		return nil, err
	}
	l.enlist(p)
	return p, nil
}

// Items returns, in document order, every paragraph of the parent whose
// numbering id is the list id. Items added through other handles sharing
// the id are included.
func (l *List) Items() []*core.Paragraph {
	var items []*core.Paragraph
	for _, p := range l.parent.Paragraphs() {
		if id, ok := p.NumID(); ok && id == l.numID {
			items = append(items, p)
		}
	}
	return items
}

func (l *List) indent(p *core.Paragraph) {
	p.LeftIndent = core.Inches(IndentPerLevel * float64(l.level))
}

func (l *List) enlist(p *core.Paragraph) {
	l.indent(p)
	p.SetNumbering(l.numID, l.level)
}
