// Package outline is the composition root for Outline, a store of
// paragraph documents whose paragraphs can be grouped into numbered or
// bulleted lists.
//
// pkg/core owns the document model and the Repository port. Lists are built
// by pkg/list and persisted as snapshots by pkg/adapters/fs, optionally
// versioned with git.
//
// Lists:
//
// A List is a lightweight handle over one numbering instance. NewList mints
// a fresh instance (level overrides restart at 1), AttachList wraps an
// existing one. Items are never cached: they are read back from the
// document each time, so every handle sharing an id sees the same items.
//
// Usage:
//
//	svc, err := outline.New("./docs",
//		outline.WithAutoInit(true),
//		outline.WithLogger(logger),
//	)
//
//	doc, err := svc.CreateDocument(ctx, "minutes")
//	steps := outline.NewList(doc, outline.WithFormat("decimal"))
//	steps.AddItem("Open the meeting")
//	steps.CreateSubList(outline.WithFormat("bullet")).AddItem("Roll call")
//	err = svc.SaveDocument(ctx, doc)
package outline
