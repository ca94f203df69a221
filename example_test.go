package outline_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/outline"
)

// Example_basic creates a document with a nested list, saves it and reads the items back.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "outline-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	svc, err := outline.New(tmpDir, outline.WithAutoInit(true), outline.WithVersioning(false))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	doc, err := svc.CreateDocument(ctx, "minutes")
	if err != nil {
		log.Fatal(err)
	}

	agenda := outline.NewList(doc)
	agenda.AddItem("Budget")
	agenda.CreateSubList(outline.WithFormat("bullet")).AddItem("Travel")
	agenda.AddItem("Hiring")

	if err := svc.SaveDocument(ctx, doc); err != nil {
		log.Fatal(err)
	}

	saved, err := svc.GetDocument(ctx, "minutes")
	if err != nil {
		log.Fatal(err)
	}

	for _, item := range outline.AttachList(saved, agenda.NumID(), 0).Items() {
		fmt.Println(item.Text)
	}
	// Output:
	// Budget
	// Hiring
}

// ExampleNewList shows that sub-lists share nothing with their parent but the paragraphs.
func ExampleNewList() {
	doc := &outline.Document{ID: "plan"}

	top := outline.NewList(doc, outline.WithFormat("upperRoman"))
	sub := top.CreateSubList()
	sub.AddItem("detail")

	fmt.Println(top.NumID(), top.Level())
	fmt.Println(sub.NumID(), sub.Level())
	fmt.Println(len(top.Items()), len(sub.Items()))
	// Output:
	// 1 0
	// 2 1
	// 0 1
}
