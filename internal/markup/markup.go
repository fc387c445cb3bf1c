// Package markup wraps the HTML parsing library behind a minimal query
// interface: first element matching a CSS selector, and attribute lookup
// by name. Extraction code depends only on these two operations, so the
// concrete library can be swapped without touching it.
package markup

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// Document answers structural queries over a parsed HTML tree.
type Document interface {
	// First returns the first element matching the CSS selector, in
	// document order, and whether one was found.
	First(selector string) (Element, bool)
}

// Element is a single node of the parsed tree.
type Element interface {
	// Attr returns the value of the named attribute and whether the
	// attribute is present.
	Attr(name string) (string, bool)

	// First returns the first descendant matching the CSS selector.
	First(selector string) (Element, bool)
}

// Parse builds a Document from raw HTML.
func Parse(r io.Reader) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return document{doc: doc}, nil
}

type document struct {
	doc *goquery.Document
}

func (d document) First(selector string) (Element, bool) {
	return firstOf(d.doc.Find(selector))
}

type element struct {
	sel *goquery.Selection
}

func (e element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

func (e element) First(selector string) (Element, bool) {
	return firstOf(e.sel.Find(selector))
}

func firstOf(sel *goquery.Selection) (Element, bool) {
	first := sel.First()
	if first.Length() == 0 {
		return nil, false
	}
	return element{sel: first}, true
}
