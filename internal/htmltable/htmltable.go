// Package htmltable extracts rows of cells from HTML tables without
// interpreting headers or data types. Vendor-specific meaning is assigned by
// the modem parsers.
package htmltable

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"modemstats/internal/stats"
)

// Cell is one <td> or <th> of a table row. Present is false when the cell
// contains no text node at all, which later lets numeric parsing tell an
// empty field apart from a zero value.
type Cell struct {
	Text    string
	Present bool
	Header  bool
}

// Row is the ordered cells of one <tr>.
type Row []Cell

// HasHeader reports whether any cell of the row came from a <th> element.
func (r Row) HasHeader() bool {
	for _, c := range r {
		if c.Header {
			return true
		}
	}
	return false
}

// Table is the ordered rows of one <table>.
type Table []Row

// All extracts every table under root, in document order. Tables nested
// inside another table are returned as their own entries, matching how
// embedded status pages are usually addressed by index.
func All(root *html.Node) []Table {
	var tables []Table
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if isElem(n, atom.Table) {
			tables = append(tables, FromNode(n))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return tables
}

// Parse reads an HTML document and extracts its tables.
func Parse(r io.Reader) ([]Table, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return All(doc), nil
}

// At selects the table at index i. A missing index means the page changed
// shape and is reported as a malformed document, never silently skipped.
func At(tables []Table, i int) (Table, error) {
	if i < 0 || i >= len(tables) {
		return nil, &stats.MalformedDocumentError{
			Reason: fmt.Sprintf("table %d not found, page has %d tables", i, len(tables)),
		}
	}
	return tables[i], nil
}

// FromNode extracts the direct rows of a single table element. Rows sitting
// in <thead>, <tbody> or <tfoot> wrappers count as direct (the HTML5 parser
// inserts <tbody> on its own), rows of a nested table do not.
func FromNode(tableNode *html.Node) Table {
	table := Table{}
	appendRow := func(rowNode *html.Node) {
		row := Row{}
		for cn := rowNode.FirstChild; cn != nil; cn = cn.NextSibling {
			if isElem(cn, atom.Td) || isElem(cn, atom.Th) {
				row = append(row, cellOf(cn))
			}
		}
		table = append(table, row)
	}
	for sn := tableNode.FirstChild; sn != nil; sn = sn.NextSibling {
		switch {
		case isElem(sn, atom.Tr):
			appendRow(sn)
		case isElem(sn, atom.Thead), isElem(sn, atom.Tbody), isElem(sn, atom.Tfoot):
			for rn := sn.FirstChild; rn != nil; rn = rn.NextSibling {
				if isElem(rn, atom.Tr) {
					appendRow(rn)
				}
			}
		}
	}
	return table
}

func isElem(n *html.Node, a atom.Atom) bool {
	return n.Type == html.ElementNode && n.DataAtom == a
}

func cellOf(cellNode *html.Node) Cell {
	var buf bytes.Buffer
	present := false
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			present = true
			return
		}
		// A table nested inside a cell keeps its text to itself.
		if isElem(n, atom.Table) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	for c := cellNode.FirstChild; c != nil; c = c.NextSibling {
		collect(c)
	}
	return Cell{
		Text:    strings.TrimSpace(buf.String()),
		Present: present,
		Header:  isElem(cellNode, atom.Th),
	}
}
