package modem

import (
	"github.com/PuerkitoBio/goquery"

	"modemstats/internal/htmltable"
	"modemstats/internal/stats"
)

// tablesOf extracts every table of the page in document order, so vendors
// can address them positionally.
func tablesOf(doc *goquery.Document) []htmltable.Table {
	return htmltable.All(doc.Get(0))
}

// dataRows skips a fixed number of leading header rows plus any later row
// that still contains header cells.
func dataRows(t htmltable.Table, skip int) []htmltable.Row {
	if len(t) <= skip {
		return nil
	}
	rows := make([]htmltable.Row, 0, len(t)-skip)
	for _, row := range t[skip:] {
		if row.HasHeader() {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func headerMatches(cells []htmltable.Cell, want []string) bool {
	if len(cells) != len(want) {
		return false
	}
	for i, c := range cells {
		if c.Text != want[i] {
			return false
		}
	}
	return true
}

func cellInt(row htmltable.Row, i int, field string) (*int64, error) {
	if c := row[i]; c.Present {
		return stats.OptionalInt(c.Text, field)
	}
	return nil, nil
}

func cellFloat(row htmltable.Row, i int, field, suffix string) (*float64, error) {
	if c := row[i]; c.Present {
		return stats.OptionalFloat(c.Text, field, suffix)
	}
	return nil, nil
}
