package modem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func loadDoc(t *testing.T, name string) *goquery.Document {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	return doc
}

func TestFind(t *testing.T) {
	m, ok := Find("Arris SB6183")
	require.True(t, ok)
	require.Equal(t, "SB6183", m.ShortName())

	m, ok = Find("mb7621")
	require.True(t, ok)
	require.Equal(t, "Motorola MB7621", m.Name())

	m, ok = Find("MOTOROLA MB7621")
	require.True(t, ok)
	require.Equal(t, "MB7621", m.ShortName())

	_, ok = Find("SB9000")
	require.False(t, ok)
}

func TestList(t *testing.T) {
	names := []string{}
	for _, m := range List() {
		names = append(names, m.Name())
	}
	require.Equal(t, []string{"Arris SB6183", "Motorola MB7621"}, names)
}
