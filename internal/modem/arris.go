package modem

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"modemstats/internal/htmltable"
	"modemstats/internal/stats"
)

// ArrisSB6183 reads the unauthenticated RgConnect.asp status page. The
// downstream and upstream tables sit at fixed positions in the document and
// the cells carry unit suffixes.
type ArrisSB6183 struct{}

func (ArrisSB6183) Name() string      { return "Arris SB6183" }
func (ArrisSB6183) ShortName() string { return "SB6183" }
func (ArrisSB6183) StatusURL() string { return "http://192.168.100.1/RgConnect.asp" }
func (ArrisSB6183) AuthURL() string   { return "" }

func (ArrisSB6183) LoginRequired(*goquery.Document) bool { return false }

func (ArrisSB6183) AuthForm(stats.Credentials) url.Values { return nil }

const (
	arrisDownstreamTable = 2
	arrisUpstreamTable   = 3
	arrisHeaderRows      = 2
)

func (ArrisSB6183) ExtractChannels(doc *goquery.Document) ([]stats.DownstreamChannel, []stats.UpstreamChannel, error) {
	tables := tablesOf(doc)
	downTable, err := htmltable.At(tables, arrisDownstreamTable)
	if err != nil {
		return nil, nil, err
	}
	upTable, err := htmltable.At(tables, arrisUpstreamTable)
	if err != nil {
		return nil, nil, err
	}

	var downstream []stats.DownstreamChannel
	for _, row := range dataRows(downTable, arrisHeaderRows) {
		if len(row) < 9 {
			continue
		}
		ch, err := arrisDownstream(row)
		if err != nil {
			return nil, nil, err
		}
		downstream = append(downstream, ch)
	}

	var upstream []stats.UpstreamChannel
	for _, row := range dataRows(upTable, arrisHeaderRows) {
		if len(row) < 7 {
			continue
		}
		ch, err := arrisUpstream(row)
		if err != nil {
			return nil, nil, err
		}
		upstream = append(upstream, ch)
	}

	return downstream, upstream, nil
}

func arrisDownstream(row htmltable.Row) (ch stats.DownstreamChannel, err error) {
	if ch.ChannelID, err = cellInt(row, 3, "channel_id"); err != nil {
		return ch, err
	}
	if ch.Frequency, err = cellFloat(row, 4, "frequency", " Hz"); err != nil {
		return ch, err
	}
	if ch.Power, err = cellFloat(row, 5, "power", " dBmV"); err != nil {
		return ch, err
	}
	if ch.SNR, err = cellFloat(row, 6, "snr", " dB"); err != nil {
		return ch, err
	}
	if ch.Corrected, err = cellInt(row, 7, "corrected"); err != nil {
		return ch, err
	}
	if ch.Uncorrectables, err = cellInt(row, 8, "uncorrectables"); err != nil {
		return ch, err
	}
	return ch, nil
}

// The SB6183 does not report upstream SNR, so the field stays absent.
func arrisUpstream(row htmltable.Row) (ch stats.UpstreamChannel, err error) {
	if ch.ChannelID, err = cellInt(row, 3, "channel_id"); err != nil {
		return ch, err
	}
	if ch.Frequency, err = cellFloat(row, 5, "frequency", " Hz"); err != nil {
		return ch, err
	}
	if ch.Power, err = cellFloat(row, 6, "power", " dBmV"); err != nil {
		return ch, err
	}
	return ch, nil
}
