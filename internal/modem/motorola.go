package modem

import (
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/prometheus/common/log"

	"modemstats/internal/htmltable"
	"modemstats/internal/stats"
)

// MotorolaMB7621 reads MotoConnection.asp behind the modem's login form. The
// status tables share a CSS class with unrelated tables on the page, so they
// are recognized by a sentinel header label and told apart by column count:
// nine columns for downstream, seven for upstream.
type MotorolaMB7621 struct{}

func (MotorolaMB7621) Name() string      { return "Motorola MB7621" }
func (MotorolaMB7621) ShortName() string { return "MB7621" }
func (MotorolaMB7621) StatusURL() string { return "http://192.168.100.1/MotoConnection.asp" }
func (MotorolaMB7621) AuthURL() string   { return "http://192.168.100.1/goform/login" }

// The login page titles itself "Motorola Cable Modem : Login".
func (MotorolaMB7621) LoginRequired(doc *goquery.Document) bool {
	return strings.Contains(doc.Find("title").Text(), "Login")
}

// AuthForm builds the firmware's login form. loginPassword carries the
// base64-encoded password over plain HTTP; that is the device's wire format,
// not a security measure, and must be preserved as-is.
func (MotorolaMB7621) AuthForm(creds stats.Credentials) url.Values {
	return url.Values{
		"loginUsername": {creds.Username},
		"loginPassword": {base64.StdEncoding.EncodeToString([]byte(creds.Password))},
	}
}

// The page pads the sentinel label with non-breaking spaces, which the table
// extractor trims away.
const motoChannelSentinel = "Channel"

var (
	motoDownstreamHeader = []string{"Channel ID", "Freq. (MHz)", "Pwr (dBmV)", "SNR (dB)", "Corrected", "Uncorrected"}
	motoUpstreamHeader   = []string{"Channel ID", "Symb. Rate (Ksym/sec)", "Freq. (MHz)", "Pwr (dBmV)"}
)

func (MotorolaMB7621) ExtractChannels(doc *goquery.Document) ([]stats.DownstreamChannel, []stats.UpstreamChannel, error) {
	var downstream []stats.DownstreamChannel
	var upstream []stats.UpstreamChannel

	for _, node := range doc.Find("table.moto-table-content").Nodes {
		table := htmltable.FromNode(node)
		if len(table) == 0 {
			continue
		}
		header := table[0]
		if len(header) == 0 || header[0].Text != motoChannelSentinel {
			// Unrelated table that happens to share the CSS class.
			continue
		}

		switch len(header) {
		case 9:
			if !headerMatches(header[3:], motoDownstreamHeader) {
				log.Warnln("Downstream table header did not match, skipping table")
				continue
			}
			for _, row := range table[1:] {
				if len(row) < 9 || row[1].Text != "Locked" || row[0].Text == "Total" {
					continue
				}
				ch, err := motoDownstream(row)
				if err != nil {
					return nil, nil, err
				}
				downstream = append(downstream, ch)
			}
		case 7:
			if !headerMatches(header[3:], motoUpstreamHeader) {
				log.Warnln("Upstream table header did not match, skipping table")
				continue
			}
			for _, row := range table[1:] {
				if len(row) < 7 || row[1].Text != "Locked" {
					continue
				}
				ch, err := motoUpstream(row)
				if err != nil {
					return nil, nil, err
				}
				upstream = append(upstream, ch)
			}
		default:
			log.Warnln("Channel table has unexpected column count", len(header), ", skipping table")
		}
	}

	return downstream, upstream, nil
}

func motoDownstream(row htmltable.Row) (ch stats.DownstreamChannel, err error) {
	if ch.ChannelID, err = cellInt(row, 3, "channel_id"); err != nil {
		return ch, err
	}
	if ch.Frequency, err = cellFloat(row, 4, "frequency", ""); err != nil {
		return ch, err
	}
	if ch.Power, err = cellFloat(row, 5, "power", ""); err != nil {
		return ch, err
	}
	if ch.SNR, err = cellFloat(row, 6, "snr", ""); err != nil {
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

// The MB7621 reports no upstream SNR and its symbol rate column is skipped.
func motoUpstream(row htmltable.Row) (ch stats.UpstreamChannel, err error) {
	if ch.ChannelID, err = cellInt(row, 3, "channel_id"); err != nil {
		return ch, err
	}
	if ch.Frequency, err = cellFloat(row, 5, "frequency", ""); err != nil {
		return ch, err
	}
	if ch.Power, err = cellFloat(row, 6, "power", ""); err != nil {
		return ch, err
	}
	return ch, nil
}
