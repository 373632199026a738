// Package stats holds the channel measurement types produced by one poll of
// a cable modem's status page, together with the parsing helpers and error
// taxonomy shared by every vendor parser.
package stats

import "time"

// DownstreamChannel is one receive channel's measurements. Every field is
// optional: a vendor page may omit a column, and an empty cell must stay
// absent rather than turn into a zero.
type DownstreamChannel struct {
	ChannelID      *int64   `json:"channel_id"`
	Frequency      *float64 `json:"frequency"`
	Power          *float64 `json:"power"`
	SNR            *float64 `json:"snr"`
	Corrected      *int64   `json:"corrected"`
	Uncorrectables *int64   `json:"uncorrectables"`
}

// UpstreamChannel is one transmit channel's measurements. SNR is absent on
// modems that do not report it for upstream channels.
type UpstreamChannel struct {
	ChannelID *int64   `json:"channel_id"`
	Frequency *float64 `json:"frequency"`
	Power     *float64 `json:"power"`
	SNR       *float64 `json:"snr"`
}

// CaptureResult is the outcome of one successful poll cycle. Channel order
// follows the order the channels appear on the status page, and CapturedAt
// is sampled once per cycle, shared by every channel.
type CaptureResult struct {
	CapturedAt time.Time
	Downstream []DownstreamChannel
	Upstream   []UpstreamChannel
}

// Credentials authenticate against a modem's login form. They are opaque to
// parsing and only consumed by the vendor's auth handshake.
type Credentials struct {
	Username string
	Password string
}
