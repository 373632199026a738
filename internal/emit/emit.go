// Package emit serializes a capture as JSON or InfluxDB line protocol.
package emit

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"modemstats/internal/stats"
)

const measurement = "cable_modem"

// JSON writes the capture as a single document with absent fields encoded
// as null, preserving the page's channel order.
func JSON(w io.Writer, result *stats.CaptureResult) error {
	doc := struct {
		Downstream []stats.DownstreamChannel `json:"downstream"`
		Upstream   []stats.UpstreamChannel   `json:"upstream"`
	}{result.Downstream, result.Upstream}
	if doc.Downstream == nil {
		doc.Downstream = []stats.DownstreamChannel{}
	}
	if doc.Upstream == nil {
		doc.Upstream = []stats.UpstreamChannel{}
	}
	return json.NewEncoder(w).Encode(&doc)
}

// InfluxDB writes one line per channel. The channel tag is the 1-based
// position within its direction, not the channel_id field, and absent
// fields are omitted from the line entirely.
func InfluxDB(w io.Writer, result *stats.CaptureResult) error {
	// Timestamps are truncated to whole seconds before widening to
	// nanoseconds, matching the established feed format.
	ts := result.CapturedAt.Unix()
	for i, ch := range result.Downstream {
		if err := writeLine(w, i+1, "downstream", downstreamFields(ch), ts); err != nil {
			return err
		}
	}
	for i, ch := range result.Upstream {
		if err := writeLine(w, i+1, "upstream", upstreamFields(ch), ts); err != nil {
			return err
		}
	}
	return nil
}

type field struct {
	name  string
	value string
}

func downstreamFields(ch stats.DownstreamChannel) []field {
	fields := appendInt(nil, "channel_id", ch.ChannelID)
	fields = appendFloat(fields, "frequency", ch.Frequency)
	fields = appendFloat(fields, "power", ch.Power)
	fields = appendFloat(fields, "snr", ch.SNR)
	fields = appendInt(fields, "corrected", ch.Corrected)
	fields = appendInt(fields, "uncorrectables", ch.Uncorrectables)
	return fields
}

func upstreamFields(ch stats.UpstreamChannel) []field {
	fields := appendInt(nil, "channel_id", ch.ChannelID)
	fields = appendFloat(fields, "frequency", ch.Frequency)
	fields = appendFloat(fields, "power", ch.Power)
	fields = appendFloat(fields, "snr", ch.SNR)
	return fields
}

func appendInt(fields []field, name string, v *int64) []field {
	if v == nil {
		return fields
	}
	return append(fields, field{name, strconv.FormatInt(*v, 10)})
}

func appendFloat(fields []field, name string, v *float64) []field {
	if v == nil {
		return fields
	}
	return append(fields, field{name, strconv.FormatFloat(*v, 'f', -1, 64)})
}

func writeLine(w io.Writer, channel int, direction string, fields []field, unixSeconds int64) error {
	// A line without fields is invalid line protocol.
	if len(fields) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString(measurement)
	b.WriteString(",channel=")
	b.WriteString(strconv.Itoa(channel))
	b.WriteString(",direction=")
	b.WriteString(direction)
	b.WriteByte(' ')
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.name)
		b.WriteByte('=')
		b.WriteString(f.value)
	}
	b.WriteByte(' ')
	b.WriteString(strconv.FormatInt(unixSeconds, 10))
	b.WriteString("000000000\n")
	_, err := io.WriteString(w, b.String())
	return err
}
