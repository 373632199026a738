package emit

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"modemstats/internal/stats"
)

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }

func sampleResult() *stats.CaptureResult {
	return &stats.CaptureResult{
		CapturedAt: time.Unix(1724572800, 0),
		Downstream: []stats.DownstreamChannel{
			{
				ChannelID:      i64(32),
				Frequency:      f64(483000000),
				Power:          f64(0.2),
				SNR:            f64(38.9),
				Corrected:      i64(160),
				Uncorrectables: i64(1178),
			},
			{
				ChannelID: i64(29),
				Frequency: f64(465000000),
				Power:     f64(0.4),
			},
		},
		Upstream: []stats.UpstreamChannel{
			{
				ChannelID: i64(4),
				Frequency: f64(30600000),
				Power:     f64(46.5),
			},
		},
	}
}

func TestInfluxDB(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InfluxDB(&buf, sampleResult()))

	want := strings.Join([]string{
		"cable_modem,channel=1,direction=downstream channel_id=32,frequency=483000000,power=0.2,snr=38.9,corrected=160,uncorrectables=1178 1724572800000000000",
		"cable_modem,channel=2,direction=downstream channel_id=29,frequency=465000000,power=0.4 1724572800000000000",
		"cable_modem,channel=1,direction=upstream channel_id=4,frequency=30600000,power=46.5 1724572800000000000",
		"",
	}, "\n")
	require.Equal(t, want, buf.String())
}

func TestInfluxDBTruncatesToSeconds(t *testing.T) {
	result := sampleResult()
	result.CapturedAt = time.Unix(1724572800, 999999999)

	var buf bytes.Buffer
	require.NoError(t, InfluxDB(&buf, result))
	require.Contains(t, buf.String(), " 1724572800000000000\n")
}

func TestInfluxDBSkipsEmptyChannel(t *testing.T) {
	result := &stats.CaptureResult{
		CapturedAt: time.Unix(1724572800, 0),
		Downstream: []stats.DownstreamChannel{{}},
	}
	var buf bytes.Buffer
	require.NoError(t, InfluxDB(&buf, result))
	require.Empty(t, buf.String())
}

func TestJSONAbsentFieldsAreNull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleResult()))

	require.Contains(t, buf.String(), `"snr":null`)
	require.Contains(t, buf.String(), `"corrected":null`)
	require.NotContains(t, buf.String(), `"snr":0`)
}

func TestJSONRoundTrip(t *testing.T) {
	result := sampleResult()

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, result))

	var decoded struct {
		Downstream []stats.DownstreamChannel `json:"downstream"`
		Upstream   []stats.UpstreamChannel   `json:"upstream"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, result.Downstream, decoded.Downstream)
	require.Equal(t, result.Upstream, decoded.Upstream)
}

func TestJSONEmptyCapture(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, &stats.CaptureResult{CapturedAt: time.Unix(1724572800, 0)}))
	require.JSONEq(t, `{"downstream":[],"upstream":[]}`, buf.String())
}
