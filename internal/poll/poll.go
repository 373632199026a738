// Package poll composes the session and the vendor parser into a single
// fetch-authenticate-retry-parse cycle.
package poll

import (
	"context"
	"time"

	"modemstats/internal/modem"
	"modemstats/internal/session"
	"modemstats/internal/stats"
)

type Poller struct {
	session *session.Session
	modem   modem.Modem
	now     func() time.Time
}

func New(s *session.Session, m modem.Modem) *Poller {
	return &Poller{session: s, modem: m, now: time.Now}
}

// Capture runs one poll cycle. A login page triggers at most one
// authentication attempt followed by a single refetch; if the page still
// demands a login the cycle fails rather than hammering the device. The
// capture timestamp is sampled once and shared by every channel of the
// cycle. On any fatal error the result is nil, never partial.
func (p *Poller) Capture(ctx context.Context) (*stats.CaptureResult, error) {
	doc, err := p.session.FetchStatus(ctx)
	if err != nil {
		return nil, err
	}
	if p.modem.LoginRequired(doc) {
		if err := p.session.Authenticate(ctx); err != nil {
			return nil, err
		}
		if doc, err = p.session.FetchStatus(ctx); err != nil {
			return nil, err
		}
		if p.modem.LoginRequired(doc) {
			return nil, stats.ErrAuthenticationFailed
		}
	}

	capturedAt := p.now()
	downstream, upstream, err := p.modem.ExtractChannels(doc)
	if err != nil {
		return nil, err
	}
	return &stats.CaptureResult{
		CapturedAt: capturedAt,
		Downstream: downstream,
		Upstream:   upstream,
	}, nil
}
