// Package session owns the HTTP client for one capture cycle and drives the
// login handshake when the status page demands authentication.
package session

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"modemstats/internal/modem"
	"modemstats/internal/stats"
)

// DefaultTimeout bounds requests to the modem. The target is a local
// embedded web server, so a short fixed budget is enough.
const DefaultTimeout = 10 * time.Second

type Options struct {
	// URL overrides the modem's default status page URL.
	URL string
	// AuthURL overrides the modem's default login URL.
	AuthURL string
	// Credentials enable the login handshake. When nil, a login page is
	// surfaced as an authentication failure without attempting a POST.
	Credentials *stats.Credentials
	Timeout     time.Duration
}

// Session wraps one exclusively-owned HTTP client. The cookie jar carries
// the login session between the authentication POST and the status refetch.
type Session struct {
	client    *resty.Client
	modem     modem.Modem
	creds     *stats.Credentials
	statusURL string
	authURL   string
}

func New(m modem.Modem, opts Options) (*Session, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client := resty.New()
	client.SetCookieJar(jar)
	client.SetTimeout(timeout)

	statusURL := opts.URL
	if statusURL == "" {
		statusURL = m.StatusURL()
	}
	authURL := opts.AuthURL
	if authURL == "" {
		authURL = m.AuthURL()
	}

	return &Session{
		client:    client,
		modem:     m,
		creds:     opts.Credentials,
		statusURL: statusURL,
		authURL:   authURL,
	}, nil
}

// FetchStatus GETs the status page and parses it. A connection failure or a
// non-2xx response is a transport error that aborts the whole cycle.
func (s *Session) FetchStatus(ctx context.Context) (*goquery.Document, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.statusURL)
	if err != nil {
		return nil, &stats.TransportError{URL: s.statusURL, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &stats.TransportError{URL: s.statusURL, Err: fmt.Errorf("HTTP status %d", resp.StatusCode())}
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, &stats.MalformedDocumentError{Reason: err.Error()}
	}
	return doc, nil
}

// Authenticate submits the modem's login form once. The POST response is not
// inspected: these devices answer logins with redirects or blank 200s, so
// success is determined solely by refetching the status page afterwards.
func (s *Session) Authenticate(ctx context.Context) error {
	if s.creds == nil {
		return stats.ErrAuthenticationFailed
	}
	form := s.modem.AuthForm(*s.creds)
	_, err := s.client.R().SetContext(ctx).SetFormDataFromValues(form).Post(s.authURL)
	if err != nil {
		return &stats.TransportError{URL: s.authURL, Err: err}
	}
	return nil
}
