// Package modem implements one parser per supported cable modem model and a
// static registry mapping user-facing names to them.
package modem

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"modemstats/internal/stats"
)

// Modem is implemented once per supported modem model. Implementations are
// stateless: they interpret fetched pages and describe the device's URLs and
// login form, while all HTTP is performed by the session layer.
type Modem interface {
	Name() string
	ShortName() string
	StatusURL() string
	// AuthURL is empty for modems that expose their status page without
	// authentication.
	AuthURL() string
	// LoginRequired reports whether the fetched page is the device's login
	// page rather than the status page.
	LoginRequired(doc *goquery.Document) bool
	// AuthForm builds the device's login form fields.
	AuthForm(creds stats.Credentials) url.Values
	ExtractChannels(doc *goquery.Document) ([]stats.DownstreamChannel, []stats.UpstreamChannel, error)
}

var registry = []Modem{
	ArrisSB6183{},
	MotorolaMB7621{},
}

// List returns the supported modems in registration order.
func List() []Modem {
	return registry
}

// Find matches a user-supplied name against full and short model names,
// case-insensitively.
func Find(name string) (Modem, bool) {
	for _, m := range registry {
		if strings.EqualFold(name, m.Name()) || strings.EqualFold(name, m.ShortName()) {
			return m, true
		}
	}
	return nil, false
}
