package sprouts

import (
	"net/http"
	"time"

	"github.com/kingb12/sprouts-coupons/lib/restyutil"
	"github.com/kingb12/sprouts-coupons/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const graphqlEndpoint = "https://shop.sprouts.com/graphql"

// the storefront rejects calls without a plausible browser UA and
// the web client identifier header
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/144.0.0.0 Safari/537.36"

const (
	DefaultZoneId     = "981"
	DefaultPostalCode = "95126"
)

type Client struct {
	http       *resty.Client
	session    SessionInfo
	endpoint   string
	zoneId     string
	postalCode string
}

type ClientOptions struct {
	// both optional, they scope GetAvailableOffer lookups to a
	// delivery zone and fall back to the deployment defaults
	ZoneId     string
	PostalCode string
	// overrides the production graphql endpoint, used by tests
	Endpoint string
}

func NewClient(session SessionInfo, opts ClientOptions) *Client {
	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetTimeout(time.Second * 30)

	client.SetHeader("user-agent", userAgent)
	client.SetHeader("content-type", "application/json")
	client.SetHeader("accept", "*/*")
	client.SetHeader("x-client-identifier", "web")

	cookies := make([]*http.Cookie, 0, len(session.Cookies))
	for name, value := range session.Cookies {
		cookies = append(cookies, &http.Cookie{Name: name, Value: value})
	}
	client.SetCookies(cookies)

	telemetry.InstrumentResty(client, "scrapers/sprouts/http")
	restyutil.DumpClient(client, restyInstrumentOutput)

	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = graphqlEndpoint
	}
	zoneId := opts.ZoneId
	if zoneId == "" {
		zoneId = DefaultZoneId
	}
	postalCode := opts.PostalCode
	if postalCode == "" {
		postalCode = DefaultPostalCode
	}

	return &Client{
		http:       client,
		session:    session,
		endpoint:   endpoint,
		zoneId:     zoneId,
		postalCode: postalCode,
	}
}

func (c *Client) Session() SessionInfo {
	return c.session
}
