package sprouts

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeStorefront stands in for the graphql endpoint. it records
// every call and dispatches canned responses per operation name.
type fakeStorefront struct {
	t        *testing.T
	server   *httptest.Server
	calls    []storefrontCall
	respond  map[string]func(call storefrontCall) (int, string)
	requests []*http.Request
}

type storefrontCall struct {
	Operation string
	Variables map[string]any
	Hash      string
}

func newFakeStorefront(t *testing.T) *fakeStorefront {
	f := &fakeStorefront{
		t:       t,
		respond: map[string]func(call storefrontCall) (int, string){},
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeStorefront) handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var variables map[string]any
	err := json.Unmarshal([]byte(query.Get("variables")), &variables)
	require.NoError(f.t, err)

	var extensions struct {
		PersistedQuery struct {
			Version    int    `json:"version"`
			Sha256Hash string `json:"sha256Hash"`
		} `json:"persistedQuery"`
	}
	err = json.Unmarshal([]byte(query.Get("extensions")), &extensions)
	require.NoError(f.t, err)
	require.Equal(f.t, 1, extensions.PersistedQuery.Version)

	call := storefrontCall{
		Operation: query.Get("operationName"),
		Variables: variables,
		Hash:      extensions.PersistedQuery.Sha256Hash,
	}
	f.calls = append(f.calls, call)
	f.requests = append(f.requests, r)

	respond, ok := f.respond[call.Operation]
	if !ok {
		f.t.Fatalf("unexpected operation %q", call.Operation)
	}
	status, body := respond(call)
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func (f *fakeStorefront) on(operation string, status int, body string) {
	f.respond[operation] = func(storefrontCall) (int, string) {
		return status, body
	}
}

func (f *fakeStorefront) callsFor(operation string) []storefrontCall {
	var out []storefrontCall
	for _, c := range f.calls {
		if c.Operation == operation {
			out = append(out, c)
		}
	}
	return out
}

func testSession() SessionInfo {
	return SessionInfo{
		Cookies: map[string]string{"session_token": "fake_token", "user_id": "123"},
		ShopId:  "test_shop_123",
	}
}

func newTestClient(t *testing.T, f *fakeStorefront) *Client {
	return NewClient(testSession(), ClientOptions{
		Endpoint: f.server.URL,
	})
}
