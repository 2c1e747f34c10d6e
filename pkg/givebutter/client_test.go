package givebutter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method  string
	path    string
	query   url.Values
	headers http.Header
	body    []byte
}

// newRecordingServer returns a test server that captures every request
// and answers with the given status and body.
func newRecordingServer(t *testing.T, status int, response string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	var (
		mu       sync.Mutex
		requests []recordedRequest
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		mu.Lock()
		requests = append(requests, recordedRequest{
			method:  r.Method,
			path:    r.URL.Path,
			query:   r.URL.Query(),
			headers: r.Header.Clone(),
			body:    body,
		})
		mu.Unlock()

		w.WriteHeader(status)
		if response != "" {
			_, _ = w.Write([]byte(response))
		}
	}))
	t.Cleanup(server.Close)

	return server, &requests
}

func TestDoAuthentication(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-secret")

	Convey("Given a client pointed at a test server", t, func() {
		server, requests := newRecordingServer(t, http.StatusOK, `{"data": []}`)
		client := New(WithBaseURL(server.URL))

		Convey("When a request is issued", func() {
			payload, err := client.Do(context.Background(), http.MethodGet, "/campaigns", nil, nil)

			Convey("Then it succeeds and carries the standard headers", func() {
				So(err, ShouldBeNil)
				So(payload, ShouldNotBeNil)
				So(*requests, ShouldHaveLength, 1)

				headers := (*requests)[0].headers
				So(headers.Get("Authorization"), ShouldEqual, "Bearer test-secret")
				So(headers.Get("Content-Type"), ShouldEqual, "application/json")
				So(headers.Get("Accept"), ShouldEqual, "application/json")
			})
		})
	})
}

func TestDoMissingCredential(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	Convey("Given no API key in the environment", t, func() {
		server, requests := newRecordingServer(t, http.StatusOK, `{}`)
		client := New(WithBaseURL(server.URL))

		Convey("When a request is issued", func() {
			payload, err := client.Do(context.Background(), http.MethodGet, "/campaigns", nil, nil)

			Convey("Then it fails naming the env var before any network call", func() {
				So(payload, ShouldBeNil)
				So(err, ShouldEqual, ErrMissingAPIKey)
				So(err.Error(), ShouldEqual, "GIVEBUTTER_API_KEY environment variable is required")
				So(*requests, ShouldBeEmpty)
			})
		})
	})
}

func TestDoQueryEncoding(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-secret")

	Convey("Given a client pointed at a test server", t, func() {
		server, requests := newRecordingServer(t, http.StatusOK, `{}`)
		client := New(WithBaseURL(server.URL))

		Convey("When query parameters are supplied", func() {
			query := url.Values{}
			query.Set("scope", "owned")
			query.Set("note", "50% match & more")

			_, err := client.Do(context.Background(), http.MethodGet, "/campaigns", nil, query)
			So(err, ShouldBeNil)

			Convey("Then values round-trip through percent-encoding", func() {
				got := (*requests)[0].query
				So(got.Get("scope"), ShouldEqual, "owned")
				So(got.Get("note"), ShouldEqual, "50% match & more")
			})
		})

		Convey("When no query parameters are supplied", func() {
			_, err := client.Do(context.Background(), http.MethodGet, "/campaigns", nil, url.Values{})
			So(err, ShouldBeNil)

			Convey("Then the URL carries no query string at all", func() {
				So((*requests)[0].query, ShouldBeEmpty)
			})
		})
	})
}

func TestDoBodyHandling(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-secret")

	Convey("Given a client pointed at a test server", t, func() {
		server, requests := newRecordingServer(t, http.StatusOK, `{}`)
		client := New(WithBaseURL(server.URL))
		body := map[string]any{"title": "Spring Fundraiser"}

		Convey("A POST serializes the body as JSON", func() {
			_, err := client.Do(context.Background(), http.MethodPost, "/campaigns", body, nil)
			So(err, ShouldBeNil)
			So(string((*requests)[0].body), ShouldEqual, `{"title":"Spring Fundraiser"}`)
		})

		Convey("A GET never carries a body, even when one is passed", func() {
			_, err := client.Do(context.Background(), http.MethodGet, "/campaigns", body, nil)
			So(err, ShouldBeNil)
			So((*requests)[0].body, ShouldBeEmpty)
		})

		Convey("A DELETE never carries a body, even when one is passed", func() {
			_, err := client.Do(context.Background(), http.MethodDelete, "/campaigns/1", body, nil)
			So(err, ShouldBeNil)
			So((*requests)[0].body, ShouldBeEmpty)
		})
	})
}

func TestDoResponseClassification(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-secret")

	Convey("Given a server answering 204 No Content", t, func() {
		server, _ := newRecordingServer(t, http.StatusNoContent, "")
		client := New(WithBaseURL(server.URL))

		Convey("The call succeeds with no payload and no body parse", func() {
			payload, err := client.Do(context.Background(), http.MethodDelete, "/contacts/42", nil, nil)
			So(err, ShouldBeNil)
			So(payload, ShouldBeNil)
		})
	})

	Convey("Given a server answering 404 with an error body", t, func() {
		server, _ := newRecordingServer(t, http.StatusNotFound, `{"message": "Campaign not found"}`)
		client := New(WithBaseURL(server.URL))

		Convey("The call fails with the status and raw body verbatim", func() {
			payload, err := client.Do(context.Background(), http.MethodGet, "/campaigns/999", nil, nil)
			So(payload, ShouldBeNil)

			var apiErr *APIError
			So(errors.As(err, &apiErr), ShouldBeTrue)
			So(apiErr.StatusCode, ShouldEqual, 404)
			So(err.Error(), ShouldEqual, `API request failed: 404 Not Found - {"message": "Campaign not found"}`)
		})
	})

	Convey("Given a server answering 200 with a non-JSON body", t, func() {
		server, _ := newRecordingServer(t, http.StatusOK, "<html>surprise</html>")
		client := New(WithBaseURL(server.URL))

		Convey("The decode failure propagates instead of being swallowed", func() {
			payload, err := client.Do(context.Background(), http.MethodGet, "/campaigns", nil, nil)
			So(payload, ShouldBeNil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "decode response body")
		})
	})
}

func TestDoConcurrentCalls(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-secret")

	server, requests := newRecordingServer(t, http.StatusOK, `{"data": []}`)
	client := New(WithBaseURL(server.URL))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Do(context.Background(), http.MethodGet, "/transactions", nil, nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Len(t, *requests, 8)
}
