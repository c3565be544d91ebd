package kodi

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method        string
	path          string
	contentType   string
	charset       string
	contentLength int64
	body          string
}

// newKodi поднимает TLS-сервер и возвращает клиента, который ему доверяет.
func newKodi(t *testing.T, status int, reply string, got *captured) (*httptest.Server, *Client) {
	t.Helper()

	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		if got != nil {
			*got = captured{
				method:        r.Method,
				path:          r.URL.Path,
				contentType:   r.Header.Get("Content-Type"),
				charset:       r.Header.Get("charset"),
				contentLength: r.ContentLength,
				body:          string(b),
			}
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)

	e := Endpoint{
		BaseURL:      "https://" + host,
		Port:         port,
		ResourcePath: "kodi",
		Username:     "kodi",
		Password:     "s3cret",
	}
	return srv, NewClient(e, WithHTTPClient(srv.Client()), WithTimeout(time.Second))
}

func TestSend(t *testing.T) {
	testCases := []struct {
		name string
		cmd  Command
		body string
	}{
		{name: "play", cmd: CommandPlay, body: "u=kodi&p=s3cret&args=play"},
		{name: "pause", cmd: CommandPause, body: "u=kodi&p=s3cret&args=pause"},
		{name: "stop", cmd: CommandStop, body: "u=kodi&p=s3cret&args=stop"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got captured
			_, c := newKodi(t, http.StatusOK, "OK\nplaying", &got)

			res, err := c.Send(context.Background(), tc.cmd)
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, res.StatusCode)
			assert.Equal(t, "OK\nplaying", res.Body)

			assert.Equal(t, http.MethodPost, got.method)
			assert.Equal(t, "/kodi", got.path)
			assert.Equal(t, "application/x-www-form-urlencoded", got.contentType)
			assert.Equal(t, "utf-8", got.charset)
			assert.Equal(t, tc.body, got.body)
			assert.EqualValues(t, len(tc.body), got.contentLength)
		})
	}
}

func TestSendEscapesCredentials(t *testing.T) {
	var got captured
	srv, _ := newKodi(t, http.StatusOK, "", &got)

	u, _ := url.Parse(srv.URL)
	host, port, _ := net.SplitHostPort(u.Host)
	c := NewClient(Endpoint{
		BaseURL:      "https://" + host,
		Port:         port,
		ResourcePath: "/kodi",
		Username:     "kodi",
		Password:     "a&b=c",
	}, WithHTTPClient(srv.Client()))

	_, err := c.Send(context.Background(), CommandPlay)
	require.NoError(t, err)
	assert.Equal(t, "u=kodi&p=a%26b%3Dc&args=play", got.body)
}

func TestSendRemoteRejected(t *testing.T) {
	_, c := newKodi(t, http.StatusInternalServerError, "boom", nil)

	res, err := c.Send(context.Background(), CommandPause)
	require.ErrorIs(t, err, ErrRemoteRejected)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Empty(t, res.Body)
}

func TestSendTransportError(t *testing.T) {
	srv, c := newKodi(t, http.StatusOK, "", nil)
	srv.Close()

	_, err := c.Send(context.Background(), CommandStop)
	assert.ErrorIs(t, err, ErrTransport)

	var uerr *url.Error
	assert.ErrorAs(t, err, &uerr)
}

func TestSendTimeout(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	host, port, _ := net.SplitHostPort(u.Host)
	c := NewClient(Endpoint{BaseURL: "https://" + host, Port: port, ResourcePath: "kodi"},
		WithHTTPClient(srv.Client()), WithTimeout(50*time.Millisecond))

	_, err := c.Send(context.Background(), CommandPlay)
	require.ErrorIs(t, err, ErrTransport)

	var ne net.Error
	require.ErrorAs(t, err, &ne)
	assert.True(t, ne.Timeout())
}

func TestSendContextDeadline(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	host, port, _ := net.SplitHostPort(u.Host)
	c := NewClient(Endpoint{BaseURL: "https://" + host, Port: port, ResourcePath: "kodi"},
		WithHTTPClient(srv.Client()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Send(ctx, CommandPlay)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewClientKeepsCallerHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: time.Minute}

	NewClient(Endpoint{BaseURL: "https://kodi.local"}, WithHTTPClient(hc), WithTimeout(time.Second))

	assert.Equal(t, time.Minute, hc.Timeout)
}

func TestWithTimeoutIgnoresNonPositive(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		o := options{timeout: DefaultTimeout}
		WithTimeout(d)(&o)
		assert.Equal(t, DefaultTimeout, o.timeout)
	}
}

func TestSendUnknownCommand(t *testing.T) {
	c := NewClient(Endpoint{BaseURL: "https://kodi.local", Port: "8000", ResourcePath: "kodi"})

	_, err := c.Send(context.Background(), Command(42))
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestSendMalformedEndpoint(t *testing.T) {
	c := NewClient(Endpoint{BaseURL: "http://kodi.local", Port: "8000", ResourcePath: "kodi"})

	_, err := c.Send(context.Background(), CommandPlay)
	assert.ErrorIs(t, err, ErrMalformedEndpoint)
}

func TestEndpointURL(t *testing.T) {
	testCases := []struct {
		name     string
		endpoint Endpoint
		want     string
		wantErr  bool
	}{
		{
			name:     "full",
			endpoint: Endpoint{BaseURL: "https://kodi.example.net", Port: "8000", ResourcePath: "kodi"},
			want:     "https://kodi.example.net:8000/kodi",
		},
		{
			name:     "trailing_and_leading_slashes",
			endpoint: Endpoint{BaseURL: "https://kodi.example.net/", Port: "8000", ResourcePath: "/kodi"},
			want:     "https://kodi.example.net:8000/kodi",
		},
		{
			name:     "no_port",
			endpoint: Endpoint{BaseURL: "https://kodi.example.net", ResourcePath: "kodi"},
			want:     "https://kodi.example.net/kodi",
		},
		{
			name:     "ipv6",
			endpoint: Endpoint{BaseURL: "https://[::1]", Port: "8000", ResourcePath: "kodi"},
			want:     "https://[::1]:8000/kodi",
		},
		{name: "empty", endpoint: Endpoint{}, wantErr: true},
		{name: "plain_http", endpoint: Endpoint{BaseURL: "http://kodi.example.net", Port: "8000"}, wantErr: true},
		{name: "bad_port", endpoint: Endpoint{BaseURL: "https://kodi.example.net", Port: "eighty"}, wantErr: true},
		{name: "no_host", endpoint: Endpoint{BaseURL: "https://", Port: "8000"}, wantErr: true},
		{name: "path_in_base", endpoint: Endpoint{BaseURL: "https://kodi.example.net/api", Port: "8000", ResourcePath: "kodi"}, wantErr: true},
		{name: "port_in_base", endpoint: Endpoint{BaseURL: "https://kodi.example.net:9000", Port: "8000"}, wantErr: true},
		{name: "query_in_base", endpoint: Endpoint{BaseURL: "https://kodi.example.net?x=1", Port: "8000"}, wantErr: true},
		{name: "port_out_of_range", endpoint: Endpoint{BaseURL: "https://kodi.example.net", Port: "70000"}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.endpoint.URL()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrMalformedEndpoint)
				assert.Error(t, tc.endpoint.Validate())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCommandKeyword(t *testing.T) {
	kw, ok := CommandPlay.Keyword()
	assert.True(t, ok)
	assert.Equal(t, "play", kw)

	_, ok = Command(0).Keyword()
	assert.False(t, ok)
	assert.Equal(t, "unknown", Command(0).String())
}
