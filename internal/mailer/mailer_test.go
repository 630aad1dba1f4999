package mailer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
	"github.com/igoratamanchuk/findamechanic/internal/mailer"
)

// redirectTransport sends every request to target regardless of its original host.
type redirectTransport struct {
	target *url.URL
}

func (rt redirectTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.URL.Scheme = rt.target.Scheme
	req.URL.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

func newTestMailer(t *testing.T, h http.HandlerFunc, timeout time.Duration) *mailer.Resend {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	target, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return mailer.NewResend("re_test", &http.Client{Transport: redirectTransport{target: target}}, timeout)
}

func testMessage() mailer.Message {
	return mailer.Message{
		From:    "FindAMechanic <onboarding@resend.dev>",
		To:      []string{"findamechanic.info@gmail.com"},
		Subject: "FindAMechanic Feedback — Sam",
		HTML:    "<p>hi</p>",
		Text:    "hi",
		ReplyTo: "Sam <sam@example.com>",
	}
}

func TestResend_Send(t *testing.T) {
	var got map[string]any
	m := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_123"}`))
	}, 0)

	id, err := m.Send(context.Background(), testMessage())

	require.NoError(t, err)
	assert.Equal(t, "msg_123", id)
	assert.Equal(t, "FindAMechanic Feedback — Sam", got["subject"])
	assert.Equal(t, []any{"findamechanic.info@gmail.com"}, got["to"])
	assert.Equal(t, "<p>hi</p>", got["html"])
	assert.Equal(t, "hi", got["text"])
	assert.Equal(t, "Sam <sam@example.com>", got["reply_to"])
}

func TestResend_ProviderErrorIsDeliveryFailed(t *testing.T) {
	m := newTestMailer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from address"}`))
	}, 0)

	_, err := m.Send(context.Background(), testMessage())

	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
}

func TestResend_TimeoutIsDeliveryFailed(t *testing.T) {
	release := make(chan struct{})
	m := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, 20*time.Millisecond)
	defer close(release)

	_, err := m.Send(context.Background(), testMessage())

	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
}
