package captcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecaptcha(t *testing.T, status int, body string) *Recaptcha {
	t.Helper()

	srv := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "secret", r.URL.Query().Get("secret"))
				assert.Equal(t, "token", r.URL.Query().Get("response"))
				w.WriteHeader(status)
				_, _ = w.Write([]byte(body))
			},
		),
	)
	t.Cleanup(srv.Close)

	c := New(config.Config{Auth: config.AuthConfig{CaptchaEnabled: true, CaptchaSecret: "secret"}})
	c.url = srv.URL
	return c
}

func TestRecaptcha_VerifyRecaptcha(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		status      int
		body        string
		expected    bool
		expectedErr error
	}{
		{
			name:     "Success",
			status:   http.StatusOK,
			body:     `{"success":true,"score":0.9,"action":"pass_auth"}`,
			expected: true,
		},
		{
			name:   "LowScore",
			status: http.StatusOK,
			body:   `{"success":true,"score":0.05,"action":"pass_auth"}`,
		},
		{
			name:   "WrongAction",
			status: http.StatusOK,
			body:   `{"success":true,"score":0.9,"action":"other"}`,
		},
		{
			name:   "Unsuccessful",
			status: http.StatusOK,
			body:   `{"success":false}`,
		},
		{
			name:        "BadStatus",
			status:      http.StatusBadGateway,
			body:        ``,
			expectedErr: ErrVerificationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				c := newTestRecaptcha(t, tt.status, tt.body)

				ok, err := c.VerifyRecaptcha(ctx, "token", PassAuth)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				} else {
					require.NoError(t, err)
				}
				assert.Equal(t, tt.expected, ok)
			},
		)
	}
}

func TestRecaptcha_Disabled(t *testing.T) {
	c := New(config.Config{})

	ok, err := c.VerifyRecaptcha(context.Background(), "", PassAuth)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRecaptcha_EmptyToken(t *testing.T) {
	c := New(config.Config{Auth: config.AuthConfig{CaptchaEnabled: true}})

	ok, err := c.VerifyRecaptcha(context.Background(), "", PassAuth)
	require.NoError(t, err)
	assert.False(t, ok)
}
