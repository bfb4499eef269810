package smsalert

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.NewConfig()
	cfg.SMSAlertBaseURL = server.URL
	cfg.SMSAlertAPIKey = "test-key"
	cfg.SMSAlertSenderID = "MYANML"
	return NewClient(cfg, zap.NewNop())
}

func TestNewClient_Defaults(t *testing.T) {
	cfg := &config.Config{}
	client := NewClient(cfg, zap.NewNop())

	assert.Equal(t, config.DefaultSMSAlertBaseURL, client.BaseURL)
	assert.Equal(t, config.DefaultSMSAlertPath, client.SendPath)
	assert.Equal(t, config.DefaultSMSAlertPath, client.VerifyPath)
	assert.Equal(t, config.DefaultSMSAlertPath, client.ResendPath)
	require.NotNil(t, client.HTTPClient)
	assert.Equal(t, config.DefaultSMSAlertTimeout, client.HTTPClient.Timeout)
}

func TestSendOTP_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/mverify.json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("apikey"))
		assert.Equal(t, "MYANML", q.Get("sender"))
		assert.Equal(t, "9876543210", q.Get("mobileno"))
		assert.Equal(t, config.DefaultSMSTemplate, q.Get("template"))
		assert.Empty(t, q.Get("code"))
		_, _ = w.Write([]byte(`{"status":"success","description":{"desc":"OTP sent"}}`))
	})

	require.NoError(t, client.SendOTP(context.Background(), "9876543210"))
}

func TestSendOTP_ProviderRejects(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","description":"Invalid apikey"}`))
	})

	err := client.SendOTP(context.Background(), "9876543210")
	require.Error(t, err)

	var gwErr *domain.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, "send", gwErr.Op)
	assert.Equal(t, "Failed to send OTP", gwErr.GetMessage())
	assert.JSONEq(t, `{"status":"error","description":"Invalid apikey"}`, string(gwErr.Payload))
}

func TestSendOTP_NonJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	})

	err := client.SendOTP(context.Background(), "9876543210")
	var gwErr *domain.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, `"<html>maintenance</html>"`, string(gwErr.Payload))
}

func TestSendOTP_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"status":"error"}`))
	})

	err := client.SendOTP(context.Background(), "9876543210")
	var gwErr *domain.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, http.StatusBadGateway, gwErr.Status)
	assert.True(t, errors.Is(err, domain.ErrGateway))
}

func TestSendOTP_Timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"status":"success"}`))
	})
	client.HTTPClient.Timeout = 20 * time.Millisecond

	err := client.SendOTP(context.Background(), "9876543210")
	var gwErr *domain.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.NotNil(t, gwErr.Err)
}

func TestResendOTP_UsesResendPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/resend.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"success"}`))
	})
	client.ResendPath = "/api/resend.json"

	require.NoError(t, client.ResendOTP(context.Background(), "9876543210"))
}

func TestVerifyOTP(t *testing.T) {
	tests := []struct {
		name string
		body string
		want domain.MatchOutcome
	}{
		{"matched", `{"status":"success","description":{"desc":"Code Matched successfully."}}`, domain.OutcomeMatched},
		{"not matched", `{"status":"success","description":{"desc":"Code does not match."}}`, domain.OutcomeNotMatched},
		{"other description", `{"status":"error","description":{"desc":"Invalid mobile number"}}`, domain.OutcomeUnknown},
		{"missing field", `{"status":"success"}`, domain.OutcomeUnknown},
		{"non-string field", `{"description":{"desc":42}}`, domain.OutcomeUnknown},
		{"flat description", `{"description":"Code Matched successfully."}`, domain.OutcomeUnknown},
		{"not json", `Code Matched successfully.`, domain.OutcomeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				assert.Equal(t, "1234", q.Get("code"))
				assert.Equal(t, "9876543210", q.Get("mobileno"))
				assert.Empty(t, q.Get("template"))
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := client.VerifyOTP(context.Background(), "9876543210", "1234")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyOTP_TransportFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	client.BaseURL = "http://127.0.0.1:1"

	got, err := client.VerifyOTP(context.Background(), "9876543210", "1234")
	assert.Equal(t, domain.OutcomeUnknown, got)
	assert.True(t, errors.Is(err, domain.ErrGateway))
}

func TestAccepted(t *testing.T) {
	assert.True(t, Accepted([]byte(`{"status":"success"}`)))
	assert.False(t, Accepted([]byte(`{"status":"Success"}`)))
	assert.False(t, Accepted([]byte(`{"status":true}`)))
	assert.False(t, Accepted([]byte(`nope`)))
}
