package smsalert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/config"
	"github.com/myanimal/petcare-service/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

const maxResponseBytes = 1 << 20

const (
	opSend   = "send"
	opVerify = "verify"
	opResend = "resend"
)

// Client talks to the SMS Alert mverify API. It never retries.
type Client struct {
	APIKey     string
	BaseURL    string
	Sender     string
	Template   string
	SendPath   string
	VerifyPath string
	ResendPath string
	HTTPClient *http.Client

	logger *zap.Logger
}

// NewClient builds a client from the SMS Alert settings in cfg
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	timeout := cfg.SMSAlertTimeout
	if timeout <= 0 {
		timeout = config.DefaultSMSAlertTimeout
	}
	baseURL := cfg.SMSAlertBaseURL
	if baseURL == "" {
		baseURL = config.DefaultSMSAlertBaseURL
	}
	return &Client{
		APIKey:     cfg.SMSAlertAPIKey,
		BaseURL:    baseURL,
		Sender:     cfg.SMSAlertSenderID,
		Template:   cfg.SMSAlertTemplate,
		SendPath:   orDefault(cfg.SMSAlertSendPath, config.DefaultSMSAlertPath),
		VerifyPath: orDefault(cfg.SMSAlertVerifyPath, config.DefaultSMSAlertPath),
		ResendPath: orDefault(cfg.SMSAlertResendPath, config.DefaultSMSAlertPath),
		HTTPClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SendOTP asks the provider to generate and deliver a code to phoneNumber
func (c *Client) SendOTP(ctx context.Context, phoneNumber string) error {
	return c.dispatch(ctx, opSend, c.SendPath, phoneNumber)
}

// ResendOTP asks the provider to deliver the code again
func (c *Client) ResendOTP(ctx context.Context, phoneNumber string) error {
	return c.dispatch(ctx, opResend, c.ResendPath, phoneNumber)
}

// VerifyOTP checks code against the provider and classifies its verdict.
// A readable 2xx response always yields an outcome, never a GatewayError.
func (c *Client) VerifyOTP(ctx context.Context, phoneNumber, code string) (domain.MatchOutcome, error) {
	start := time.Now()
	params := url.Values{
		"apikey":   {c.APIKey},
		"mobileno": {phoneNumber},
		"code":     {code},
	}
	body, err := c.get(ctx, opVerify, c.VerifyPath, params)
	if err != nil {
		metrics.RecordGatewayCall(opVerify, "error", time.Since(start))
		return domain.OutcomeUnknown, err
	}

	outcome := ClassifyVerify(body)
	metrics.RecordGatewayCall(opVerify, outcome.String(), time.Since(start))
	c.logger.Info("otp verify answered",
		zap.String("phone_number", phoneNumber),
		zap.String("outcome", outcome.String()),
	)
	return outcome, nil
}

func (c *Client) dispatch(ctx context.Context, op, path, phoneNumber string) error {
	start := time.Now()
	params := url.Values{
		"apikey":   {c.APIKey},
		"sender":   {c.Sender},
		"mobileno": {phoneNumber},
		"template": {c.Template},
	}
	body, err := c.get(ctx, op, path, params)
	if err != nil {
		metrics.RecordGatewayCall(op, "error", time.Since(start))
		return err
	}
	if !Accepted(body) {
		metrics.RecordGatewayCall(op, "rejected", time.Since(start))
		c.logger.Warn("otp provider rejected request",
			zap.String("op", op),
			zap.String("phone_number", phoneNumber),
			zap.ByteString("payload", body),
		)
		return &domain.GatewayError{
			Op:      op,
			Message: rejectionMessage(op),
			Status:  http.StatusOK,
			Payload: rawPayload(body),
		}
	}
	metrics.RecordGatewayCall(op, "ok", time.Since(start))
	return nil
}

func (c *Client) get(ctx context.Context, op, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &domain.GatewayError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.logger.Error("otp provider unreachable", zap.String("op", op), zap.Error(err))
		return nil, &domain.GatewayError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &domain.GatewayError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("otp provider request failed",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("payload", body),
		)
		return nil, &domain.GatewayError{Op: op, Status: resp.StatusCode, Payload: rawPayload(body)}
	}
	return body, nil
}

func rejectionMessage(op string) string {
	if op == opResend {
		return "Failed to resend OTP"
	}
	return "Failed to send OTP"
}

// rawPayload keeps JSON bodies as they are and quotes anything else
func rawPayload(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(string(body)); err != nil {
		return nil
	}
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n"))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
