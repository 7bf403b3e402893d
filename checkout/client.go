// Package checkout is the client for the Maya checkout and refund endpoints.
// It builds authenticated requests from the data package's value objects,
// sends them over an injectable http.Client, and turns non-success responses
// into the typed errors in errors.go. Retries, backoff and rate limiting are
// deliberately absent; they belong to the injected transport.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"maya-go/data"
	"maya-go/internal/logger"
)

const (
	checkoutsPath     = "/checkout/v1/checkouts"
	checkoutByIDPath  = "/checkout/v1/checkouts/%s"
	paymentRefundPath = "/payments/v1/payments/%s/refunds"

	// Fallback template for the API variant that answers a creation call
	// with a bare checkout-details object. Overridable via Config since the
	// upstream contract behind it is undocumented.
	defaultCheckoutURLTemplate = "https://checkout.maya.ph/v1/%s"
)

// Config carries the plain values a Client needs. Only Environment and the
// two keys are required.
type Config struct {
	Environment Environment
	PublicKey   string
	SecretKey   string

	// BaseURL overrides the environment's origin when set.
	BaseURL string

	// CheckoutURLTemplate overrides the redirect-URL fallback template.
	CheckoutURLTemplate string

	// HTTPClient is the injected transport. Defaults to a plain client with
	// a 15 second timeout.
	HTTPClient *http.Client
}

// Client is safe for concurrent use; it holds no mutable state.
type Client struct {
	baseURL             string
	publicKey           string
	secretKey           string
	checkoutURLTemplate string
	httpClient          *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.Environment.BaseURL()
	if cfg.BaseURL != "" {
		baseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	template := cfg.CheckoutURLTemplate
	if template == "" {
		template = defaultCheckoutURLTemplate
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:             baseURL,
		publicKey:           cfg.PublicKey,
		secretKey:           cfg.SecretKey,
		checkoutURLTemplate: template,
		httpClient:          httpClient,
	}
}

// Create starts a hosted checkout session. It authenticates with the public
// key and returns the session id plus the payer redirect URL.
func (c *Client) Create(ctx context.Context, req *data.CheckoutRequest) (*data.CheckoutResult, error) {
	if req == nil {
		return nil, &data.ValidationError{Field: "checkout", Message: "checkout request is required"}
	}
	if req.RedirectURLs == nil {
		return nil, &data.ValidationError{Field: "redirectUrl", Message: "redirect URLs are required"}
	}
	if strings.TrimSpace(req.ReferenceNumber) == "" {
		return nil, &data.ValidationError{Field: "requestReferenceNumber", Message: "request reference number is required"}
	}

	raw, err := c.send(ctx, http.MethodPost, checkoutsPath, c.publicKey, req.Serialize())
	if err != nil {
		return nil, err
	}

	// Some API variants answer with the full checkout-details object. When
	// only "id" is present, synthesize the redirect URL from the template
	// instead of failing the creation.
	if id, ok := raw["id"].(string); ok {
		if raw["checkoutId"] == nil && raw["redirectUrl"] == nil {
			return &data.CheckoutResult{
				CheckoutID:  id,
				RedirectURL: fmt.Sprintf(c.checkoutURLTemplate, id),
			}, nil
		}
	}

	return data.ParseCheckoutResult(raw)
}

// Get retrieves the full checkout object by id, using the secret key.
func (c *Client) Get(ctx context.Context, checkoutID string) (*data.CheckoutDetails, error) {
	if strings.TrimSpace(checkoutID) == "" {
		return nil, &data.ValidationError{Field: "id", Message: "checkout id is required"}
	}

	path := fmt.Sprintf(checkoutByIDPath, url.PathEscape(checkoutID))
	raw, err := c.send(ctx, http.MethodGet, path, c.secretKey, nil)
	if err != nil {
		return nil, err
	}
	return data.ParseCheckoutDetails(raw)
}

// Refund refunds a captured payment, using the secret key.
func (c *Client) Refund(ctx context.Context, paymentID string, req *data.RefundRequest) (*data.RefundResult, error) {
	if strings.TrimSpace(paymentID) == "" {
		return nil, &data.ValidationError{Field: "paymentId", Message: "payment id is required"}
	}
	if req == nil {
		return nil, &data.ValidationError{Field: "refund", Message: "refund request is required"}
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, &data.ValidationError{Field: "reason", Message: "refund reason is required"}
	}

	path := fmt.Sprintf(paymentRefundPath, url.PathEscape(paymentID))
	raw, err := c.send(ctx, http.MethodPost, path, c.secretKey, req.Serialize())
	if err != nil {
		return nil, err
	}
	return data.ParseRefundResult(raw)
}

// send performs one authenticated round trip and decodes the JSON body.
// Basic auth is the key as username with an empty password. Transport-level
// failures propagate unchanged; non-2xx statuses go through classifyStatus.
func (c *Client) send(ctx context.Context, method, path, key string, body map[string]any) (map[string]any, error) {
	log := logger.L().With(
		zap.String("method", method),
		zap.String("path", path),
	)

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		log.Error("failed building request", zap.Error(err))
		return nil, err
	}
	req.SetBasicAuth(key, "")
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("maya request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("read maya response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Error("maya returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", respBody),
		)
		return nil, classifyStatus(resp.StatusCode, respBody)
	}

	var raw map[string]any
	if err := json.Unmarshal(respBody, &raw); err != nil {
		log.Error("failed decoding maya response", zap.Error(err))
		return nil, fmt.Errorf("decode maya response: %w", err)
	}

	log.Info("maya request succeeded", zap.Int("status", resp.StatusCode))
	return raw, nil
}
