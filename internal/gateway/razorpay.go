// Package gateway talks to the Razorpay orders REST API and verifies the
// checkout callback signatures it sends back.
package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.razorpay.com"

type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type Client struct {
	keyID     string
	keySecret string
	baseURL   string
	httpc     *http.Client
}

func NewClient(keyID, keySecret string) *Client {
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   defaultBaseURL,
		httpc:     &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL points the client at a different API host.
func NewClientWithBaseURL(keyID, keySecret, baseURL string) *Client {
	c := NewClient(keyID, keySecret)
	c.baseURL = baseURL
	return c
}

func (c *Client) Configured() bool {
	return c != nil && c.keyID != "" && c.keySecret != ""
}

func (c *Client) KeyID() string {
	if c == nil {
		return ""
	}
	return c.keyID
}

// CreateOrder mints an order on the gateway. Amount is in paise; notes
// travel with the order and come back on the dashboard/webhooks.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency string, notes map[string]string) (*Order, error) {
	body, err := json.Marshal(map[string]any{
		"amount":          amount,
		"currency":        currency,
		"payment_capture": 1,
		"notes":           notes,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("razorpay create order: status %d: %s", resp.StatusCode, string(b))
	}

	var ord Order
	if err := json.NewDecoder(resp.Body).Decode(&ord); err != nil {
		return nil, fmt.Errorf("razorpay create order: decode: %w", err)
	}
	return &ord, nil
}

// VerifySignature recomputes the checkout signature, hex HMAC-SHA256 of
// "orderID|paymentID" under the key secret, and compares in constant time.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
