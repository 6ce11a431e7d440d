package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	c := NewClient("key_id", "key_secret")

	good := sign("key_secret", "order_A", "pay_B")
	if !c.VerifySignature("order_A", "pay_B", good) {
		t.Fatal("correctly computed signature rejected")
	}

	// Any single-byte mutation must fail.
	for i := 0; i < len(good); i++ {
		bad := []byte(good)
		bad[i] ^= 1
		if c.VerifySignature("order_A", "pay_B", string(bad)) {
			t.Fatalf("mutated signature at byte %d accepted", i)
		}
	}

	if c.VerifySignature("order_A", "pay_C", good) {
		t.Error("signature for a different payment id accepted")
	}
}

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/orders" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		user, pass, _ := r.BasicAuth()
		if user != "key_id" || pass != "key_secret" {
			t.Errorf("basic auth = %s/%s", user, pass)
		}
		var body struct {
			Amount         int64             `json:"amount"`
			Currency       string            `json:"currency"`
			PaymentCapture int               `json:"payment_capture"`
			Notes          map[string]string `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.Amount != 50000 || body.Currency != "INR" || body.PaymentCapture != 1 {
			t.Errorf("unexpected order body: %+v", body)
		}
		if body.Notes["car_id"] != "CAR_1" {
			t.Errorf("notes = %v", body.Notes)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "order_TEST1", "amount": body.Amount, "currency": body.Currency,
		})
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("key_id", "key_secret", srv.URL)
	ord, err := c.CreateOrder(context.Background(), 50000, "INR", map[string]string{"car_id": "CAR_1"})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if ord.ID != "order_TEST1" || ord.Amount != 50000 || ord.Currency != "INR" {
		t.Errorf("order = %+v", ord)
	}
}

func TestCreateOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"description":"auth failed"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("key_id", "wrong", srv.URL)
	if _, err := c.CreateOrder(context.Background(), 50000, "INR", nil); err == nil {
		t.Error("expected error for gateway rejection")
	}
}

func TestConfigured(t *testing.T) {
	if NewClient("", "").Configured() {
		t.Error("client without keys reports configured")
	}
	if !NewClient("k", "s").Configured() {
		t.Error("client with keys reports unconfigured")
	}
	var nilClient *Client
	if nilClient.Configured() {
		t.Error("nil client reports configured")
	}
}
