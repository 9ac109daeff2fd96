package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"wedding-marketplace/config"
	"wedding-marketplace/internal/module/payment/gateway"
	"wedding-marketplace/internal/pkg/httpclient"
	log_internal "wedding-marketplace/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func newClient(baseURL string) gateway.Client {
	cfgHTTP := &config.HttpClientConfig{Threshold: 10, TimeoutSeconds: 5}
	cb := httpclient.InitCircuitBreaker(cfgHTTP, "threshold")
	httpClient := httpclient.InitHttpClient(cfgHTTP, cb)

	return gateway.NewClient(httpClient, &config.GatewayConfig{
		BaseURL:   baseURL,
		SecretKey: "sk_test_123",
	}, log_internal.Setup())
}

func TestGetPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/pay_001", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"id": "pay_001",
				"attributes": map[string]interface{}{
					"status":   "paid",
					"amount":   3000,
					"metadata": map[string]string{"booking_id": "abc-123"},
				},
			},
		})
	}))
	defer server.Close()

	client := newClient(server.URL)

	payment, err := client.GetPayment(context.Background(), "pay_001")

	assert.NoError(t, err)
	assert.Equal(t, "pay_001", payment.ID)
	assert.Equal(t, "paid", payment.Status)
	assert.Equal(t, int64(3000), payment.Amount)
	assert.Equal(t, "abc-123", payment.Metadata["booking_id"])
}

func TestCreatePayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payments", r.URL.Path)

		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		attributes := body["data"].(map[string]interface{})["attributes"].(map[string]interface{})
		assert.Equal(t, "PHP", attributes["currency"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"id": "pay_002",
				"attributes": map[string]interface{}{
					"status": "paid",
					"amount": 7000,
				},
			},
		})
	}))
	defer server.Close()

	client := newClient(server.URL)

	payment, err := client.CreatePayment(context.Background(), "src_001", 7000, "booking abc-123", map[string]string{"booking_id": "abc-123"})

	assert.NoError(t, err)
	assert.Equal(t, "pay_002", payment.ID)
	assert.Equal(t, "paid", payment.Status)
}

func TestGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]string{{"detail": "No such payment"}},
		})
	}))
	defer server.Close()

	client := newClient(server.URL)

	_, err := client.GetPayment(context.Background(), "pay_missing")

	assert.Error(t, err)
	gwErr, ok := err.(*gateway.Error)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, gwErr.StatusCode)
	assert.Equal(t, "No such payment", gwErr.Message)
}
