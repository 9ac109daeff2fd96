package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"wedding-marketplace/config"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

// Client is the thin wrapper over the payment processor's REST API. All
// amounts are minor currency units. The client never retries; retry policy
// belongs to the caller.
type Client interface {
	CreateSource(ctx context.Context, amount int64, sourceType string, metadata map[string]string) (Source, error)
	CreatePayment(ctx context.Context, sourceID string, amount int64, description string, metadata map[string]string) (Payment, error)
	GetPayment(ctx context.Context, paymentID string) (Payment, error)
}

type Source struct {
	ID     string
	Status string
	Amount int64
}

type Payment struct {
	ID       string
	Status   string
	Amount   int64
	Metadata map[string]string
}

// Error carries the gateway's raw status and message through to the caller.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("gateway error (status %d): %s", e.StatusCode, e.Message)
}

type client struct {
	httpClient *circuit.HTTPClient
	cfg        *config.GatewayConfig
	log        *otelzap.Logger
}

func NewClient(httpClient *circuit.HTTPClient, cfg *config.GatewayConfig, log *otelzap.Logger) Client {
	return &client{
		httpClient: httpClient,
		cfg:        cfg,
		log:        log,
	}
}

const currency = "PHP"

type resource struct {
	Data struct {
		ID         string `json:"id"`
		Attributes struct {
			Status   string            `json:"status"`
			Amount   int64             `json:"amount"`
			Metadata map[string]string `json:"metadata"`
		} `json:"attributes"`
	} `json:"data"`
}

type apiErrors struct {
	Errors []struct {
		Detail string `json:"detail"`
	} `json:"errors"`
}

func (c *client) do(ctx context.Context, method, path string, payload interface{}) (resource, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return resource{}, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return resource{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.cfg.SecretKey+":")))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return resource{}, &Error{StatusCode: http.StatusBadGateway, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resource{}, &Error{StatusCode: http.StatusBadGateway, Message: err.Error()}
	}

	if resp.StatusCode >= 400 {
		var apiErr apiErrors
		msg := string(raw)
		if err := json.Unmarshal(raw, &apiErr); err == nil && len(apiErr.Errors) > 0 {
			msg = apiErr.Errors[0].Detail
		}
		return resource{}, &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	var res resource
	if err := json.Unmarshal(raw, &res); err != nil {
		return resource{}, &Error{StatusCode: resp.StatusCode, Message: "error decode gateway response"}
	}
	return res, nil
}

func (c *client) CreateSource(ctx context.Context, amount int64, sourceType string, metadata map[string]string) (Source, error) {
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"attributes": map[string]interface{}{
				"amount":   amount,
				"currency": currency,
				"type":     sourceType,
				"metadata": metadata,
			},
		},
	}

	res, err := c.do(ctx, http.MethodPost, "/sources", payload)
	if err != nil {
		return Source{}, err
	}

	return Source{
		ID:     res.Data.ID,
		Status: res.Data.Attributes.Status,
		Amount: res.Data.Attributes.Amount,
	}, nil
}

func (c *client) CreatePayment(ctx context.Context, sourceID string, amount int64, description string, metadata map[string]string) (Payment, error) {
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"attributes": map[string]interface{}{
				"amount":      amount,
				"currency":    currency,
				"description": description,
				"metadata":    metadata,
				"source": map[string]interface{}{
					"id":   sourceID,
					"type": "source",
				},
			},
		},
	}

	res, err := c.do(ctx, http.MethodPost, "/payments", payload)
	if err != nil {
		return Payment{}, err
	}

	return Payment{
		ID:       res.Data.ID,
		Status:   res.Data.Attributes.Status,
		Amount:   res.Data.Attributes.Amount,
		Metadata: res.Data.Attributes.Metadata,
	}, nil
}

func (c *client) GetPayment(ctx context.Context, paymentID string) (Payment, error) {
	res, err := c.do(ctx, http.MethodGet, "/payments/"+paymentID, nil)
	if err != nil {
		return Payment{}, err
	}

	return Payment{
		ID:       res.Data.ID,
		Status:   res.Data.Attributes.Status,
		Amount:   res.Data.Attributes.Amount,
		Metadata: res.Data.Attributes.Metadata,
	}, nil
}
