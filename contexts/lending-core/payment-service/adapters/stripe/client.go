// Package stripe implements the checkout gateway port against the Stripe
// Checkout Sessions REST API.
package stripe

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domainerrors "bookcourier/contexts/lending-core/payment-service/domain/errors"
	"bookcourier/contexts/lending-core/payment-service/ports"
)

const defaultBaseURL = "https://api.stripe.com"

// Client talks to the Checkout Sessions endpoints with form-encoded
// requests and a bearer secret key. Provider rejections and transport
// failures both surface as a gateway outage: the confirmation flow never
// records a payment it could not verify.
type Client struct {
	SecretKey string
	BaseURL   string
	Client    *http.Client
	Logger    *slog.Logger
}

func NewClient(secretKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		SecretKey: secretKey,
		BaseURL:   defaultBaseURL,
		Client:    &http.Client{Timeout: 15 * time.Second},
		Logger:    logger,
	}
}

type sessionResponse struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	PaymentStatus string `json:"payment_status"`
	PaymentIntent string `json:"payment_intent"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
	CustomerEmail string `json:"customer_email"`
	CustomerData  struct {
		Email string `json:"email"`
	} `json:"customer_details"`
	Metadata map[string]string `json:"metadata"`
}

func (c *Client) CreateSession(ctx context.Context, input ports.CreateSessionInput) (ports.CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("customer_email", input.CustomerEmail)
	form.Set("success_url", input.SuccessURL)
	form.Set("cancel_url", input.CancelURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", input.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(input.AmountMinor, 10))
	form.Set("line_items[0][price_data][product_data][name]", input.BookName)
	form.Set("metadata[orderId]", input.OrderID)
	form.Set("metadata[bookName]", input.BookName)

	decoded, err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", form)
	if err != nil {
		return ports.CheckoutSession{}, err
	}
	return ports.CheckoutSession{
		SessionID: decoded.ID,
		URL:       decoded.URL,
	}, nil
}

func (c *Client) RetrieveSession(ctx context.Context, sessionID string) (ports.SessionStatus, error) {
	decoded, err := c.do(ctx, http.MethodGet, "/v1/checkout/sessions/"+url.PathEscape(sessionID), nil)
	if err != nil {
		return ports.SessionStatus{}, err
	}
	email := decoded.CustomerEmail
	if email == "" {
		email = decoded.CustomerData.Email
	}
	return ports.SessionStatus{
		PaymentStatus: decoded.PaymentStatus,
		OrderID:       decoded.Metadata["orderId"],
		BookName:      decoded.Metadata["bookName"],
		AmountTotal:   decoded.AmountTotal,
		Currency:      decoded.Currency,
		CustomerEmail: email,
		TransactionID: decoded.PaymentIntent,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values) (sessionResponse, error) {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL()+path, body)
	if err != nil {
		return sessionResponse{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.client().Do(req)
	if err != nil {
		c.Logger.Error("gateway call failed",
			"event", "payment_gateway_call_failed",
			"module", "lending-core/payment-service",
			"layer", "adapter",
			"method", method,
			"path", path,
			"error", err.Error(),
		)
		return sessionResponse{}, domainerrors.ErrGatewayUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.Logger.Error("gateway returned error status",
			"event", "payment_gateway_error_status",
			"module", "lending-core/payment-service",
			"layer", "adapter",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
		)
		return sessionResponse{}, domainerrors.ErrGatewayUnavailable
	}

	var decoded sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return sessionResponse{}, domainerrors.ErrGatewayUnavailable
	}
	return decoded, nil
}

func (c *Client) baseURL() string {
	if c.BaseURL == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(c.BaseURL, "/")
}

func (c *Client) client() *http.Client {
	if c.Client == nil {
		return http.DefaultClient
	}
	return c.Client
}
