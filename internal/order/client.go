package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"shopzone/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Order writes get a stricter throttle than catalog reads.
const (
	ordersLimit = rate.Limit(2)
	ordersBurst = 5
)

// Gateway is the orders endpoint client.
type Gateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewGateway(baseURL, apiKey string, timeout time.Duration) *Gateway {
	if apiKey == "" {
		logger.L().Warn("orders API key is empty")
	}

	return &Gateway{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(ordersLimit, ordersBurst),
	}
}

// List fetches every order visible to the API key.
func (g *Gateway) List(ctx context.Context) ([]Order, error) {
	body, err := g.do(ctx, http.MethodGet, g.ordersURL(""), nil)
	if err != nil {
		return nil, err
	}

	var orders []Order
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

// Get fetches one order.
func (g *Gateway) Get(ctx context.Context, id int) (*Order, error) {
	body, err := g.do(ctx, http.MethodGet, g.ordersURL(strconv.Itoa(id)), nil)
	if err != nil {
		return nil, err
	}
	return decodeOrder(body)
}

// Create submits a new order.
func (g *Gateway) Create(ctx context.Context, input Input) (*Order, error) {
	body, err := g.do(ctx, http.MethodPost, g.ordersURL(""), input)
	if err != nil {
		return nil, err
	}
	return decodeOrder(body)
}

// Update rewrites an existing order.
func (g *Gateway) Update(ctx context.Context, id int, input Input) (*Order, error) {
	body, err := g.do(ctx, http.MethodPut, g.ordersURL(strconv.Itoa(id)), input)
	if err != nil {
		return nil, err
	}
	return decodeOrder(body)
}

// Delete removes an order, returning the deleted record.
func (g *Gateway) Delete(ctx context.Context, id int) (*Order, error) {
	body, err := g.do(ctx, http.MethodDelete, g.ordersURL(strconv.Itoa(id)), nil)
	if err != nil {
		return nil, err
	}
	return decodeOrder(body)
}

func (g *Gateway) ordersURL(id string) string {
	endpoint := g.baseURL + "/orders"
	if id != "" {
		endpoint += "/" + id
	}
	return endpoint + "?api_key=" + url.QueryEscape(g.apiKey)
}

func (g *Gateway) do(ctx context.Context, method, endpoint string, payload any) ([]byte, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", method),
	)

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			log.Error("failed to marshal order payload", zap.Error(err))
			return nil, err
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		log.Error("failed building request", zap.Error(err))
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	reqID := logger.TagRequest(req)
	log = log.With(zap.String("request_id", reqID))

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("orders request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed reading response body", zap.Error(err))
		return nil, fmt.Errorf("read orders response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		log.Error("orders api rejected the key", zap.Int("status", resp.StatusCode))
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error("orders api returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", body),
		)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: decodeAPIMessage(body)}
	}

	log.Debug("orders request done",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	return body, nil
}

func decodeOrder(body []byte) (*Order, error) {
	var o Order
	if err := json.Unmarshal(body, &o); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	return &o, nil
}

func decodeAPIMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error
}
