package catalog

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

// Outbound throttle for the shared student API instance.
const (
	remoteLimit = rate.Limit(10)
	remoteBurst = 20
)

// RemoteClient consumes the goods endpoint.
type RemoteClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewRemoteClient(baseURL, apiKey string, timeout time.Duration) *RemoteClient {
	if apiKey == "" {
		logger.L().Warn("goods API key is empty")
	}

	return &RemoteClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(remoteLimit, remoteBurst),
	}
}

// goodsResponse is the paginated envelope; the endpoint serves a bare array
// when pagination is not in play.
type goodsResponse struct {
	Goods      []Product   `json:"goods"`
	Pagination *Pagination `json:"_pagination"`
}

// Fetch queries one catalog page, translating the filter set to the
// endpoint's query parameters.
func (c *RemoteClient) Fetch(ctx context.Context, req PageRequest) (*PageResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
		zap.String("sort_order", string(req.Sort)),
	)

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("page", strconv.Itoa(req.Page))
	params.Set("per_page", strconv.Itoa(req.PerPage))
	if req.Sort != SortNone {
		params.Set("sort_order", string(req.Sort))
	}
	f := req.Filters
	if f.Category != "" {
		params.Set("main_category", f.Category)
	}
	if f.MinPrice != nil {
		params.Set("min_price", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		params.Set("max_price", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.DiscountOnly {
		params.Set("discount_only", "true")
	}
	if f.Query != "" {
		params.Set("query", f.Query)
	}

	body, err := c.get(ctx, c.baseURL+"/goods?"+params.Encode(), log)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var goods []Product
		if err := json.Unmarshal(body, &goods); err != nil {
			log.Error("failed decoding goods array", zap.Error(err))
			return nil, fmt.Errorf("decode goods response: %w", err)
		}
		return &PageResult{Items: goods}, nil
	}

	var res goodsResponse
	if err := json.Unmarshal(body, &res); err != nil {
		log.Error("failed decoding goods response", zap.Error(err))
		return nil, fmt.Errorf("decode goods response: %w", err)
	}
	if res.Goods == nil {
		res.Goods = []Product{}
	}

	return &PageResult{Items: res.Goods, Pagination: res.Pagination}, nil
}

// Product fetches a single good by id.
func (c *RemoteClient) Product(ctx context.Context, id ProductID) (*Product, error) {
	log := logger.FromCtx(ctx).With(zap.String("product_id", id.String()))

	endpoint := fmt.Sprintf("%s/goods/%s?api_key=%s", c.baseURL, url.PathEscape(id.String()), url.QueryEscape(c.apiKey))

	body, err := c.get(ctx, endpoint, log)
	if err != nil {
		return nil, err
	}

	var p Product
	if err := json.Unmarshal(body, &p); err != nil {
		log.Error("failed decoding product", zap.Error(err))
		return nil, fmt.Errorf("decode product: %w", err)
	}
	return &p, nil
}

func (c *RemoteClient) get(ctx context.Context, endpoint string, log *zap.Logger) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Error("failed building request", zap.Error(err))
		return nil, err
	}

	reqID := logger.TagRequest(req)
	log = log.With(zap.String("request_id", reqID))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("goods request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed reading response body", zap.Error(err))
		return nil, fmt.Errorf("read goods response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		log.Error("goods api rejected the key", zap.Int("status", resp.StatusCode))
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error("goods api returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", body),
		)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: decodeAPIMessage(body)}
	}

	log.Debug("goods request done",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	return body, nil
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
