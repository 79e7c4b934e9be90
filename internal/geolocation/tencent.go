package geolocation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/evyataryagoni/cityweather/internal/address"
	"github.com/evyataryagoni/cityweather/internal/logger"
	"github.com/evyataryagoni/cityweather/internal/metrics"
	"github.com/evyataryagoni/cityweather/internal/models"
	"golang.org/x/time/rate"
)

const tencentIPPath = "/ws/location/v1/ip"

// TencentConfig configures the Tencent Maps IP location client
type TencentConfig struct {
	BaseURL    string        // e.g. https://apis.map.qq.com
	Key        string        // Web service key, required
	Timeout    time.Duration // per request, default 10s
	RPS        float64       // outbound requests per second, <= 0 means unlimited
	Burst      int
	HTTPClient *http.Client // optional, overrides Timeout
}

// TencentClient locates IPs through the Tencent Maps web service
type TencentClient struct {
	baseURL string
	key     string
	client  *http.Client
	limiter *rate.Limiter
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// tencentResponse mirrors the fields of /ws/location/v1/ip we read
type tencentResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Result  *struct {
		IP     string `json:"ip"`
		AdInfo *struct {
			Nation   string `json:"nation"`
			Province string `json:"province"`
			City     string `json:"city"`
			District string `json:"district"`
		} `json:"ad_info"`
	} `json:"result"`
}

// NewTencentClient creates a client; m and log may be nil
func NewTencentClient(cfg TencentConfig, m *metrics.Metrics, log *logger.Logger) *TencentClient {
	if log == nil {
		log = logger.Nop()
	}
	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	return &TencentClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		key:     cfg.Key,
		client:  client,
		limiter: newLimiter(cfg.RPS, cfg.Burst),
		metrics: m,
		logger:  log.WithComponent("TencentLocator"),
	}
}

// Name returns the provider name
func (c *TencentClient) Name() string {
	return "tencent"
}

// Locate queries the provider for ip
func (c *TencentClient) Locate(ctx context.Context, ip string) (*models.Location, error) {
	if c.key == "" {
		return nil, fmt.Errorf("tencent locator: %w", models.ErrMissingAPIKey)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	q := url.Values{}
	q.Set("key", c.key)
	if ip != "" {
		q.Set("ip", ip)
	}
	reqURL := c.baseURL + tencentIPPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	c.logger.Debug().Str("ip", ip).Msg("Requesting IP location")
	resp, err := c.client.Do(req)
	c.observe(start)
	if err != nil {
		c.count("error")
		c.logger.Error().Err(err).Str("ip", ip).Msg("IP location request failed")
		return nil, fmt.Errorf("%w: %v", models.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.count("error")
		c.logger.Error().Int("status", resp.StatusCode).Msg("IP location returned non-200 status")
		return nil, fmt.Errorf("%w: non-200 status: %d", models.ErrUpstream, resp.StatusCode)
	}

	var body tencentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.count("error")
		return nil, fmt.Errorf("%w: failed to parse response: %v", models.ErrUpstream, err)
	}

	if body.Status != 0 {
		c.count("error")
		c.logger.Error().Int("api_status", body.Status).Str("message", body.Message).Msg("IP location API error")
		return nil, fmt.Errorf("%w: api status %d: %s", models.ErrUpstream, body.Status, body.Message)
	}
	if body.Result == nil || body.Result.AdInfo == nil {
		c.count("error")
		return nil, fmt.Errorf("%w: response missing ad_info", models.ErrUpstream)
	}

	ad := body.Result.AdInfo
	loc := &models.Location{
		IP:        body.Result.IP,
		Province:  ad.Province,
		City:      ad.City,
		District:  ad.District,
		Address:   address.FormatAddress(ad.Province, ad.City, ad.District),
		Provider:  c.Name(),
		UpdatedAt: time.Now().UTC(),
	}
	if loc.IP == "" {
		loc.IP = ip
	}

	c.count("success")
	c.logger.Info().Str("ip", loc.IP).Str("address", loc.Address).Msg("IP located")
	return loc, nil
}

func (c *TencentClient) count(result string) {
	if c.metrics != nil {
		c.metrics.UpstreamRequestsTotal.WithLabelValues(c.Name(), result).Inc()
	}
}

func (c *TencentClient) observe(start time.Time) {
	if c.metrics != nil {
		c.metrics.UpstreamRequestDuration.WithLabelValues(c.Name()).Observe(time.Since(start).Seconds())
	}
}

// newLimiter builds an outbound limiter; rps <= 0 disables throttling
func newLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

var _ Locator = (*TencentClient)(nil)
