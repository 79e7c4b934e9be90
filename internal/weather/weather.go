package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/evyataryagoni/cityweather/internal/logger"
	"github.com/evyataryagoni/cityweather/internal/metrics"
	"github.com/evyataryagoni/cityweather/internal/models"
	"golang.org/x/time/rate"
)

const nowPath = "/v3/weather/now.json"

// Source returns the current weather at a coordinate pair
type Source interface {
	Name() string
	Current(ctx context.Context, coords models.Coordinates) (*models.Weather, error)
}

// Config configures the Seniverse client
type Config struct {
	BaseURL    string // e.g. https://api.seniverse.com
	Key        string
	Language   string // default zh-Hans
	Unit       string // "c" or "f", default c
	Timeout    time.Duration
	RPS        float64 // <= 0 means unlimited
	Burst      int
	HTTPClient *http.Client
}

// Client queries the Seniverse "weather now" endpoint
type Client struct {
	baseURL  string
	key      string
	language string
	unit     string
	client   *http.Client
	limiter  *rate.Limiter
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

// nowResponse mirrors the fields of now.json we read
type nowResponse struct {
	Results []struct {
		Location *struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			Path string `json:"path"`
		} `json:"location"`
		Now *struct {
			Text        string `json:"text"`
			Code        string `json:"code"`
			Temperature string `json:"temperature"`
		} `json:"now"`
		LastUpdate string `json:"last_update"`
	} `json:"results"`
}

// NewClient creates a weather client; m and log may be nil
func NewClient(cfg Config, m *metrics.Metrics, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Language == "" {
		cfg.Language = "zh-Hans"
	}
	if cfg.Unit == "" {
		cfg.Unit = "c"
	}
	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RPS), max(cfg.Burst, 1))
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		key:      cfg.Key,
		language: cfg.Language,
		unit:     cfg.Unit,
		client:   client,
		limiter:  limiter,
		metrics:  m,
		logger:   log.WithComponent("WeatherClient"),
	}
}

// Name returns the provider name
func (c *Client) Name() string {
	return "seniverse"
}

// Current fetches the weather now at coords
// The result is Valid only when the response carries a "now" block
func (c *Client) Current(ctx context.Context, coords models.Coordinates) (*models.Weather, error) {
	if c.key == "" {
		return nil, fmt.Errorf("weather client: %w", models.ErrMissingAPIKey)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(coords), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	c.observe(start)
	if err != nil {
		c.count("error")
		c.logger.Error().Err(err).Msg("Weather request failed")
		return nil, fmt.Errorf("%w: %v", models.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.count("error")
		c.logger.Error().Int("status", resp.StatusCode).Msg("Weather API returned non-200 status")
		return nil, fmt.Errorf("%w: non-200 status: %d", models.ErrUpstream, resp.StatusCode)
	}

	var body nowResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.count("error")
		return nil, fmt.Errorf("%w: failed to parse response: %v", models.ErrUpstream, err)
	}
	if len(body.Results) == 0 {
		c.count("error")
		return nil, fmt.Errorf("%w: empty results", models.ErrUpstream)
	}

	result := body.Results[0]
	w := &models.Weather{
		Coordinates: coords,
		UpdatedAt:   time.Now().UTC(),
	}
	if result.Location != nil {
		w.City = result.Location.Name
	}
	if result.Now != nil {
		if result.Now.Temperature != "" {
			w.Temperature = result.Now.Temperature + c.unitSuffix()
		}
		w.Text = result.Now.Text
		w.Valid = true
	}

	c.count("success")
	c.logger.Info().
		Str("city", w.City).
		Str("temperature", w.Temperature).
		Str("text", w.Text).
		Msg("Weather fetched")
	return w, nil
}

// requestURL renders location as "lat:lon" with four decimals
func (c *Client) requestURL(coords models.Coordinates) string {
	q := url.Values{}
	q.Set("key", c.key)
	q.Set("location", strconv.FormatFloat(coords.Lat, 'f', 4, 64)+":"+strconv.FormatFloat(coords.Lon, 'f', 4, 64))
	q.Set("language", c.language)
	q.Set("unit", c.unit)
	return c.baseURL + nowPath + "?" + q.Encode()
}

func (c *Client) unitSuffix() string {
	if c.unit == "f" {
		return "°F"
	}
	return "°C"
}

func (c *Client) count(result string) {
	if c.metrics != nil {
		c.metrics.UpstreamRequestsTotal.WithLabelValues(c.Name(), result).Inc()
	}
}

func (c *Client) observe(start time.Time) {
	if c.metrics != nil {
		c.metrics.UpstreamRequestDuration.WithLabelValues(c.Name()).Observe(time.Since(start).Seconds())
	}
}

var _ Source = (*Client)(nil)
