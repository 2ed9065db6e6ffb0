package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	retry "github.com/avast/retry-go/v4"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

// MaxOSRMNodes is the upper bound on matrix size the OSRM table
// endpoint is trusted for; beyond this the builder should expect a
// Haversine fallback regardless of service health.
const MaxOSRMNodes = 1600

// Config configures an OSRMService.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Enabled bool
}

// OSRMService talks to an OSRM-compatible driving-graph HTTP API and
// falls back to Haversine on any failure, oversized request, or when
// disabled by config.
type OSRMService struct {
	cfg    Config
	client *http.Client
	log    zerolog.Logger
	cache  *gocache.Cache

	mu        sync.Mutex
	probed    bool
	available bool
}

// NewOSRMService constructs a client. cfg.Enabled=false makes every
// call behave as a pure-Haversine service without ever dialing out.
func NewOSRMService(cfg Config, log zerolog.Logger) *OSRMService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &OSRMService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log.With().Str("component", "travel.osrm").Logger(),
		cache:  gocache.New(10*time.Minute, 15*time.Minute),
	}
}

func (s *OSRMService) Refresh() {
	s.mu.Lock()
	s.probed = false
	s.mu.Unlock()
}

// isAvailable reports whether the OSRM backend responded to a cheap
// probe. The result is memoized for the process lifetime, or until
// Refresh is called, matching the "process-wide memoized boolean"
// resource model.
func (s *OSRMService) isAvailable(ctx context.Context) bool {
	if !s.cfg.Enabled {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.probed {
		return s.available
	}

	probeCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, s.cfg.BaseURL+"/route/v1/driving/0,0;0,0?overview=false", nil)
	if err != nil {
		s.probed, s.available = true, false
		return false
	}
	resp, err := s.client.Do(req)
	ok := err == nil && resp.StatusCode < 500
	if resp != nil {
		resp.Body.Close()
	}
	s.probed, s.available = true, ok
	if !ok {
		s.log.Warn().Err(err).Msg("osrm probe failed, falling back to haversine for the process lifetime")
	}
	return ok
}

type routeResponse struct {
	Routes []struct {
		Duration float64 `json:"duration"`
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

func (s *OSRMService) Route(ctx context.Context, a, b Point) (float64, bool) {
	if !s.isAvailable(ctx) {
		return haversineSeconds(a, b), true
	}

	key := cacheKey("route", a, b)
	if v, found := s.cache.Get(key); found {
		return v.(float64), false
	}

	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false", s.cfg.BaseURL, a.Lon, a.Lat, b.Lon, b.Lat)
	var out routeResponse
	err := retry.Do(
		func() error { return s.getJSON(ctx, url, &out) },
		retry.Attempts(2),
		retry.Delay(100*time.Millisecond),
		retry.Context(ctx),
	)
	if err != nil || len(out.Routes) == 0 {
		s.log.Debug().Err(err).Msg("osrm route failed after retries, falling back to haversine")
		return haversineSeconds(a, b), true
	}
	seconds := out.Routes[0].Duration
	s.cache.SetDefault(key, seconds)
	return seconds, false
}

func (s *OSRMService) Distance(ctx context.Context, a, b Point) (float64, bool) {
	if !s.isAvailable(ctx) {
		return HaversineKm(a.Lat, a.Lon, b.Lat, b.Lon), true
	}

	key := cacheKey("dist", a, b)
	if v, found := s.cache.Get(key); found {
		return v.(float64), false
	}

	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false", s.cfg.BaseURL, a.Lon, a.Lat, b.Lon, b.Lat)
	var out routeResponse
	err := retry.Do(
		func() error { return s.getJSON(ctx, url, &out) },
		retry.Attempts(2),
		retry.Delay(100*time.Millisecond),
		retry.Context(ctx),
	)
	if err != nil || len(out.Routes) == 0 {
		return HaversineKm(a.Lat, a.Lon, b.Lat, b.Lon), true
	}
	km := out.Routes[0].Distance / 1000.0
	s.cache.SetDefault(key, km)
	return km, false
}

type tableResponse struct {
	Durations [][]float64 `json:"durations"`
}

func (s *OSRMService) Matrix(ctx context.Context, points []Point) ([][]int, bool) {
	n := len(points)
	if n > MaxOSRMNodes || !s.isAvailable(ctx) {
		return s.haversineMatrix(points), true
	}

	coords := ""
	for i, p := range points {
		if i > 0 {
			coords += ";"
		}
		coords += fmt.Sprintf("%f,%f", p.Lon, p.Lat)
	}
	url := fmt.Sprintf("%s/table/v1/driving/%s?annotations=duration", s.cfg.BaseURL, coords)

	var out tableResponse
	err := retry.Do(
		func() error { return s.getJSON(ctx, url, &out) },
		retry.Attempts(2),
		retry.Delay(150*time.Millisecond),
		retry.Context(ctx),
	)
	if err != nil || len(out.Durations) != n {
		s.log.Warn().Err(err).Int("n", n).Msg("osrm matrix failed, falling back to haversine")
		return s.haversineMatrix(points), true
	}

	minutes := make([][]int, n)
	for i := range minutes {
		minutes[i] = make([]int, n)
		for j := range minutes[i] {
			if i == j {
				continue
			}
			minutes[i][j] = int(math.Round(out.Durations[i][j] / 60.0))
		}
	}
	return minutes, false
}

func (s *OSRMService) haversineMatrix(points []Point) [][]int {
	n := len(points)
	minutes := make([][]int, n)
	for i := range minutes {
		minutes[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			km := HaversineKm(points[i].Lat, points[i].Lon, points[j].Lat, points[j].Lon)
			m := haversineMinutes(km, DefaultMatrixSpeedKmh)
			minutes[i][j] = m
			minutes[j][i] = m
		}
	}
	return minutes
}

func haversineSeconds(a, b Point) float64 {
	km := HaversineKm(a.Lat, a.Lon, b.Lat, b.Lon)
	return float64(haversineMinutes(km, DefaultPairwiseSpeedKmh)) * 60
}

func (s *OSRMService) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("osrm: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func cacheKey(kind string, a, b Point) string {
	return fmt.Sprintf("%s:%.5f,%.5f-%.5f,%.5f", kind, a.Lat, a.Lon, b.Lat, b.Lon)
}
