package data

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vizterm/internal/logging"
)

// Loader fetches datasets from URLs or local files.
type Loader struct {
	client          *http.Client
	timeout         time.Duration
	baseTemperature float64
	log             logging.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) { l.client = c }
}

// WithTimeout bounds each load; zero leaves loads unbounded.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) { l.timeout = d }
}

// WithBaseTemperature sets the base temperature used for heatmap CSV files.
func WithBaseTemperature(t float64) Option {
	return func(l *Loader) { l.baseTemperature = t }
}

// WithLogger attaches a logger.
func WithLogger(log logging.Logger) Option {
	return func(l *Loader) { l.log = log }
}

// NewLoader returns a Loader with the given options applied.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{client: http.DefaultClient, log: logging.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// IsRemote reports whether source is fetched over HTTP.
func IsRemote(source string) bool {
	s := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Load reads source, which may be an http(s) URL or a local path. All
// failures are returned as *LoadError.
func (l *Loader) Load(ctx context.Context, source string, kind Kind) (*Dataset, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}
	start := time.Now()
	var (
		ds  *Dataset
		err error
	)
	if IsRemote(source) {
		ds, err = l.fetch(ctx, source, kind)
	} else {
		ds, err = l.readFile(source, kind)
	}
	if err != nil {
		l.log.Warn("dataset load failed", logging.String("source", source), logging.Err(err))
		return nil, err
	}
	l.log.Info("dataset loaded",
		logging.String("source", source),
		logging.String("kind", ds.Kind.String()),
		logging.Int("records", ds.Len()),
		logging.Duration("took", time.Since(start)),
	)
	return ds, nil
}

func (l *Loader) fetch(ctx context.Context, url string, kind Kind) (*Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, loadErr(url, "fetch", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, loadErr(url, "fetch", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, loadErr(url, "status", fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status))
	}
	return Parse(resp.Body, kind, url)
}

func (l *Loader) readFile(path string, kind Kind) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, loadErr(path, "read", err)
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ParseCSV(f, kind, l.baseTemperature, path)
	}
	return Parse(f, kind, path)
}
