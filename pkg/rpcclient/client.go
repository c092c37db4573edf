/*
Package rpcclient implements a JSON-RPC 2.0 client for Neo N3 nodes.

Only the calls needed to build, test-invoke and relay transactions are
provided, Client satisfies actor.RPCActor, so it can be used with both
actor.Builder and actor.Actor:

	c, err := rpcclient.New(ctx, "http://localhost:10332", rpcclient.Options{})
	...
	a, err := actor.NewSimple(c, acc)
*/
package rpcclient

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultDialTimeout    = 4 * time.Second
	defaultRequestTimeout = 4 * time.Second
)

// Options are optional client settings.
type Options struct {
	// DialTimeout and RequestTimeout are 4 seconds if not set.
	DialTimeout    time.Duration
	RequestTimeout time.Duration
	// MaxConnsPerHost limits the number of connections, zero means no limit.
	MaxConnsPerHost int
	// RequestsPerSecond limits the request rate, zero means no limit. Burst
	// is the number of requests allowed at once, 1 if not positive.
	RequestsPerSecond float64
	Burst             int
	// Logger receives debug messages about requests.
	Logger *zap.Logger
	// Metrics registers request counters and timings if set.
	Metrics prometheus.Registerer
}

// Client is a JSON-RPC client of a single node. It's safe for concurrent use.
type Client struct {
	ctx      context.Context
	endpoint *url.URL
	http     *http.Client
	log      *zap.Logger
	limiter  *rate.Limiter
	metrics  *metrics
	lastID   atomic.Uint64
}

// New creates a client for the HTTP(S) endpoint. ctx bounds every request
// made by the client, cancelling it aborts all of them.
func New(ctx context.Context, endpoint string, opts Options) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported endpoint scheme %q", u.Scheme)
	}
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaultDialTimeout
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}

	c := &Client{
		ctx:      ctx,
		endpoint: u,
		log:      opts.Logger,
		http: &http.Client{
			Timeout: opts.RequestTimeout,
			Transport: &http.Transport{
				DialContext:     (&net.Dialer{Timeout: opts.DialTimeout}).DialContext,
				MaxConnsPerHost: opts.MaxConnsPerHost,
			},
		},
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	if opts.Metrics != nil {
		if c.metrics, err = newMetrics(opts.Metrics); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return c, nil
}

// Endpoint returns the node URL.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Close closes idle connections.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}
