// Package fetch contains the http utilities shared by the remote data sources.
package fetch

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"github.com/phuslu/log"
)

// TTL is the default lifetime of a cached response.
const TTL = 60 * time.Second

// Timeout bounds every remote call.
const Timeout = 20 * time.Second

// diskCache implements a simple disk cache for HTTP GET responses.
type diskCache struct {
	base http.RoundTripper
	dir  string
	ttl  time.Duration
	now  func() time.Time
}

// key returns the cache file name of a request.
func (c *diskCache) key(req *http.Request) string {
	key := fmt.Sprintf("%s %s", req.Method, req.URL.String())
	return fmt.Sprintf("hud-%x", sha1.Sum([]byte(key)))
}

// RoundTrip implements the http.RoundTripper interface. It checks for a fresh
// cached response on disk first. Otherwise it proceeds with the actual HTTP
// request and caches the new response if it's successful.
func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	if req.Method != http.MethodGet {
		return c.base.RoundTrip(req)
	}
	key := c.key(req)

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		log.Debug().Str("host", req.URL.Host).Str("path", req.URL.Path).Msg("cache hit")
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("method", req.Method).Str("host", req.URL.Host).Str("path", req.URL.Path).Str("status", resp.Status).Msg("http")
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache

	if err := c.put(key, resp); err != nil {
		log.Warn().Err(err).Msg("cache write (ignored)")
	}
	return resp, nil
}

// get retrieves a cached response from disk, as long as it is younger than the ttl.
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(c.dir, key)
	info, err := os.Stat(file)
	if err != nil {
		return nil, err
	}
	if age := c.now().Sub(info.ModTime()); age > c.ttl {
		return nil, fmt.Errorf("cache entry expired %v ago", age-c.ttl)
	}
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache.
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0o644)
}

// NewClient returns an http.Client bounded by Timeout, whose GET responses
// are cached in dir for ttl.
//
// An empty dir uses the system temporary directory, a zero ttl disables the cache.
func NewClient(dir string, ttl time.Duration) *http.Client {
	client := &http.Client{Timeout: Timeout}
	if ttl <= 0 {
		return client
	}
	if dir == "" {
		dir = os.TempDir()
	}
	client.Transport = &diskCache{base: http.DefaultTransport, dir: dir, ttl: ttl, now: time.Now}
	return client
}
