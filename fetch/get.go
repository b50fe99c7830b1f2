package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Get performs an HTTP GET request and returns the response body.
// Extra headers are set as given.
func Get(ctx context.Context, client *http.Client, addr string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// JSON performs an HTTP GET request to the given address and unmarshals the
// JSON response body into the provided data structure.
func JSON(ctx context.Context, client *http.Client, addr string, data any) error {
	body, err := Get(ctx, client, addr, nil)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, data)
}
