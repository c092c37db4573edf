package rpcclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/R3E-Network/NeoRust-sub000/pkg/neorpc"
	"go.uber.org/zap"
)

var errNoResult = errors.New("no result returned")

// performRequest calls the method and unmarshals its result into v. Errors
// returned by the node are *neorpc.Error.
func (c *Client) performRequest(method string, params []any, v any) error {
	if params == nil {
		// Nodes reject requests without params.
		params = []any{}
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(c.ctx); err != nil {
			return err
		}
	}
	req := &neorpc.Request{
		JSONRPC: neorpc.JSONRPCVersion,
		ID:      c.lastID.Inc(),
		Method:  method,
		Params:  params,
	}

	start := time.Now()
	resp, err := c.post(req)
	took := time.Since(start)
	if err == nil && resp.Error != nil {
		err = resp.Error
	}
	c.metrics.observe(method, took, err == nil)
	c.log.Debug("rpc request",
		zap.String("method", method),
		zap.Uint64("id", req.ID),
		zap.Duration("took", took),
		zap.Error(err))

	switch {
	case err != nil:
		return err
	case resp.Result == nil:
		return errNoResult
	}
	return json.Unmarshal(resp.Result, v)
}

func (c *Client) post(r *neorpc.Request) (*neorpc.Response, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	// Nodes can return a JSON-RPC error along with non-200 status, it's
	// more specific than the status.
	resp := new(neorpc.Response)
	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		if httpResp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("HTTP %d/%s", httpResp.StatusCode, http.StatusText(httpResp.StatusCode))
		}
		return nil, fmt.Errorf("JSON decoding: %w", err)
	}
	return resp, nil
}
