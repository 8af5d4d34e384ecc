/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package keychain

import (
	"context"
	"net/http"

	"github.com/imroc/req"

	"dji.tools/djilog/pkg/log"
)

// Response is the endpoint answer. The outer array holds one group per
// requested keychain segment.
type Response struct {
	Result struct {
		Data [][]Entry `json:"data"`
	} `json:"result"`
}

// Transport posts a JSON payload and decodes a JSON answer. The
// req-backed implementation is the default; tests substitute their own.
type Transport interface {
	PostJSON(ctx context.Context, url string, headers map[string]string, body interface{}, out interface{}) (int, error)
}

// ReqTransport is the HTTP transport used outside of tests.
type ReqTransport struct{}

func (ReqTransport) PostJSON(ctx context.Context, url string, headers map[string]string, body interface{}, out interface{}) (int, error) {
	r, err := req.Post(url, ctx, req.Header(headers), req.BodyJSON(body))
	if err != nil {
		return 0, err
	}
	status := r.Response().StatusCode
	if status != http.StatusOK {
		return status, nil
	}
	if err := r.ToJSON(out); err != nil {
		return status, err
	}
	return status, nil
}

// Client fetches keychains from the vendor endpoint, consulting the
// cache first when one is attached.
type Client struct {
	Endpoint  string
	ApiKey    string
	Transport Transport
	Cache     *Cache
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		Endpoint:  endpoint,
		ApiKey:    apiKey,
		Transport: ReqTransport{},
	}
}

// Fetch resolves the request into per-segment keychains.
func (c *Client) Fetch(ctx context.Context, request *Request) ([]Keychain, error) {
	if request.SegmentCount() == 0 {
		return nil, nil
	}

	var cacheKey []byte
	if c.Cache != nil {
		var err error
		cacheKey, err = CacheKey(request)
		if err != nil {
			return nil, err
		}
		groups, ok, err := c.Cache.Get(cacheKey)
		if err != nil {
			log.Debug("Keychain cache read failed: %v", err)
		} else if ok {
			log.Debug("Keychain cache hit: segments: %d", len(groups))
			return FromEntries(groups, request.Version)
		}
	}

	log.Debug("Fetching keychains: endpoint: %s segments: %d", c.Endpoint, request.SegmentCount())
	headers := map[string]string{
		"Accept":  "*/*",
		"Api-Key": c.ApiKey,
	}
	var resp Response
	status, err := c.Transport.PostJSON(ctx, c.Endpoint, headers, request, &resp)
	if err != nil {
		return nil, NetworkError{Err: err}
	}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return nil, AuthError{Status: status}
	case status != http.StatusOK:
		return nil, ServiceError{Status: status}
	}

	groups := resp.Result.Data
	if len(groups) != request.SegmentCount() {
		return nil, BadResponseError{
			Reason: "segment count mismatch",
		}
	}

	if c.Cache != nil {
		if err := c.Cache.Put(cacheKey, groups); err != nil {
			log.Debug("Keychain cache write failed: %v", err)
		}
	}
	return FromEntries(groups, request.Version)
}
