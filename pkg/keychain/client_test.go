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
	"encoding/base64"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTransport struct {
	status   int
	err      error
	response *Response
	calls    int
	apiKey   string
}

func (f *fakeTransport) PostJSON(ctx context.Context, url string, headers map[string]string, body interface{}, out interface{}) (int, error) {
	f.calls++
	f.apiKey = headers["Api-Key"]
	if f.err != nil {
		return 0, f.err
	}
	if f.response != nil {
		*out.(*Response) = *f.response
	}
	return f.status, nil
}

func b64Key(fill byte) string {
	raw := make([]byte, 16)
	for i := range raw {
		raw[i] = fill
	}
	return base64.StdEncoding.EncodeToString(raw)
}

func singleSegmentResponse() *Response {
	var resp Response
	resp.Result.Data = [][]Entry{
		{{FeaturePoint: FeatureBase, AESKey: b64Key(0xAA), AESIV: b64Key(0xBB)}},
	}
	return &resp
}

func singleSegmentRequest() *Request {
	return &Request{
		Version: 13,
		Keychains: [][]CipherText{
			{{Version: 1, FeaturePoint: FeatureBase, AESCiphertext: "AQI="}},
		},
	}
}

func TestClientFetch(t *testing.T) {
	transport := &fakeTransport{status: http.StatusOK, response: singleSegmentResponse()}
	c := &Client{Endpoint: "http://example", ApiKey: "key", Transport: transport}

	keychains, err := c.Fetch(context.Background(), singleSegmentRequest())
	assert.Nil(t, err)
	assert.Equal(t, "key", transport.apiKey)
	assert.Len(t, keychains, 1)

	var expectKey, expectIV [16]byte
	for i := range expectKey {
		expectKey[i] = 0xAA
		expectIV[i] = 0xBB
	}
	aes, ok := keychains[0][1]
	assert.True(t, ok)
	assert.Equal(t, expectKey, aes.Key)
	assert.Equal(t, expectIV, aes.IV)
}

func TestClientFetchEmptyRequest(t *testing.T) {
	transport := &fakeTransport{status: http.StatusOK}
	c := &Client{Transport: transport}
	keychains, err := c.Fetch(context.Background(), &Request{Version: 13})
	assert.Nil(t, err)
	assert.Nil(t, keychains)
	assert.Equal(t, 0, transport.calls)
}

func TestClientFetchAuthError(t *testing.T) {
	transport := &fakeTransport{status: http.StatusUnauthorized}
	c := &Client{Transport: transport}
	_, err := c.Fetch(context.Background(), singleSegmentRequest())
	assert.Equal(t, AuthError{Status: http.StatusUnauthorized}, err)
}

func TestClientFetchServiceError(t *testing.T) {
	transport := &fakeTransport{status: http.StatusBadGateway}
	c := &Client{Transport: transport}
	_, err := c.Fetch(context.Background(), singleSegmentRequest())
	assert.Equal(t, ServiceError{Status: http.StatusBadGateway}, err)
}

func TestClientFetchNetworkError(t *testing.T) {
	transport := &fakeTransport{err: errors.New("refused")}
	c := &Client{Transport: transport}
	_, err := c.Fetch(context.Background(), singleSegmentRequest())
	assert.IsType(t, NetworkError{}, err)
}

func TestClientFetchSegmentMismatch(t *testing.T) {
	var resp Response
	resp.Result.Data = [][]Entry{}
	transport := &fakeTransport{status: http.StatusOK, response: &resp}
	c := &Client{Transport: transport}
	_, err := c.Fetch(context.Background(), singleSegmentRequest())
	assert.IsType(t, BadResponseError{}, err)
}

func TestClientFetchUsesCache(t *testing.T) {
	cache, err := NewCache(filepath.Join(t.TempDir(), "keychains.db"))
	assert.Nil(t, err)
	defer cache.Close()

	transport := &fakeTransport{status: http.StatusOK, response: singleSegmentResponse()}
	c := &Client{Endpoint: "http://example", Transport: transport, Cache: cache}

	first, err := c.Fetch(context.Background(), singleSegmentRequest())
	assert.Nil(t, err)
	assert.Equal(t, 1, transport.calls)

	second, err := c.Fetch(context.Background(), singleSegmentRequest())
	assert.Nil(t, err)
	assert.Equal(t, 1, transport.calls)
	assert.Equal(t, first, second)
}

func TestFromEntriesBadKey(t *testing.T) {
	groups := [][]Entry{
		{{FeaturePoint: FeatureBase, AESKey: "not base64!", AESIV: b64Key(0x01)}},
	}
	_, err := FromEntries(groups, 13)
	assert.IsType(t, BadResponseError{}, err)
}

func TestFromEntriesShortKey(t *testing.T) {
	groups := [][]Entry{
		{{FeaturePoint: FeatureBase, AESKey: base64.StdEncoding.EncodeToString([]byte{1, 2, 3}), AESIV: b64Key(0x01)}},
	}
	_, err := FromEntries(groups, 13)
	assert.IsType(t, BadResponseError{}, err)
}

func TestFromEntriesExpandsFeaturePoint(t *testing.T) {
	groups := [][]Entry{
		{{FeaturePoint: FeatureVision, AESKey: b64Key(0x01), AESIV: b64Key(0x02)}},
	}
	keychains, err := FromEntries(groups, 13)
	assert.Nil(t, err)
	assert.Len(t, keychains, 1)
	_, has17 := keychains[0][17]
	_, has18 := keychains[0][18]
	_, has1 := keychains[0][1]
	assert.True(t, has17)
	assert.True(t, has18)
	assert.False(t, has1)
}
