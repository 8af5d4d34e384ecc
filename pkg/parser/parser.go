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

package parser

import (
	"context"

	"dji.tools/djilog/pkg/frame"
	"dji.tools/djilog/pkg/keychain"
	"dji.tools/djilog/pkg/layout"
	"dji.tools/djilog/pkg/log"
	"dji.tools/djilog/pkg/record"
)

// Parser is the top-level handle over one log buffer. Construction
// decodes the prefix and the details area eagerly; records and frames
// are pulled lazily. The buffer is borrowed and must not be mutated
// while the parser or any of its iterators is in use.
type Parser struct {
	data    []byte
	prefix  *layout.Prefix
	details layout.Details

	// Client used by DecryptAPIKey. Replaced by the CLI to attach
	// the on-disk cache; defaults are filled in on first fetch.
	Client *keychain.Client

	fetched     []keychain.Keychain
	fetchedOnce bool

	opts keychain.RequestOptions
}

// FromBytes builds a parser over the given log bytes.
func FromBytes(data []byte) (*Parser, error) {
	prefix, err := layout.DecodePrefix(data)
	if err != nil {
		return nil, err
	}
	log.Debug("Log container: version: %d epoch: %s records: %d..%d",
		prefix.Version, prefix.Epoch(), prefix.RecordsOffset, prefix.RecordsEndOffset)

	details := layout.DecodeDetails(data[prefix.DetailsOffset:], prefix.Version)
	return &Parser{data: data, prefix: prefix, details: details}, nil
}

// SetRequestOptions sets the optional department and file version
// fields sent with keychain requests.
func (p *Parser) SetRequestOptions(opts keychain.RequestOptions) {
	p.opts = opts
}

func (p *Parser) Version() int {
	return p.prefix.Version
}

func (p *Parser) Epoch() layout.Epoch {
	return p.prefix.Epoch()
}

func (p *Parser) Details() layout.Details {
	return p.details
}

// KeychainRequest builds the endpoint request for this log. Logs
// before version 13 have no encryption info area and return
// NoEncryptionError.
func (p *Parser) KeychainRequest() (*keychain.Request, error) {
	if p.Epoch() != layout.EpochV13Plus {
		return nil, NoEncryptionError{Version: p.prefix.Version}
	}
	area := p.data[p.prefix.EncryptionInfoOffset : p.prefix.EncryptionInfoOffset+uint64(p.prefix.EncryptionInfoLength)]
	segments, err := layout.DecodeAuxiliary(area)
	if err != nil {
		return nil, err
	}
	return keychain.NewRequest(p.prefix.Version, segments, p.opts), nil
}

// Records returns a lazy iterator over the record area. The context
// is only consulted when the decrypt method fetches keychains.
func (p *Parser) Records(ctx context.Context, method DecryptMethod) (*record.Iterator, error) {
	keychains, err := method.keychains(ctx, p)
	if err != nil {
		return nil, err
	}
	area := p.data[p.prefix.RecordsOffset:p.prefix.RecordsEndOffset]
	return record.NewIterator(area, p.prefix.Version, p.details.ProductType, keychains), nil
}

// Frames returns a lazy iterator over normalized frames.
func (p *Parser) Frames(ctx context.Context, method DecryptMethod) (*frame.Iterator, error) {
	records, err := p.Records(ctx, method)
	if err != nil {
		return nil, err
	}
	return frame.NewIterator(records, p.details), nil
}

// fetchKeychains resolves keychains through the endpoint once and
// memoizes the result for the parser's lifetime.
func (p *Parser) fetchKeychains(ctx context.Context, apiKey string) ([]keychain.Keychain, error) {
	if p.fetchedOnce {
		return p.fetched, nil
	}
	request, err := p.KeychainRequest()
	if err != nil {
		return nil, err
	}
	client := p.Client
	if client == nil {
		client = keychain.NewClient(defaultEndpoint, apiKey)
	}
	if client.ApiKey == "" {
		client.ApiKey = apiKey
	}
	keychains, err := client.Fetch(ctx, request)
	if err != nil {
		return nil, err
	}
	p.fetched = keychains
	p.fetchedOnce = true
	return keychains, nil
}
