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

	"dji.tools/djilog/pkg/config"
	"dji.tools/djilog/pkg/keychain"
	"dji.tools/djilog/pkg/layout"
)

const defaultEndpoint = config.DefaultKeychainEndpoint

// DecryptMethod selects how encrypted record bodies are resolved when
// iterating a version 13+ log. Logs before version 13 ignore the
// method entirely.
type DecryptMethod interface {
	keychains(ctx context.Context, p *Parser) ([]keychain.Keychain, error)
}

type decryptNone struct{}

func (decryptNone) keychains(context.Context, *Parser) ([]keychain.Keychain, error) {
	return nil, nil
}

// DecryptNone leaves encrypted bodies as ciphertext; only their
// envelopes are walked.
func DecryptNone() DecryptMethod {
	return decryptNone{}
}

type decryptKeychains struct {
	ks []keychain.Keychain
}

func (m decryptKeychains) keychains(context.Context, *Parser) ([]keychain.Keychain, error) {
	return m.ks, nil
}

// DecryptKeychains uses caller-provided keychains, one per segment.
func DecryptKeychains(ks []keychain.Keychain) DecryptMethod {
	return decryptKeychains{ks: ks}
}

type decryptAPIKey struct {
	key string
}

func (m decryptAPIKey) keychains(ctx context.Context, p *Parser) ([]keychain.Keychain, error) {
	if p.Epoch() != layout.EpochV13Plus {
		return nil, nil
	}
	return p.fetchKeychains(ctx, m.key)
}

// DecryptAPIKey fetches keychains from the vendor endpoint on the
// first iterator construction and memoizes them on the parser.
func DecryptAPIKey(key string) DecryptMethod {
	return decryptAPIKey{key: key}
}
