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
	"io/ioutil"

	"dji.tools/djilog/pkg/config"
	"dji.tools/djilog/pkg/keychain"
	"dji.tools/djilog/pkg/log"
)

// FromFile reads a log and wires the keychain client from the given
// configuration: endpoint, api key, request passthrough fields and
// the on-disk cache. A cache open failure is logged and skipped so
// offline parsing keeps working.
func FromFile(path string, cfg *config.Config) (*Parser, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := FromBytes(data)
	if err != nil {
		return nil, err
	}

	kc := cfg.KeychainConfig
	client := keychain.NewClient(kc.Endpoint, kc.ApiKey)
	if kc.CachePath != "" {
		cache, err := keychain.NewCache(kc.CachePath)
		if err != nil {
			log.Warning("Keychain cache unavailable: %s: %v", kc.CachePath, err)
		} else {
			client.Cache = cache
		}
	}
	p.Client = client
	p.SetRequestOptions(keychain.RequestOptions{
		Department:  kc.Department,
		FileVersion: kc.FileVersion,
	})
	return p, nil
}

// Close releases resources held by the wired keychain client.
func (p *Parser) Close() {
	if p.Client != nil && p.Client.Cache != nil {
		p.Client.Cache.Close()
	}
}
