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
	"encoding/base64"

	"dji.tools/djilog/pkg/layout"
)

// CipherText is one AES-wrapped key descriptor in the request payload.
type CipherText struct {
	Version       int          `json:"version"`
	FeaturePoint  FeaturePoint `json:"feature_point"`
	AESCiphertext string       `json:"aes_ciphertext"`
}

// Request is the payload posted to the keychain endpoint. It is a pure
// restatement of the log's encryption info area and never depends on
// record contents.
type Request struct {
	Version     int            `json:"version"`
	Department  *int           `json:"department,omitempty"`
	FileVersion *int           `json:"file_version,omitempty"`
	Keychains   [][]CipherText `json:"keychains"`
}

// RequestOptions carries account-level passthrough fields.
type RequestOptions struct {
	Department  *int
	FileVersion *int
}

// NewRequest builds the endpoint request for a log from its decoded
// encryption info area.
func NewRequest(version int, segments []layout.AuxiliarySegment, opts RequestOptions) *Request {
	r := &Request{
		Version:     version,
		Department:  opts.Department,
		FileVersion: opts.FileVersion,
		Keychains:   make([][]CipherText, 0, len(segments)),
	}
	for _, seg := range segments {
		group := make([]CipherText, 0, len(seg.Entries))
		for _, entry := range seg.Entries {
			group = append(group, CipherText{
				Version:       int(entry.Version),
				FeaturePoint:  FeaturePoint(entry.FeaturePoint),
				AESCiphertext: base64.StdEncoding.EncodeToString(entry.Data),
			})
		}
		r.Keychains = append(r.Keychains, group)
	}
	return r
}

// SegmentCount returns how many keychain segments the request covers.
func (r *Request) SegmentCount() int {
	return len(r.Keychains)
}
