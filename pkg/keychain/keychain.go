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
	"fmt"
)

// AESKey is one AES-128 key with its initialization vector.
type AESKey struct {
	Key [16]byte
	IV  [16]byte
}

// Keychain maps record type codes to the key that decrypts them.
// One keychain covers one segment of the records area.
type Keychain map[uint8]AESKey

// Entry is one key as it appears in the endpoint response.
type Entry struct {
	FeaturePoint FeaturePoint `json:"feature_point"`
	AESKey       string       `json:"aes_key"`
	AESIV        string       `json:"aes_iv"`
}

// FromEntries expands response entry groups into per-segment keychains.
// Each entry is expanded to every record type code assigned to its
// feature point for the given log version.
func FromEntries(groups [][]Entry, version int) ([]Keychain, error) {
	keychains := make([]Keychain, 0, len(groups))
	for _, group := range groups {
		kc := Keychain{}
		for _, entry := range group {
			key, err := decodeKeyPart(entry.AESKey, "aes_key")
			if err != nil {
				return nil, err
			}
			iv, err := decodeKeyPart(entry.AESIV, "aes_iv")
			if err != nil {
				return nil, err
			}
			aes := AESKey{Key: key, IV: iv}
			for _, code := range RecordTypesForFeaturePoint(entry.FeaturePoint, version) {
				kc[code] = aes
			}
		}
		keychains = append(keychains, kc)
	}
	return keychains, nil
}

func decodeKeyPart(encoded, field string) ([16]byte, error) {
	var out [16]byte
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return out, BadResponseError{Reason: fmt.Sprintf("%s is not base64: %v", field, err)}
	}
	if len(raw) != len(out) {
		return out, BadResponseError{Reason: fmt.Sprintf("%s is %d bytes, want %d", field, len(raw), len(out))}
	}
	copy(out[:], raw)
	return out, nil
}
