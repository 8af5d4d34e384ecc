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

package record

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"dji.tools/djilog/pkg/keychain"
)

// Decrypter holds the per-segment keychains and the index of the
// segment currently active. KeyStorageRecover records advance the
// index; it never wraps.
type Decrypter struct {
	version   int
	keychains []keychain.Keychain
	segment   int
}

func NewDecrypter(version int, keychains []keychain.Keychain) *Decrypter {
	return &Decrypter{version: version, keychains: keychains}
}

// Advance moves to the next keychain segment.
func (d *Decrypter) Advance() {
	d.segment++
}

// Decrypt returns the plaintext body of a record, or the input
// unchanged plus a diagnostic when no key applies or the ciphertext
// does not decrypt cleanly.
func (d *Decrypter) Decrypt(t Type, body []byte, offset int) ([]byte, *Diagnostic) {
	if d.version < 13 || t.Plaintext() {
		return body, nil
	}
	if d.keychains == nil {
		return body, nil
	}
	if d.segment >= len(d.keychains) {
		return body, &Diagnostic{
			Kind:       MissingKey,
			Offset:     offset,
			RecordType: t,
			Detail:     fmt.Sprintf("no keychain segment %d", d.segment),
		}
	}
	key, ok := d.keychains[d.segment][uint8(t)]
	if !ok {
		return body, &Diagnostic{
			Kind:       MissingKey,
			Offset:     offset,
			RecordType: t,
			Detail:     fmt.Sprintf("no key for record type in segment %d", d.segment),
		}
	}
	plain, err := decryptCBC(body, key)
	if err != nil {
		return body, &Diagnostic{
			Kind:       DecryptionFailed,
			Offset:     offset,
			RecordType: t,
			Detail:     err.Error(),
		}
	}
	return plain, nil
}

func decryptCBC(body []byte, key keychain.AESKey) ([]byte, error) {
	if len(body) == 0 || len(body)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext length %d not a block multiple", len(body))
	}
	block, err := aes.NewCipher(key.Key[:])
	if err != nil {
		return nil, err
	}
	plain := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, key.IV[:]).CryptBlocks(plain, body)
	return pkcs7Unpad(plain)
}

func pkcs7Unpad(data []byte) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > aes.BlockSize || n > len(data) {
		return nil, fmt.Errorf("bad padding length %d", n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("bad padding byte %d", b)
		}
	}
	return data[:len(data)-n], nil
}
