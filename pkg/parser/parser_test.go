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
	"bytes"
	"context"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/binary"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"dji.tools/djilog/pkg/keychain"
	"dji.tools/djilog/pkg/layout"
	"dji.tools/djilog/pkg/record"
)

const testDetailsLen = 500

func buildContainer(version int, records, encInfo []byte) []byte {
	var buf bytes.Buffer
	header := make([]byte, 100)
	copy(header, layout.Magic)
	le := binary.LittleEndian
	le.PutUint16(header[4:], uint16(version))
	detailsOffset := uint64(100)
	recordsOffset := detailsOffset + testDetailsLen
	recordsEnd := recordsOffset + uint64(len(records))
	le.PutUint64(header[8:], detailsOffset)
	le.PutUint64(header[16:], recordsOffset)
	le.PutUint64(header[24:], recordsEnd)
	if encInfo != nil {
		le.PutUint64(header[32:], recordsEnd)
		le.PutUint32(header[40:], uint32(len(encInfo)))
	}
	buf.Write(header)
	buf.Write(make([]byte, testDetailsLen))
	buf.Write(records)
	buf.Write(encInfo)
	return buf.Bytes()
}

func recordEnvelope(version int, typ record.Type, body []byte) []byte {
	out := []byte{byte(typ)}
	if version >= 13 {
		out = append(out, byte(len(body)), byte(len(body)>>8))
	} else {
		out = append(out, byte(len(body)))
	}
	out = append(out, body...)
	return append(out, 0xFF)
}

func drainTypes(t *testing.T, it *record.Iterator) []record.Type {
	var types []record.Type
	for it.More() {
		rec, err := it.Next()
		assert.Nil(t, err)
		types = append(types, rec.Type)
	}
	return types
}

func TestFromBytes(t *testing.T) {
	records := recordEnvelope(6, record.TypeOSD, make([]byte, 20))
	records = append(records, recordEnvelope(6, record.TypeEnd, []byte{0x00})...)
	data := buildContainer(6, records, nil)

	p, err := FromBytes(data)
	assert.Nil(t, err)
	assert.Equal(t, 6, p.Version())
	assert.Equal(t, layout.EpochV6_12, p.Epoch())

	it, err := p.Records(context.Background(), DecryptNone())
	assert.Nil(t, err)
	types := drainTypes(t, it)
	assert.Equal(t, []record.Type{record.TypeOSD, record.TypeEnd}, types)
}

func TestFromBytesBadPrefix(t *testing.T) {
	_, err := FromBytes(make([]byte, 400))
	assert.IsType(t, layout.MalformedPrefixError{}, err)
}

func TestKeychainRequestBeforeV13(t *testing.T) {
	data := buildContainer(6, recordEnvelope(6, record.TypeEnd, []byte{0x00}), nil)
	p, err := FromBytes(data)
	assert.Nil(t, err)
	_, err = p.KeychainRequest()
	assert.Equal(t, NoEncryptionError{Version: 6}, err)
}

func TestDecryptAPIKeyIndifferentBeforeV13(t *testing.T) {
	records := recordEnvelope(6, record.TypeOSD, make([]byte, 20))
	records = append(records, recordEnvelope(6, record.TypeEnd, []byte{0x00})...)
	data := buildContainer(6, records, nil)

	p, err := FromBytes(data)
	assert.Nil(t, err)

	plain, err := p.Records(context.Background(), DecryptNone())
	assert.Nil(t, err)
	keyed, err := p.Records(context.Background(), DecryptAPIKey("irrelevant"))
	assert.Nil(t, err)

	assert.Equal(t, drainTypes(t, plain), drainTypes(t, keyed))
}

type stubTransport struct {
	status   int
	response keychain.Response
	calls    int
}

func (s *stubTransport) PostJSON(ctx context.Context, url string, headers map[string]string, body interface{}, out interface{}) (int, error) {
	s.calls++
	*out.(*keychain.Response) = s.response
	return s.status, nil
}

func buildEncryptedContainer(t *testing.T, key keychain.AESKey) []byte {
	plain := make([]byte, 20)
	plain[0] = 0x42
	pad := aes.BlockSize - len(plain)%aes.BlockSize
	padded := append(append([]byte{}, plain...), bytes.Repeat([]byte{byte(pad)}, pad)...)
	block, err := aes.NewCipher(key.Key[:])
	assert.Nil(t, err)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, key.IV[:]).CryptBlocks(ciphertext, padded)

	records := recordEnvelope(13, record.TypeOSD, ciphertext)
	records = append(records, recordEnvelope(13, record.TypeEnd, []byte{0x00})...)

	var encInfo bytes.Buffer
	le := binary.LittleEndian
	binary.Write(&encInfo, le, uint16(1)) // segments
	binary.Write(&encInfo, le, uint16(1)) // entries
	binary.Write(&encInfo, le, uint16(keychain.FeatureBase))
	binary.Write(&encInfo, le, uint16(1))
	binary.Write(&encInfo, le, uint16(4))
	encInfo.Write([]byte{0x01, 0x02, 0x03, 0x04})

	return buildContainer(13, records, encInfo.Bytes())
}

func TestRecordsWithAPIKey(t *testing.T) {
	var key keychain.AESKey
	for i := range key.Key {
		key.Key[i] = 0x5A
		key.IV[i] = 0xA5
	}
	data := buildEncryptedContainer(t, key)

	p, err := FromBytes(data)
	assert.Nil(t, err)

	request, err := p.KeychainRequest()
	assert.Nil(t, err)
	assert.Equal(t, 1, request.SegmentCount())

	var response keychain.Response
	response.Result.Data = [][]keychain.Entry{
		{{
			FeaturePoint: keychain.FeatureBase,
			AESKey:       base64.StdEncoding.EncodeToString(key.Key[:]),
			AESIV:        base64.StdEncoding.EncodeToString(key.IV[:]),
		}},
	}
	transport := &stubTransport{status: http.StatusOK, response: response}
	p.Client = &keychain.Client{Endpoint: "http://example", Transport: transport}

	it, err := p.Records(context.Background(), DecryptAPIKey("secret"))
	assert.Nil(t, err)
	rec, err := it.Next()
	assert.Nil(t, err)
	assert.Equal(t, record.TypeOSD, rec.Type)
	assert.Equal(t, byte(0x42), rec.Raw[0])
	assert.Empty(t, it.Diagnostics())
	assert.Equal(t, "secret", p.Client.ApiKey)

	// Keychains are fetched once per parser.
	_, err = p.Records(context.Background(), DecryptAPIKey("secret"))
	assert.Nil(t, err)
	assert.Equal(t, 1, transport.calls)
}

func TestFramesFromContainer(t *testing.T) {
	records := recordEnvelope(6, record.TypeOSD, make([]byte, 40))
	records = append(records, recordEnvelope(6, record.TypeEnd, []byte{0x00})...)
	data := buildContainer(6, records, nil)

	p, err := FromBytes(data)
	assert.Nil(t, err)

	it, err := p.Frames(context.Background(), DecryptNone())
	assert.Nil(t, err)
	count := 0
	for it.More() {
		_, err := it.Next()
		assert.Nil(t, err)
		count++
	}
	assert.Equal(t, 1, count)
}
