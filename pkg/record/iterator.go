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
	"dji.tools/djilog/pkg/keychain"
	"dji.tools/djilog/pkg/layout"
)

// Iterator yields records lazily from the record area. An End record
// is yielded and then terminates the stream regardless of trailing
// bytes.
type Iterator struct {
	framer  *framer
	dec     *Decrypter
	version int
	product layout.ProductType

	diags  []Diagnostic
	peeked *Record
	err    error
	done   bool
}

// NewIterator builds a record iterator. keychains may be nil, in which
// case encrypted bodies stay as ciphertext and only their envelopes
// are walked.
func NewIterator(data []byte, version int, product layout.ProductType, keychains []keychain.Keychain) *Iterator {
	return &Iterator{
		framer:  newFramer(data, version),
		dec:     NewDecrypter(version, keychains),
		version: version,
		product: product,
	}
}

// More reports whether another record is available.
func (it *Iterator) More() bool {
	if it.peeked != nil {
		return true
	}
	if it.done || it.err != nil {
		return false
	}
	it.peeked, it.err = it.fetch()
	return it.peeked != nil
}

// Next returns the next record. After the stream is exhausted it
// returns (nil, nil); a framing failure returns the fatal error.
func (it *Iterator) Next() (*Record, error) {
	if !it.More() {
		return nil, it.err
	}
	rec := it.peeked
	it.peeked = nil
	if rec.Type.IsEnd() {
		it.done = true
	}
	return rec, nil
}

// Diagnostics returns all non-fatal conditions met so far.
func (it *Iterator) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, 0, len(it.framer.diags)+len(it.diags))
	out = append(out, it.framer.diags...)
	out = append(out, it.diags...)
	return out
}

func (it *Iterator) fetch() (*Record, error) {
	raw, err := it.framer.next()
	if err != nil {
		return nil, err
	}
	if raw == nil {
		it.done = true
		return nil, nil
	}

	rec := &Record{Type: raw.typ, Offset: raw.offset}
	plain, diag := it.dec.Decrypt(raw.typ, raw.body, raw.offset)
	rec.Raw = plain
	if diag != nil {
		it.diags = append(it.diags, *diag)
	} else {
		decodeBody(rec, it.version, it.product)
	}
	if raw.typ == TypeKeyStorageRecover {
		it.dec.Advance()
	}
	return rec, nil
}
