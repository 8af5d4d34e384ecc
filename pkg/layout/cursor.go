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

package layout

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Cursor is a positioned little-endian reader over a byte slice.
// Reads past the end of the data return zero values and set the short
// flag instead of failing, so a truncated body decodes the fields it
// has and zero-fills the rest.
type Cursor struct {
	data  []byte
	off   int
	short bool
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

func (c *Cursor) take(n int) []byte {
	if c.off+n > len(c.data) {
		c.short = true
		out := make([]byte, n)
		copy(out, c.data[c.off:])
		c.off = len(c.data)
		return out
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b
}

func (c *Cursor) U8() uint8 {
	return c.take(1)[0]
}

func (c *Cursor) U16() uint16 {
	return binary.LittleEndian.Uint16(c.take(2))
}

func (c *Cursor) U32() uint32 {
	return binary.LittleEndian.Uint32(c.take(4))
}

func (c *Cursor) U64() uint64 {
	return binary.LittleEndian.Uint64(c.take(8))
}

func (c *Cursor) I8() int8 {
	return int8(c.U8())
}

func (c *Cursor) I16() int16 {
	return int16(c.U16())
}

func (c *Cursor) I32() int32 {
	return int32(c.U32())
}

func (c *Cursor) I64() int64 {
	return int64(c.U64())
}

func (c *Cursor) F32() float32 {
	return math.Float32frombits(c.U32())
}

func (c *Cursor) F64() float64 {
	return math.Float64frombits(c.U64())
}

// Bytes returns a copy of the next n bytes, zero-padded if short.
func (c *Cursor) Bytes(n int) []byte {
	b := c.take(n)
	out := make([]byte, n)
	copy(out, b)
	return out
}

// FixedString reads an n-byte field holding a NUL-terminated string.
func (c *Cursor) FixedString(n int) string {
	b := c.take(n)
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

func (c *Cursor) Skip(n int) {
	c.take(n)
}

// Seek moves the read position to an absolute offset. Seeking past the
// end clamps to the end and sets the short flag.
func (c *Cursor) Seek(off int) {
	if off > len(c.data) {
		c.short = true
		off = len(c.data)
	}
	c.off = off
}

func (c *Cursor) Pos() int {
	return c.off
}

func (c *Cursor) Remaining() int {
	return len(c.data) - c.off
}

// Short reports whether any read ran past the end of the data.
func (c *Cursor) Short() bool {
	return c.short
}
