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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type detailsBuilder struct {
	buf bytes.Buffer
}

func (b *detailsBuilder) str(s string, n int) *detailsBuilder {
	field := make([]byte, n)
	copy(field, s)
	b.buf.Write(field)
	return b
}

func (b *detailsBuilder) raw(data []byte, n int) *detailsBuilder {
	field := make([]byte, n)
	copy(field, data)
	b.buf.Write(field)
	return b
}

func (b *detailsBuilder) u8(v uint8) *detailsBuilder {
	b.buf.WriteByte(v)
	return b
}

func (b *detailsBuilder) i32(v int32) *detailsBuilder {
	binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func (b *detailsBuilder) i64(v int64) *detailsBuilder {
	binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func (b *detailsBuilder) f32(v float32) *detailsBuilder {
	binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func (b *detailsBuilder) f64(v float64) *detailsBuilder {
	binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func detailsHead() *detailsBuilder {
	b := &detailsBuilder{}
	b.str("", 20).str("Main St", 20).str("Shenzhen", 20).str("Nanshan", 20)
	b.u8(1).u8(0).u8(1)
	b.i32(4200).i32(7)
	b.i64(1478509200123)
	b.f64(113.95).f64(22.53)
	b.f32(1523.5)
	b.i32(754000)
	b.f32(120.5).f32(15.2).f32(5.1)
	b.i32(3).i64(95)
	for i := 0; i < 8; i++ {
		b.i32(0)
	}
	for i := 0; i < 8; i++ {
		b.f64(0)
	}
	return b
}

func buildExtendedDetails(product uint8, batterySN []byte) []byte {
	b := detailsHead()
	b.f32(12.5)
	b.u8(product)
	b.str("Phantom", 32)
	b.str("AIRSN01", 16)
	b.str("CAMSN01", 16)
	b.str("RCSN001", 16)
	b.raw(batterySN, 16)
	b.u8(1)
	b.buf.Write([]byte{4, 1, 22})
	return b.buf.Bytes()
}

// The compact variant keeps its identity fields at fixed positions,
// so the fixture is placed rather than appended.
func buildCompactDetails(product uint8, batterySN []byte) []byte {
	out := make([]byte, 356)
	copy(out, detailsHead().buf.Bytes())
	copy(out[267:], "AIRSN01")
	out[277] = product
	copy(out[278:], "Phantom")
	copy(out[318:], "CAMSN01")
	copy(out[328:], "RCSN001")
	copy(out[338:], batterySN)
	out[348] = 1
	copy(out[349:], []byte{4, 1, 22})
	binary.LittleEndian.PutUint32(out[352:], math.Float32bits(12.5))
	return out
}

func TestDecodeDetailsExtended(t *testing.T) {
	data := buildExtendedDetails(uint8(ProductMavicPro), []byte("BATSN01"))
	d := DecodeDetails(data, 13)

	assert.Equal(t, "Main St", d.Street)
	assert.Equal(t, "Shenzhen", d.City)
	assert.Equal(t, "Nanshan", d.Area)
	assert.Equal(t, uint8(1), d.IsFavorite)
	assert.Equal(t, int32(4200), d.RecordLineCount)
	assert.Equal(t, time.UnixMilli(1478509200123).UTC(), d.StartTime)
	assert.Equal(t, 113.95, d.Longitude)
	assert.Equal(t, 22.53, d.Latitude)
	assert.Equal(t, float32(1523.5), d.TotalDistance)
	assert.Equal(t, 754.0, d.TotalTime)
	assert.Equal(t, float32(120.5), d.MaxHeight)
	assert.Equal(t, float32(15.2), d.MaxHorizontalSpeed)
	assert.Equal(t, float32(5.1), d.MaxVerticalSpeed)
	assert.Equal(t, int32(3), d.CaptureNum)
	assert.Equal(t, int64(95), d.VideoTime)
	assert.Equal(t, float32(12.5), d.TakeOffAltitude)
	assert.Equal(t, ProductMavicPro, d.ProductType)
	assert.Equal(t, "Phantom", d.AircraftName)
	assert.Equal(t, "AIRSN01", d.AircraftSN)
	assert.Equal(t, "CAMSN01", d.CameraSN)
	assert.Equal(t, "RCSN001", d.RCSN)
	assert.Equal(t, "BATSN01", d.BatterySN)
	assert.Equal(t, PlatformIOS, d.AppPlatform)
	assert.Equal(t, "4.1.22", d.AppVersion)
}

func TestDecodeDetailsCompact(t *testing.T) {
	data := buildCompactDetails(uint8(ProductInspire1), []byte("BATSN01"))
	d := DecodeDetails(data, 4)

	assert.Equal(t, "Main St", d.Street)
	assert.Equal(t, ProductInspire1, d.ProductType)
	assert.Equal(t, "Phantom", d.AircraftName)
	assert.Equal(t, "AIRSN01", d.AircraftSN)
	assert.Equal(t, "CAMSN01", d.CameraSN)
	assert.Equal(t, "RCSN001", d.RCSN)
	assert.Equal(t, float32(12.5), d.TakeOffAltitude)
	assert.Equal(t, PlatformIOS, d.AppPlatform)
	assert.Equal(t, "4.1.22", d.AppVersion)
}

func TestDecodeDetailsInspire1BatterySN(t *testing.T) {
	// Reversed BCD: low nibbles read back to front, leading zeros trimmed.
	sn := []byte{0x05, 0x04, 0x03, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00}
	data := buildCompactDetails(uint8(ProductInspire1), sn)
	d := DecodeDetails(data, 4)
	assert.Equal(t, "12345", d.BatterySN)
}

func TestDecodeDetailsMomentPicDegrees(t *testing.T) {
	b := &detailsBuilder{}
	b.str("", 20).str("", 20).str("", 20).str("", 20)
	b.u8(0).u8(0).u8(0)
	b.i32(0).i32(0)
	b.i64(0)
	b.f64(0).f64(0)
	b.f32(0)
	b.i32(0)
	b.f32(0).f32(0).f32(0)
	b.i32(0).i64(0)
	for i := 0; i < 8; i++ {
		b.i32(0)
	}
	for i := 0; i < 4; i++ {
		b.f64(math.Pi / 2)
	}
	for i := 0; i < 4; i++ {
		b.f64(math.Pi / 4)
	}
	b.f32(0)
	b.u8(uint8(ProductMavicPro))
	b.str("", 32).str("", 16).str("", 16).str("", 16).str("", 16)
	b.u8(1)
	b.buf.Write([]byte{4, 0, 0})

	d := DecodeDetails(b.buf.Bytes(), 13)
	assert.InDelta(t, 90.0, d.MomentPicLongitude[0], 1e-9)
	assert.InDelta(t, 45.0, d.MomentPicLatitude[3], 1e-9)
}
