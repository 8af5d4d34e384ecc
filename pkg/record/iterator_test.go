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
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"dji.tools/djilog/pkg/keychain"
	"dji.tools/djilog/pkg/layout"
)

type osdParams struct {
	longitude float64 // degrees
	latitude  float64 // degrees
	altitude  float32
	ticks     uint32
	gpsTime   uint32
	gpsValid  bool
	gpsNum    uint8
	battery   uint8
	airborne  bool
}

func osdBody(p osdParams) []byte {
	var buf bytes.Buffer
	le := binary.LittleEndian
	binary.Write(&buf, le, p.longitude*math.Pi/180)
	binary.Write(&buf, le, p.latitude*math.Pi/180)
	binary.Write(&buf, le, int16(p.altitude*10))
	for i := 0; i < 6; i++ {
		binary.Write(&buf, le, int16(0))
	}
	buf.WriteByte(6) // flight mode
	buf.WriteByte(0) // app command
	var ground uint8
	if p.airborne {
		ground = 0x04
	}
	buf.WriteByte(ground)
	var gps uint8
	if p.gpsValid {
		gps = 0x80
	}
	buf.WriteByte(gps)
	buf.WriteByte(0x10) // gps level 4
	buf.WriteByte(0)    // fault flags
	buf.WriteByte(p.gpsNum)
	buf.WriteByte(0) // flight action
	buf.WriteByte(0) // motor start failed cause
	buf.WriteByte(0) // non-gps cause
	buf.WriteByte(p.battery)
	buf.WriteByte(25) // swave height 2.5
	binary.Write(&buf, le, p.ticks)
	binary.Write(&buf, le, p.gpsTime)
	buf.WriteByte(2) // version C
	buf.WriteByte(1) // drone type
	buf.WriteByte(0) // imu init fail reason
	return buf.Bytes()
}

func TestIteratorWalksStream(t *testing.T) {
	data := envelope(6, TypeOSD, osdBody(osdParams{
		longitude: 113.95,
		latitude:  22.53,
		altitude:  10.5,
		ticks:     100,
		gpsTime:   1478509200,
		gpsValid:  true,
		gpsNum:    12,
		battery:   95,
		airborne:  true,
	}), true)
	data = append(data, envelope(6, TypeEnd, []byte{0x00}, true)...)

	it := NewIterator(data, 6, layout.ProductMavicPro, nil)

	assert.True(t, it.More())
	rec, err := it.Next()
	assert.Nil(t, err)
	assert.Equal(t, TypeOSD, rec.Type)
	assert.NotNil(t, rec.OSD)
	assert.InDelta(t, 113.95, rec.OSD.Longitude, 1e-9)
	assert.InDelta(t, 22.53, rec.OSD.Latitude, 1e-9)
	assert.Equal(t, float32(10.5), rec.OSD.Altitude)
	assert.True(t, rec.OSD.IsGPSValid)
	assert.Equal(t, uint8(12), rec.OSD.GPSNum)
	assert.Equal(t, uint8(95), rec.OSD.Battery)
	assert.Equal(t, uint32(100), rec.OSD.Ticks)
	assert.True(t, rec.OSD.GroundOrSky.Airborne())

	rec, err = it.Next()
	assert.Nil(t, err)
	assert.True(t, rec.Type.IsEnd())

	assert.False(t, it.More())
	rec, err = it.Next()
	assert.Nil(t, err)
	assert.Nil(t, rec)
}

func TestIteratorEndStopsBeforeTrailingBytes(t *testing.T) {
	data := envelope(6, TypeEnd, []byte{0x00}, true)
	data = append(data, 0xEE, 0xEE, 0xEE, 0xEE)

	it := NewIterator(data, 6, layout.ProductMavicPro, nil)
	rec, err := it.Next()
	assert.Nil(t, err)
	assert.True(t, rec.Type.IsEnd())
	assert.False(t, it.More())
	assert.Empty(t, it.Diagnostics())
}

func TestIteratorSurfacesStreamCorruption(t *testing.T) {
	data := envelope(6, TypeOSD, []byte{0x01}, false)
	data = append(data, 0xEE, 0xEE)

	it := NewIterator(data, 6, layout.ProductMavicPro, nil)
	_, err := it.Next()
	assert.IsType(t, StreamCorruptError{}, err)
	assert.False(t, it.More())
}

func TestIteratorKeyStorageRecoverAdvancesSegment(t *testing.T) {
	first := testKey(0x31)
	second := testKey(0x42)
	plain := osdBody(osdParams{altitude: 1.0, battery: 80})

	data := envelope(13, TypeOSD, encryptCBC(t, plain, first), true)
	data = append(data, envelope(13, TypeKeyStorageRecover, []byte{0x00, 0x00}, true)...)
	data = append(data, envelope(13, TypeOSD, encryptCBC(t, plain, second), true)...)
	data = append(data, envelope(13, TypeEnd, []byte{0x00}, true)...)

	keychains := []keychain.Keychain{
		{uint8(TypeOSD): first},
		{uint8(TypeOSD): second},
	}
	it := NewIterator(data, 13, layout.ProductMavicPro, keychains)

	count := 0
	for it.More() {
		rec, err := it.Next()
		assert.Nil(t, err)
		if rec.Type == TypeOSD {
			assert.NotNil(t, rec.OSD)
			assert.Equal(t, uint8(80), rec.OSD.Battery)
			count++
		}
	}
	assert.Equal(t, 2, count)
	assert.Empty(t, it.Diagnostics())
}

func TestIteratorMissingKeyKeepsCiphertext(t *testing.T) {
	key := testKey(0x31)
	plain := osdBody(osdParams{battery: 80})
	body := encryptCBC(t, plain, key)

	data := envelope(13, TypeOSD, body, true)
	data = append(data, envelope(13, TypeEnd, []byte{0x00}, true)...)

	it := NewIterator(data, 13, layout.ProductMavicPro, []keychain.Keychain{{}})
	rec, err := it.Next()
	assert.Nil(t, err)
	assert.Nil(t, rec.OSD)
	assert.Equal(t, body, rec.Raw)

	diags := it.Diagnostics()
	assert.Len(t, diags, 1)
	assert.Equal(t, MissingKey, diags[0].Kind)
}
