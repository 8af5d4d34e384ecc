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

package frame

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dji.tools/djilog/pkg/layout"
	"dji.tools/djilog/pkg/record"
)

type streamBuilder struct {
	buf bytes.Buffer
}

func (s *streamBuilder) record(typ record.Type, body []byte) *streamBuilder {
	s.buf.WriteByte(byte(typ))
	s.buf.WriteByte(byte(len(body)))
	s.buf.Write(body)
	s.buf.WriteByte(0xFF)
	return s
}

func (s *streamBuilder) end() *streamBuilder {
	return s.record(record.TypeEnd, []byte{0x00})
}

func (s *streamBuilder) iterator(product layout.ProductType) *record.Iterator {
	return record.NewIterator(s.buf.Bytes(), 6, product, nil)
}

type osdSample struct {
	longitude  float64 // degrees
	latitude   float64 // degrees
	altitude   float32
	speedX     float32
	speedY     float32
	flightMode uint8
	ticks      uint32
	gpsTime    uint32
	gpsValid   bool
	gpsNum     uint8
	battery    uint8
	airborne   bool
}

func osdBody(p osdSample) []byte {
	var buf bytes.Buffer
	le := binary.LittleEndian
	binary.Write(&buf, le, p.longitude*math.Pi/180)
	binary.Write(&buf, le, p.latitude*math.Pi/180)
	binary.Write(&buf, le, int16(p.altitude*10))
	binary.Write(&buf, le, int16(p.speedX*10))
	binary.Write(&buf, le, int16(p.speedY*10))
	for i := 0; i < 4; i++ {
		binary.Write(&buf, le, int16(0))
	}
	buf.WriteByte(p.flightMode & 0x7F)
	buf.WriteByte(0)
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
	buf.WriteByte(0x10)
	buf.WriteByte(0)
	buf.WriteByte(p.gpsNum)
	buf.WriteByte(0)
	buf.WriteByte(0)
	buf.WriteByte(0)
	buf.WriteByte(p.battery)
	buf.WriteByte(0)
	binary.Write(&buf, le, p.ticks)
	binary.Write(&buf, le, p.gpsTime)
	buf.WriteByte(2)
	buf.WriteByte(1)
	buf.WriteByte(0)
	return buf.Bytes()
}

func smartBatteryBody(voltageMilli uint16, percent uint8) []byte {
	var buf bytes.Buffer
	le := binary.LittleEndian
	for i := 0; i < 5; i++ {
		binary.Write(&buf, le, uint16(0))
	}
	binary.Write(&buf, le, float32(0))
	binary.Write(&buf, le, float32(0))
	binary.Write(&buf, le, uint32(0))
	buf.WriteByte(0)
	buf.WriteByte(0)
	binary.Write(&buf, le, voltageMilli)
	buf.WriteByte(percent)
	buf.WriteByte(0)
	buf.WriteByte(0)
	return buf.Bytes()
}

func customBody(isPhoto, isVideo bool, ms int64) []byte {
	var buf bytes.Buffer
	le := binary.LittleEndian
	b := func(v bool) byte {
		if v {
			return 1
		}
		return 0
	}
	buf.WriteByte(b(isPhoto))
	buf.WriteByte(b(isVideo))
	binary.Write(&buf, le, float32(0))
	binary.Write(&buf, le, float32(0))
	binary.Write(&buf, le, ms)
	return buf.Bytes()
}

func collectFrames(t *testing.T, it *Iterator) []*Frame {
	var frames []*Frame
	for it.More() {
		f, err := it.Next()
		assert.Nil(t, err)
		frames = append(frames, f)
	}
	return frames
}

func TestNormalizerOneFramePerTick(t *testing.T) {
	s := &streamBuilder{}
	s.record(record.TypeOSD, osdBody(osdSample{ticks: 100}))
	s.record(record.TypeOSD, osdBody(osdSample{ticks: 200}))
	s.record(record.TypeOSD, osdBody(osdSample{ticks: 300}))
	s.end()

	it := NewIterator(s.iterator(layout.ProductMavicPro), layout.Details{ProductType: layout.ProductMavicPro})
	frames := collectFrames(t, it)
	assert.Len(t, frames, 3)
}

func TestNormalizerTimeAnchor(t *testing.T) {
	gpsTime := uint32(1478509200)
	s := &streamBuilder{}
	s.record(record.TypeOSD, osdBody(osdSample{ticks: 100}))
	s.record(record.TypeOSD, osdBody(osdSample{
		ticks: 200, gpsTime: gpsTime, gpsValid: true, gpsNum: 8,
		latitude: 22.5, longitude: 113.9,
	}))
	s.record(record.TypeOSD, osdBody(osdSample{
		ticks: 300, gpsTime: gpsTime + 1, gpsValid: true, gpsNum: 8,
		latitude: 22.5, longitude: 113.9,
	}))
	s.end()

	it := NewIterator(s.iterator(layout.ProductMavicPro), layout.Details{ProductType: layout.ProductMavicPro})
	frames := collectFrames(t, it)
	assert.Len(t, frames, 3)

	assert.True(t, frames[0].PreAnchor)
	assert.True(t, frames[0].Time.IsZero())

	anchor := time.Unix(int64(gpsTime), 0).UTC()
	assert.False(t, frames[1].PreAnchor)
	assert.Equal(t, anchor, frames[1].Time)
	assert.Equal(t, anchor.Add(time.Second), frames[2].Time)
	assert.True(t, frames[2].Time.After(frames[1].Time))
}

func TestNormalizerDistance(t *testing.T) {
	s := &streamBuilder{}
	s.record(record.TypeOSD, osdBody(osdSample{ticks: 100, latitude: 0.000001, longitude: 0}))
	s.record(record.TypeOSD, osdBody(osdSample{ticks: 200, latitude: 0.000001, longitude: 1}))
	s.end()

	it := NewIterator(s.iterator(layout.ProductMavicPro), layout.Details{ProductType: layout.ProductMavicPro})
	frames := collectFrames(t, it)
	assert.Len(t, frames, 2)
	assert.Equal(t, float64(0), frames[0].OSD.Distance)
	// One degree of longitude at the equator.
	assert.InDelta(t, 111195, frames[1].OSD.Distance, 1)
}

func TestNormalizerRunningMaxes(t *testing.T) {
	s := &streamBuilder{}
	s.record(record.TypeOSD, osdBody(osdSample{ticks: 100, altitude: 30, speedX: 5}))
	s.record(record.TypeOSD, osdBody(osdSample{ticks: 200, altitude: 20, speedX: 2}))
	s.end()

	it := NewIterator(s.iterator(layout.ProductMavicPro), layout.Details{ProductType: layout.ProductMavicPro})
	frames := collectFrames(t, it)
	assert.Len(t, frames, 2)
	assert.Equal(t, float32(30), frames[1].OSD.HeightMax)
	assert.Equal(t, float32(5), frames[1].OSD.SpeedXMax)
	assert.Equal(t, float32(20), frames[1].OSD.Height)
}

func TestNormalizerFlightModeChangeTip(t *testing.T) {
	s := &streamBuilder{}
	s.record(record.TypeOSD, osdBody(osdSample{ticks: 100, flightMode: 6}))
	s.record(record.TypeOSD, osdBody(osdSample{ticks: 200, flightMode: 9}))
	s.end()

	it := NewIterator(s.iterator(layout.ProductMavicPro), layout.Details{ProductType: layout.ProductMavicPro})
	frames := collectFrames(t, it)
	assert.Len(t, frames, 2)
	assert.Empty(t, frames[0].App.Tip)
	assert.Contains(t, frames[1].App.Tip, "Flight mode changed")
}

func TestNormalizerCellVoltageEstimation(t *testing.T) {
	s := &streamBuilder{}
	s.record(record.TypeOSD, osdBody(osdSample{ticks: 100}))
	s.record(record.TypeSmartBattery, smartBatteryBody(11400, 88))
	s.end()

	it := NewIterator(s.iterator(layout.ProductMavicPro), layout.Details{ProductType: layout.ProductMavicPro})
	frames := collectFrames(t, it)
	assert.Len(t, frames, 1)

	b := frames[0].Battery
	assert.Equal(t, uint8(88), b.ChargeLevel)
	assert.Equal(t, uint8(3), b.CellNum)
	assert.True(t, b.IsCellVoltageEstimated)
	assert.Len(t, b.CellVoltages, 3)
	assert.InDelta(t, 3.8, float64(b.CellVoltages[0]), 0.001)
	assert.Equal(t, b.CellVoltages[0], b.CellVoltages[2])
}

func TestNormalizerPerTickFieldsClear(t *testing.T) {
	s := &streamBuilder{}
	s.record(record.TypeOSD, osdBody(osdSample{ticks: 100}))
	s.record(record.TypeCustom, customBody(true, true, 1478509200000))
	s.record(record.TypeAppTip, []byte("Battery low."))
	s.record(record.TypeOSD, osdBody(osdSample{ticks: 200}))
	s.end()

	it := NewIterator(s.iterator(layout.ProductMavicPro), layout.Details{ProductType: layout.ProductMavicPro})
	frames := collectFrames(t, it)
	assert.Len(t, frames, 2)

	assert.True(t, frames[0].Camera.IsPhoto)
	assert.True(t, frames[0].Camera.IsVideo)
	assert.Equal(t, "Battery low.", frames[0].App.Tip)
	assert.Equal(t, time.UnixMilli(1478509200000).UTC(), frames[0].Custom.DateTime)

	// IsPhoto and app messages clear per tick; IsVideo sticks.
	assert.False(t, frames[1].Camera.IsPhoto)
	assert.True(t, frames[1].Camera.IsVideo)
	assert.Empty(t, frames[1].App.Tip)
}

func TestNormalizerSeedsIdentityFromDetails(t *testing.T) {
	s := &streamBuilder{}
	s.record(record.TypeOSD, osdBody(osdSample{ticks: 100}))
	s.end()

	details := layout.Details{
		ProductType:  layout.ProductMavicPro,
		AircraftName: "Voyager",
		AircraftSN:   "SN42",
		AppVersion:   "4.1.22",
		AppPlatform:  layout.PlatformIOS,
	}
	it := NewIterator(s.iterator(layout.ProductMavicPro), details)
	frames := collectFrames(t, it)
	assert.Len(t, frames, 1)
	assert.Equal(t, "Voyager", frames[0].Recover.AircraftName)
	assert.Equal(t, "SN42", frames[0].Recover.AircraftSN)
	assert.Equal(t, layout.PlatformIOS, frames[0].Recover.AppPlatform)
}

func TestNormalizerFlushesFrameOnCorruptStream(t *testing.T) {
	s := &streamBuilder{}
	s.record(record.TypeOSD, osdBody(osdSample{ticks: 100, battery: 70}))
	s.buf.WriteByte(byte(record.TypeHome))
	s.buf.WriteByte(4)
	s.buf.Write([]byte{0x01, 0x02, 0x03, 0x04})
	s.buf.Write([]byte{0xEE, 0xEE})

	it := NewIterator(s.iterator(layout.ProductMavicPro), layout.Details{ProductType: layout.ProductMavicPro})
	f, err := it.Next()
	assert.Nil(t, err)
	assert.NotNil(t, f)
	assert.Equal(t, uint8(70), f.Battery.ChargeLevel)

	f, err = it.Next()
	assert.Nil(t, f)
	assert.IsType(t, record.StreamCorruptError{}, err)
}

func TestHaversine(t *testing.T) {
	assert.InDelta(t, 111195, haversine(0, 0, 0, 1), 1)
	assert.InDelta(t, 111195, haversine(0, 0, 1, 0), 1)
	assert.Equal(t, float64(0), haversine(22.5, 113.9, 22.5, 113.9))
}
