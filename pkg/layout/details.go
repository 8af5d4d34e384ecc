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
	"fmt"
	"math"
	"strings"
	"time"
)

// Details is the flight summary stored at the details offset.
// Two variants exist: the extended one for versions 6+ with a 32-byte
// aircraft name and 16-byte serials read in field order, and the
// compact one for 1-5 with a 24-byte name and 10-byte serials where
// the identity fields sit at fixed byte offsets out of field order.
type Details struct {
	SubStreet   string
	Street      string
	City        string
	Area        string
	IsFavorite  uint8
	IsNew       uint8
	NeedsUpload uint8

	RecordLineCount int32
	Checksum        int32

	StartTime time.Time
	// degrees
	Longitude float64
	// degrees
	Latitude float64
	// meters
	TotalDistance float32
	// seconds
	TotalTime float64
	// meters
	MaxHeight float32
	// meters / second
	MaxHorizontalSpeed float32
	// meters / second
	MaxVerticalSpeed float32

	CaptureNum int32
	VideoTime  int64

	MomentPicImageBufferLen       [4]int32
	MomentPicShrinkImageBufferLen [4]int32
	// degrees
	MomentPicLongitude [4]float64
	// degrees
	MomentPicLatitude [4]float64

	// meters
	TakeOffAltitude float32

	ProductType  ProductType
	AircraftName string
	AircraftSN   string
	CameraSN     string
	RCSN         string
	BatterySN    string
	AppPlatform  Platform
	AppVersion   string
}

// Compact variant byte offsets for the out-of-order identity fields.
const (
	compactAircraftSNOffset   = 267
	compactProductTypeOffset  = 277
	compactAircraftNameOffset = 278
	compactCameraSNOffset     = 318
	compactAltitudeOffset     = 352
)

// DecodeDetails decodes the flight summary for the given log version.
func DecodeDetails(body []byte, version int) Details {
	c := NewCursor(body)
	var d Details
	d.SubStreet = c.FixedString(20)
	d.Street = c.FixedString(20)
	d.City = c.FixedString(20)
	d.Area = c.FixedString(20)
	d.IsFavorite = c.U8()
	d.IsNew = c.U8()
	d.NeedsUpload = c.U8()
	d.RecordLineCount = c.I32()
	d.Checksum = c.I32()
	startMs := c.I64()
	d.StartTime = time.UnixMilli(startMs).UTC()
	d.Longitude = c.F64()
	d.Latitude = c.F64()
	d.TotalDistance = c.F32()
	d.TotalTime = float64(c.I32()) / 1000.0
	d.MaxHeight = c.F32()
	d.MaxHorizontalSpeed = c.F32()
	d.MaxVerticalSpeed = c.F32()
	d.CaptureNum = c.I32()
	d.VideoTime = c.I64()
	for i := range d.MomentPicImageBufferLen {
		d.MomentPicImageBufferLen[i] = c.I32()
	}
	for i := range d.MomentPicShrinkImageBufferLen {
		d.MomentPicShrinkImageBufferLen[i] = c.I32()
	}
	for i := range d.MomentPicLongitude {
		d.MomentPicLongitude[i] = degrees(c.F64())
	}
	for i := range d.MomentPicLatitude {
		d.MomentPicLatitude[i] = degrees(c.F64())
	}
	if version <= 5 {
		// The compact variant stores the identity fields at fixed
		// positions, not in field order. The serial block resumes
		// sequentially after the camera serial.
		c.Seek(compactAltitudeOffset)
		d.TakeOffAltitude = c.F32()
		c.Seek(compactProductTypeOffset)
		d.ProductType = ProductType(c.U8())
		c.Seek(compactAircraftNameOffset)
		d.AircraftName = c.FixedString(24)
		c.Seek(compactAircraftSNOffset)
		d.AircraftSN = c.FixedString(10)
		c.Seek(compactCameraSNOffset)
		d.CameraSN = c.FixedString(10)
		d.RCSN = c.FixedString(10)
		d.BatterySN = decodeBatterySN(d.ProductType, c.Bytes(10))
	} else {
		d.TakeOffAltitude = c.F32()
		d.ProductType = ProductType(c.U8())
		d.AircraftName = c.FixedString(32)
		d.AircraftSN = c.FixedString(16)
		d.CameraSN = c.FixedString(16)
		d.RCSN = c.FixedString(16)
		d.BatterySN = decodeBatterySN(d.ProductType, c.Bytes(16))
	}
	d.AppPlatform = Platform(c.U8())
	ver := c.Bytes(3)
	d.AppVersion = fmt.Sprintf("%d.%d.%d", ver[0], ver[1], ver[2])
	return d
}

// Inspire 1 family batteries report their serial as reversed BCD: the
// low nibble of each byte is one digit, read back to front, leading
// zeros trimmed. Every other model stores a plain NUL-terminated string.
func decodeBatterySN(product ProductType, buf []byte) string {
	switch product {
	case ProductInspire1, ProductInspire1Pro, ProductInspire1RAW:
		digits := make([]byte, 0, len(buf))
		for i := len(buf) - 1; i >= 0; i-- {
			digits = append(digits, (buf[i]&0x0F)+'0')
		}
		trimmed := strings.TrimLeft(string(digits), "0")
		return trimmed
	default:
		s := string(buf)
		if i := strings.IndexByte(s, 0); i >= 0 {
			s = s[:i]
		}
		return s
	}
}

func degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
