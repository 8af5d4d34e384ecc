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
	"fmt"

	"dji.tools/djilog/pkg/layout"
)

// Home is the home point record.
type Home struct {
	Longitude float64 // degrees
	Latitude  float64 // degrees
	Altitude  float32 // meters

	IsHomeRecord              bool
	GoHomeMode                GoHomeMode
	AircraftHeadDirection     uint8
	IsDynamicHomePointEnabled bool
	IsNearDistanceLimit       bool
	IsNearHeightLimit         bool
	IsMultipleModeOpen        bool
	HasGoHome                 bool

	CompassState    CompassCalibrationState
	IsCompassAdjust bool
	IsBeginnerMode  bool
	IsIOCOpen       bool
	IOCMode         IOCMode

	GoHomeHeight             uint16
	IOCCourseLockAngle       int16
	FlightRecordSDState      uint8
	RecordSDCapacityPercent  uint8
	RecordSDLeftTime         uint16
	CurrentFlightRecordIndex uint16

	// MaxAllowedHeight appears from version 8 on.
	MaxAllowedHeight float32
}

// DecodeHome decodes a Home body. version is the log file version.
func DecodeHome(body []byte, version int) *Home {
	c := layout.NewCursor(body)
	h := &Home{
		Longitude: degrees(c.F64()),
		Latitude:  degrees(c.F64()),
		Altitude:  c.F32() / 10,
	}

	b := c.U8()
	h.IsHomeRecord = bit(b, 0x01)
	h.GoHomeMode = GoHomeMode(subByteField(b, 0x02))
	h.AircraftHeadDirection = subByteField(b, 0x04)
	h.IsDynamicHomePointEnabled = bit(b, 0x08)
	h.IsNearDistanceLimit = bit(b, 0x10)
	h.IsNearHeightLimit = bit(b, 0x20)
	h.IsMultipleModeOpen = bit(b, 0x40)
	h.HasGoHome = bit(b, 0x80)

	b = c.U8()
	h.CompassState = CompassCalibrationState(subByteField(b, 0x03))
	h.IsCompassAdjust = bit(b, 0x04)
	h.IsBeginnerMode = bit(b, 0x08)
	h.IsIOCOpen = bit(b, 0x10)
	h.IOCMode = IOCMode(subByteField(b, 0xE0))

	h.GoHomeHeight = c.U16()
	h.IOCCourseLockAngle = c.I16()
	h.FlightRecordSDState = c.U8()
	h.RecordSDCapacityPercent = c.U8()
	h.RecordSDLeftTime = c.U16()
	h.CurrentFlightRecordIndex = c.U16()
	if version >= 8 {
		c.Skip(5)
		h.MaxAllowedHeight = c.F32()
	}
	return h
}

// GoHomeMode selects the return-to-home altitude behavior.
type GoHomeMode uint8

const (
	GoHomeNormal GoHomeMode = iota
	GoHomeFixedHeight
)

func (m GoHomeMode) String() string {
	switch m {
	case GoHomeNormal:
		return "Normal"
	case GoHomeFixedHeight:
		return "FixedHeight"
	}
	return fmt.Sprintf("Unknown(%d)", uint8(m))
}

// IOCMode is the intelligent orientation control mode.
type IOCMode uint8

func (m IOCMode) String() string {
	switch m {
	case 1:
		return "CourseLock"
	case 2:
		return "HomeLock"
	case 3:
		return "HotspotSurround"
	}
	return fmt.Sprintf("Unknown(%d)", uint8(m))
}

// CompassCalibrationState is the compass calibration progress.
type CompassCalibrationState uint8

var compassStateNames = map[CompassCalibrationState]string{
	0: "NotCalibrating",
	1: "Horizontal",
	2: "Vertical",
	3: "Successful",
	4: "Failed",
}

func (s CompassCalibrationState) String() string {
	if name, ok := compassStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(s))
}
