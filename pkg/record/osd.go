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
	"dji.tools/djilog/pkg/layout"
)

// OSD is the main flight state record. One OSD opens each tick of the
// flight; all other record kinds fold into the tick of the most recent
// OSD.
type OSD struct {
	Longitude float64 // degrees
	Latitude  float64 // degrees
	Altitude  float32 // meters
	SpeedX    float32 // m/s
	SpeedY    float32 // m/s
	SpeedZ    float32 // m/s
	Pitch     float32 // degrees
	Roll      float32 // degrees
	Yaw       float32 // degrees

	FlightMode   FlightMode
	RCOutControl bool

	AppCommand AppCommand

	CanIOCWork   bool
	GroundOrSky  GroundOrSky
	IsMotorUp    bool
	IsSwaveWork  bool
	GoHomeStatus GoHomeStatus

	IsVisionUsed   bool
	VoltageWarning uint8
	IsImuPreheated bool
	ModeChannel    uint8
	IsGPSValid     bool

	IsCompassError bool
	WaveError      bool
	GPSLevel       uint8
	BatteryType    BatteryType

	IsOutOfLimit           bool
	IsGoHomeHeightModified bool
	IsPropellerCatapult    bool
	IsMotorBlocked         bool
	IsNotEnoughForce       bool
	IsBarometerDeadInAir   bool
	IsVibrating            bool
	IsAcceleratorOverRange bool

	GPSNum                uint8
	FlightAction          FlightAction
	MotorStartFailedCause MotorStartFailedCause

	NonGPSCause       NonGPSCause
	WaypointLimitMode bool

	Battery     uint8
	SWaveHeight float32 // meters

	// Ticks counts 10 ms units since boot. GPSTime is UTC seconds and
	// only meaningful while IsGPSValid holds.
	Ticks   uint32
	GPSTime uint32

	VersionC          uint8
	DroneType         DroneType
	ImuInitFailReason ImuInitFailReason
}

// DecodeOSD decodes an OSD body. version is the log file version;
// trailing fields appear from version 2 and 3 onward.
func DecodeOSD(body []byte, version int) *OSD {
	c := layout.NewCursor(body)
	o := &OSD{
		Longitude: degrees(c.F64()),
		Latitude:  degrees(c.F64()),
		Altitude:  float32(c.I16()) / 10,
		SpeedX:    float32(c.I16()) / 10,
		SpeedY:    float32(c.I16()) / 10,
		SpeedZ:    float32(c.I16()) / 10,
		Pitch:     float32(c.I16()) / 10,
		Roll:      float32(c.I16()) / 10,
		Yaw:       float32(c.I16()) / 10,
	}

	b := c.U8()
	o.FlightMode = FlightMode(subByteField(b, 0x7F))
	o.RCOutControl = bit(b, 0x80)

	o.AppCommand = AppCommand(c.U8())

	b = c.U8()
	o.CanIOCWork = bit(b, 0x01)
	o.GroundOrSky = GroundOrSky(subByteField(b, 0x06))
	o.IsMotorUp = bit(b, 0x08)
	o.IsSwaveWork = bit(b, 0x10)
	o.GoHomeStatus = GoHomeStatus(subByteField(b, 0xE0))

	b = c.U8()
	o.IsVisionUsed = bit(b, 0x01)
	o.VoltageWarning = subByteField(b, 0x06)
	o.IsImuPreheated = bit(b, 0x10)
	o.ModeChannel = subByteField(b, 0x60)
	o.IsGPSValid = bit(b, 0x80)

	b = c.U8()
	o.IsCompassError = bit(b, 0x01)
	o.WaveError = bit(b, 0x02)
	o.GPSLevel = subByteField(b, 0x3C)
	o.BatteryType = BatteryType(subByteField(b, 0xC0))

	b = c.U8()
	o.IsOutOfLimit = bit(b, 0x01)
	o.IsGoHomeHeightModified = bit(b, 0x02)
	o.IsPropellerCatapult = bit(b, 0x04)
	o.IsMotorBlocked = bit(b, 0x08)
	o.IsNotEnoughForce = bit(b, 0x10)
	o.IsBarometerDeadInAir = bit(b, 0x20)
	o.IsVibrating = bit(b, 0x40)
	o.IsAcceleratorOverRange = bit(b, 0x80)

	o.GPSNum = c.U8()
	o.FlightAction = FlightAction(c.U8())
	o.MotorStartFailedCause = MotorStartFailedCause(c.U8())

	b = c.U8()
	o.NonGPSCause = NonGPSCause(subByteField(b, 0x0F))
	o.WaypointLimitMode = bit(b, 0x10)

	o.Battery = c.U8()
	o.SWaveHeight = float32(c.U8()) / 10
	o.Ticks = c.U32()
	o.GPSTime = c.U32()
	o.VersionC = c.U8()
	if version >= 2 {
		o.DroneType = DroneType(c.U8())
	}
	if version >= 3 {
		o.ImuInitFailReason = ImuInitFailReason(c.U8())
	}
	return o
}
