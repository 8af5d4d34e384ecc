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
	"time"

	"dji.tools/djilog/pkg/layout"
	"dji.tools/djilog/pkg/record"
)

// Frame is one normalized telemetry row. Each OSD record opens a new
// frame; every other record kind folds its fields into the frame of
// the most recent OSD tick. Fields keep their last observed value
// across ticks unless noted otherwise.
type Frame struct {
	// Time is absolute UTC, computed from the GPS anchor plus the
	// OSD tick counter. Zero while PreAnchor is set.
	Time time.Time
	// PreAnchor marks frames emitted before the first OSD with a
	// usable GPS fix. Their Time is the zero value.
	PreAnchor bool

	OSD     OSD
	Gimbal  Gimbal
	Camera  Camera
	RC      RC
	Battery Battery
	Home    Home
	Recover Recover
	App     App
	Custom  Custom
}

// OSD carries the flight controller state plus the derived motion
// fields. Distance and the running maxima accumulate across the whole
// stream, not per tick.
type OSD struct {
	Latitude  float64 // degrees
	Longitude float64 // degrees

	Height    float32 // meters above takeoff
	HeightMax float32
	VPSHeight float32
	Altitude  float32 // meters above sea level, needs a home record

	SpeedX    float32 // m/s
	SpeedXMax float32
	SpeedY    float32
	SpeedYMax float32
	SpeedZ    float32
	SpeedZMax float32
	// HorizontalSpeed is the ground-plane magnitude of SpeedX and
	// SpeedY.
	HorizontalSpeed float32
	// Distance is the running great-circle path length in meters.
	Distance float64

	Pitch float32 // degrees
	Roll  float32
	Yaw   float32

	FlycState    record.FlightMode
	FlycCommand  record.AppCommand
	FlightAction record.FlightAction

	GPSNum      uint8
	GPSLevel    uint8
	IsGPSUsed   bool
	NonGPSCause record.NonGPSCause

	DroneType    record.DroneType
	IsSwaveWork  bool
	WaveError    bool
	GoHomeStatus record.GoHomeStatus
	BatteryType  record.BatteryType

	IsOnGround            bool
	IsMotorOn             bool
	IsMotorBlocked        bool
	MotorStartFailedCause record.MotorStartFailedCause
	IsImuPreheated        bool
	ImuInitFailReason     record.ImuInitFailReason

	IsAcceleratorOverRange bool
	IsBarometerDeadInAir   bool
	IsCompassError         bool
	IsGoHomeHeightModified bool
	CanIOCWork             bool
	IsNotEnoughForce       bool
	IsOutOfLimit           bool
	IsPropellerCatapult    bool
	IsVibrating            bool
	IsVisionUsed           bool
	VoltageWarning         uint8
}

type Gimbal struct {
	Pitch float32 // degrees
	Roll  float32
	Yaw   float32
	Mode  record.GimbalMode

	IsPitchAtLimit bool
	IsRollAtLimit  bool
	IsYawAtLimit   bool
	IsStuck        bool
}

type Camera struct {
	// IsPhoto does not persist across ticks.
	IsPhoto          bool
	IsVideo          bool
	SDCardIsInserted bool
	SDCardState      record.SDCardState
}

type RC struct {
	// Signal percentages stay nil until an OFDM record is seen.
	DownlinkSignal *uint8
	UplinkSignal   *uint8

	Aileron  uint16
	Elevator uint16
	Throttle uint16
	Rudder   uint16
}

// Battery aggregates the per-tick battery view. Logs without cell
// voltage telemetry get an even split of the pack voltage, flagged by
// IsCellVoltageEstimated.
type Battery struct {
	ChargeLevel     uint8   // percent
	Voltage         float32 // volts
	Current         float32 // amperes
	CurrentCapacity uint32  // mAh
	FullCapacity    uint32  // mAh

	CellNum                 uint8
	IsCellVoltageEstimated  bool
	CellVoltages            []float32 // volts
	CellVoltageDeviation    float32
	MaxCellVoltageDeviation float32

	Temperature    float32 // celsius
	MinTemperature float32
	MaxTemperature float32
}

type Home struct {
	Latitude  float64 // degrees
	Longitude float64 // degrees
	Altitude  float32 // meters above sea level

	HeightLimit               float32
	IsHomeRecord              bool
	GoHomeMode                record.GoHomeMode
	IsDynamicHomePointEnabled bool
	IsNearDistanceLimit       bool
	IsNearHeightLimit         bool

	IsCompassCalibrating    bool
	CompassCalibrationState record.CompassCalibrationState

	IsMultipleModeEnabled bool
	IsBeginnerMode        bool

	IsIOCEnabled       bool
	IOCMode            record.IOCMode
	IOCCourseLockAngle int16

	GoHomeHeight             uint16
	MaxAllowedHeight         float32
	CurrentFlightRecordIndex uint16
}

// Recover holds aircraft identity, seeded from the details area and
// overridden by Recover records in the stream.
type Recover struct {
	AppPlatform  layout.Platform
	AppVersion   string
	AircraftName string
	AircraftSN   string
	CameraSN     string
	RCSN         string
	BatterySN    string
}

// App collects messages surfaced in the pilot app during the tick.
// Both strings reset at each tick boundary.
type App struct {
	Tip  string
	Warn string
}

type Custom struct {
	DateTime time.Time
}

// clone returns a deep copy so an emitted frame is immutable while the
// next one mutates.
func (f *Frame) clone() *Frame {
	out := *f
	if f.Battery.CellVoltages != nil {
		out.Battery.CellVoltages = make([]float32, len(f.Battery.CellVoltages))
		copy(out.Battery.CellVoltages, f.Battery.CellVoltages)
	}
	if f.RC.DownlinkSignal != nil {
		v := *f.RC.DownlinkSignal
		out.RC.DownlinkSignal = &v
	}
	if f.RC.UplinkSignal != nil {
		v := *f.RC.UplinkSignal
		out.RC.UplinkSignal = &v
	}
	return &out
}
