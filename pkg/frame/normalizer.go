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
	"fmt"
	"math"
	"time"

	"dji.tools/djilog/pkg/layout"
	"dji.tools/djilog/pkg/record"
)

const earthRadius = 6371000.0 // meters

// Iterator folds a record stream into frames. Each OSD record closes
// the previous frame and opens the next; the End record flushes the
// last one.
type Iterator struct {
	src     *record.Iterator
	details layout.Details

	cur     *Frame
	started bool
	pending *Frame
	err     error
	done    bool

	anchored bool
	epoch    time.Time

	hasFix  bool
	lastLat float64
	lastLon float64

	distance  float64
	heightMax float32
	speedXMax float32
	speedYMax float32
	speedZMax float32

	maxCellDeviation float32
	minTemperature   float32
	maxTemperature   float32

	homeAltitude float32
	homeSeen     bool
}

// NewIterator builds a frame iterator over a record stream. details
// seeds aircraft identity and the battery cell count.
func NewIterator(src *record.Iterator, details layout.Details) *Iterator {
	it := &Iterator{src: src, details: details}
	it.cur = it.initialFrame()
	return it
}

func (it *Iterator) initialFrame() *Frame {
	f := &Frame{}
	f.Recover.AppPlatform = it.details.AppPlatform
	f.Recover.AppVersion = it.details.AppVersion
	f.Recover.AircraftName = it.details.AircraftName
	f.Recover.AircraftSN = it.details.AircraftSN
	f.Recover.CameraSN = it.details.CameraSN
	f.Recover.RCSN = it.details.RCSN
	f.Recover.BatterySN = it.details.BatterySN

	cells := it.details.ProductType.BatteryCellNum()
	f.Battery.CellNum = uint8(cells)
	f.Battery.CellVoltages = make([]float32, cells)
	f.Battery.IsCellVoltageEstimated = true
	return f
}

// More reports whether another frame is available.
func (it *Iterator) More() bool {
	if it.pending != nil {
		return true
	}
	if it.done || it.err != nil {
		return false
	}
	p, err := it.fetch()
	it.pending = p
	if err != nil {
		it.err = err
	}
	return it.pending != nil
}

// Next returns the next frame. After the stream is exhausted it
// returns (nil, nil); a fatal record error is passed through.
func (it *Iterator) Next() (*Frame, error) {
	if !it.More() {
		return nil, it.err
	}
	f := it.pending
	it.pending = nil
	return f, nil
}

// Diagnostics returns the record stream's non-fatal conditions.
func (it *Iterator) Diagnostics() []record.Diagnostic {
	return it.src.Diagnostics()
}

func (it *Iterator) fetch() (*Frame, error) {
	for {
		rec, err := it.src.Next()
		if err != nil {
			// Flush the frame under construction before
			// surfacing the framing error.
			if it.started {
				it.started = false
				out := it.finalize()
				it.err = err
				return out, nil
			}
			return nil, err
		}
		if rec == nil {
			if it.started {
				it.started = false
				return it.finalize(), nil
			}
			it.done = true
			return nil, nil
		}

		if rec.Type.IsEnd() {
			it.done = true
			if it.started {
				it.started = false
				return it.finalize(), nil
			}
			return nil, nil
		}

		if rec.Type == record.TypeOSD && rec.OSD != nil {
			var out *Frame
			first := !it.started
			if it.started {
				out = it.finalize()
				it.reset()
			}
			it.started = true
			it.foldOSD(rec.OSD, first)
			if out != nil {
				return out, nil
			}
			continue
		}

		it.fold(rec)
	}
}

// reset opens the next frame from the current one. Sticky fields
// carry over; per-tick fields clear.
func (it *Iterator) reset() {
	next := it.cur.clone()
	next.Camera.IsPhoto = false
	next.App = App{}
	if next.Battery.IsCellVoltageEstimated {
		for i := range next.Battery.CellVoltages {
			next.Battery.CellVoltages[i] = 0
		}
	}
	it.cur = next
}

// finalize stamps the running aggregates onto the current frame and
// returns it for emission.
func (it *Iterator) finalize() *Frame {
	f := it.cur

	if f.OSD.Height > it.heightMax {
		it.heightMax = f.OSD.Height
	}
	if f.OSD.SpeedX > it.speedXMax {
		it.speedXMax = f.OSD.SpeedX
	}
	if f.OSD.SpeedY > it.speedYMax {
		it.speedYMax = f.OSD.SpeedY
	}
	if f.OSD.SpeedZ > it.speedZMax {
		it.speedZMax = f.OSD.SpeedZ
	}
	f.OSD.HeightMax = it.heightMax
	f.OSD.SpeedXMax = it.speedXMax
	f.OSD.SpeedYMax = it.speedYMax
	f.OSD.SpeedZMax = it.speedZMax
	f.OSD.Distance = it.distance

	b := &f.Battery
	if len(b.CellVoltages) > 0 && b.CellVoltages[0] == 0 && b.Voltage > 0 {
		b.IsCellVoltageEstimated = true
		per := b.Voltage / float32(len(b.CellVoltages))
		for i := range b.CellVoltages {
			b.CellVoltages[i] = per
		}
	}
	if len(b.CellVoltages) > 0 {
		min, max := b.CellVoltages[0], b.CellVoltages[0]
		for _, v := range b.CellVoltages[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		dev := float32(math.Round(float64(max-min)*1000) / 1000)
		b.CellVoltageDeviation = dev
		if dev > it.maxCellDeviation {
			it.maxCellDeviation = dev
		}
	}
	b.MaxCellVoltageDeviation = it.maxCellDeviation
	if b.Temperature != 0 {
		if it.minTemperature == 0 || b.Temperature < it.minTemperature {
			it.minTemperature = b.Temperature
		}
		if b.Temperature > it.maxTemperature {
			it.maxTemperature = b.Temperature
		}
	}
	b.MinTemperature = it.minTemperature
	b.MaxTemperature = it.maxTemperature

	return f
}

func (it *Iterator) foldOSD(osd *record.OSD, first bool) {
	f := it.cur

	if !it.anchored && osd.IsGPSValid && osd.GPSNum >= 3 && osd.GPSTime != 0 {
		rel := time.Duration(osd.Ticks) * 10 * time.Millisecond
		it.epoch = time.Unix(int64(osd.GPSTime), 0).UTC().Add(-rel)
		it.anchored = true
	}
	if it.anchored {
		f.Time = it.epoch.Add(time.Duration(osd.Ticks) * 10 * time.Millisecond)
		f.PreAnchor = false
	} else {
		f.Time = time.Time{}
		f.PreAnchor = true
	}

	f.OSD.Latitude = osd.Latitude
	f.OSD.Longitude = osd.Longitude
	f.OSD.Height = osd.Altitude
	f.OSD.Altitude = osd.Altitude + it.homeAltitude
	f.OSD.VPSHeight = osd.SWaveHeight
	f.OSD.SpeedX = osd.SpeedX
	f.OSD.SpeedY = osd.SpeedY
	f.OSD.SpeedZ = osd.SpeedZ
	f.OSD.HorizontalSpeed = float32(math.Sqrt(float64(osd.SpeedX)*float64(osd.SpeedX) + float64(osd.SpeedY)*float64(osd.SpeedY)))
	f.OSD.Pitch = osd.Pitch
	f.OSD.Roll = osd.Roll
	f.OSD.Yaw = osd.Yaw

	if !first && f.OSD.FlycState != osd.FlightMode {
		it.appendTip(fmt.Sprintf("Flight mode changed to %s.", osd.FlightMode))
	}
	f.OSD.FlycState = osd.FlightMode
	f.OSD.FlycCommand = osd.AppCommand
	f.OSD.FlightAction = osd.FlightAction

	f.OSD.GPSNum = osd.GPSNum
	f.OSD.GPSLevel = osd.GPSLevel
	f.OSD.IsGPSUsed = osd.IsGPSValid
	f.OSD.NonGPSCause = osd.NonGPSCause
	f.OSD.DroneType = osd.DroneType
	f.OSD.IsSwaveWork = osd.IsSwaveWork
	f.OSD.WaveError = osd.WaveError
	f.OSD.GoHomeStatus = osd.GoHomeStatus
	f.OSD.BatteryType = osd.BatteryType
	f.OSD.IsOnGround = !osd.GroundOrSky.Airborne()
	f.OSD.IsMotorOn = osd.IsMotorUp
	f.OSD.IsMotorBlocked = osd.IsMotorBlocked
	f.OSD.MotorStartFailedCause = osd.MotorStartFailedCause
	f.OSD.IsImuPreheated = osd.IsImuPreheated
	f.OSD.ImuInitFailReason = osd.ImuInitFailReason

	f.OSD.IsAcceleratorOverRange = osd.IsAcceleratorOverRange
	f.OSD.IsBarometerDeadInAir = osd.IsBarometerDeadInAir
	f.OSD.IsCompassError = osd.IsCompassError
	f.OSD.IsGoHomeHeightModified = osd.IsGoHomeHeightModified
	f.OSD.CanIOCWork = osd.CanIOCWork
	f.OSD.IsNotEnoughForce = osd.IsNotEnoughForce
	f.OSD.IsOutOfLimit = osd.IsOutOfLimit
	f.OSD.IsPropellerCatapult = osd.IsPropellerCatapult
	f.OSD.IsVibrating = osd.IsVibrating
	f.OSD.IsVisionUsed = osd.IsVisionUsed
	f.OSD.VoltageWarning = osd.VoltageWarning

	if f.Battery.ChargeLevel == 0 && osd.Battery > 0 {
		f.Battery.ChargeLevel = osd.Battery
	}

	if osd.Latitude != 0 || osd.Longitude != 0 {
		if it.hasFix {
			it.distance += haversine(it.lastLat, it.lastLon, osd.Latitude, osd.Longitude)
		}
		it.lastLat, it.lastLon = osd.Latitude, osd.Longitude
		it.hasFix = true
	}
}

func (it *Iterator) fold(rec *record.Record) {
	f := it.cur
	switch {
	case rec.Type == record.TypeHome && rec.Home != nil:
		it.foldHome(rec.Home)
	case rec.Type == record.TypeGimbal && rec.Gimbal != nil:
		it.foldGimbal(rec.Gimbal)
	case rec.Type == record.TypeRC && rec.RC != nil:
		f.RC.Aileron = rec.RC.Aileron
		f.RC.Elevator = rec.RC.Elevator
		f.RC.Throttle = rec.RC.Throttle
		f.RC.Rudder = rec.RC.Rudder
	case rec.Type == record.TypeRCDisplayField && rec.RCDisplayField != nil:
		f.RC.Aileron = rec.RCDisplayField.Aileron
		f.RC.Elevator = rec.RCDisplayField.Elevator
		f.RC.Throttle = rec.RCDisplayField.Throttle
		f.RC.Rudder = rec.RCDisplayField.Rudder
	case rec.Type == record.TypeCustom && rec.Custom != nil:
		f.Camera.IsPhoto = rec.Custom.IsPhoto
		f.Camera.IsVideo = rec.Custom.IsVideo
		f.Custom.DateTime = rec.Custom.UpdateTime
	case rec.Type == record.TypeCamera && rec.Camera != nil:
		f.Camera.IsPhoto = rec.Camera.IsShootingSinglePhoto
		f.Camera.IsVideo = rec.Camera.IsRecording
		f.Camera.SDCardIsInserted = rec.Camera.HasSDCard
		f.Camera.SDCardState = rec.Camera.SDCardState
	case rec.Type == record.TypeCenterBattery && rec.CenterBattery != nil:
		it.foldCenterBattery(rec.CenterBattery)
	case rec.Type == record.TypeSmartBattery && rec.SmartBattery != nil:
		f.Battery.ChargeLevel = rec.SmartBattery.Percent
		f.Battery.Voltage = rec.SmartBattery.Voltage
	case rec.Type == record.TypeSmartBatteryGroup && rec.SmartBatteryGroup != nil:
		it.foldBatteryGroup(rec.SmartBatteryGroup)
	case rec.Type == record.TypeOFDM && rec.OFDM != nil:
		v := rec.OFDM.SignalPercent
		if rec.OFDM.IsUp {
			f.RC.UplinkSignal = &v
		} else {
			f.RC.DownlinkSignal = &v
		}
	case rec.Type == record.TypeRecover && rec.Recover != nil:
		f.Recover.AppPlatform = rec.Recover.AppPlatform
		f.Recover.AppVersion = rec.Recover.AppVersion
		f.Recover.AircraftName = rec.Recover.AircraftName
		f.Recover.AircraftSN = rec.Recover.AircraftSN
		f.Recover.CameraSN = rec.Recover.CameraSN
		f.Recover.RCSN = rec.Recover.RCSN
		f.Recover.BatterySN = rec.Recover.BatterySN
	case rec.Type == record.TypeAppTip && rec.AppTip != nil:
		it.appendTip(rec.AppTip.Message)
	case rec.Type == record.TypeAppWarn && rec.AppWarn != nil:
		it.appendWarn(rec.AppWarn.Message)
	case rec.Type == record.TypeAppSeriousWarn && rec.AppSeriousWarn != nil:
		it.appendWarn(rec.AppSeriousWarn.Message)
	}
}

func (it *Iterator) foldHome(h *record.Home) {
	f := it.cur
	f.Home.Latitude = h.Latitude
	f.Home.Longitude = h.Longitude
	if !it.homeSeen || it.homeAltitude != h.Altitude {
		it.homeAltitude = h.Altitude
		it.homeSeen = true
		f.OSD.Altitude = f.OSD.Height + it.homeAltitude
	}
	f.Home.Altitude = h.Altitude
	f.Home.HeightLimit = h.MaxAllowedHeight
	f.Home.IsHomeRecord = h.IsHomeRecord
	f.Home.GoHomeMode = h.GoHomeMode
	f.Home.IsDynamicHomePointEnabled = h.IsDynamicHomePointEnabled
	f.Home.IsNearDistanceLimit = h.IsNearDistanceLimit
	f.Home.IsNearHeightLimit = h.IsNearHeightLimit
	f.Home.IsCompassCalibrating = h.IsCompassAdjust
	if h.IsCompassAdjust {
		f.Home.CompassCalibrationState = h.CompassState
	}
	f.Home.IsMultipleModeEnabled = h.IsMultipleModeOpen
	f.Home.IsBeginnerMode = h.IsBeginnerMode
	f.Home.IsIOCEnabled = h.IsIOCOpen
	if h.IsIOCOpen {
		f.Home.IOCMode = h.IOCMode
		f.Home.IOCCourseLockAngle = h.IOCCourseLockAngle
	}
	f.Home.GoHomeHeight = h.GoHomeHeight
	f.Home.MaxAllowedHeight = h.MaxAllowedHeight
	f.Home.CurrentFlightRecordIndex = h.CurrentFlightRecordIndex
}

func (it *Iterator) foldGimbal(g *record.Gimbal) {
	f := it.cur
	f.Gimbal.Mode = g.Mode
	f.Gimbal.Pitch = g.Pitch
	f.Gimbal.Roll = g.Roll
	f.Gimbal.Yaw = g.Yaw
	if g.IsPitchAtLimit && !f.Gimbal.IsPitchAtLimit {
		it.appendTip("Gimbal pitch axis endpoint reached.")
	}
	if g.IsRollAtLimit && !f.Gimbal.IsRollAtLimit {
		it.appendTip("Gimbal roll axis endpoint reached.")
	}
	if g.IsYawAtLimit && !f.Gimbal.IsYawAtLimit {
		it.appendTip("Gimbal yaw axis endpoint reached.")
	}
	f.Gimbal.IsPitchAtLimit = g.IsPitchAtLimit
	f.Gimbal.IsRollAtLimit = g.IsRollAtLimit
	f.Gimbal.IsYawAtLimit = g.IsYawAtLimit
	f.Gimbal.IsStuck = g.IsStuck
}

func (it *Iterator) foldCenterBattery(b *record.CenterBattery) {
	f := it.cur
	f.Battery.ChargeLevel = b.RelativeCapacity
	f.Battery.Voltage = b.Voltage
	f.Battery.Current = b.Current
	f.Battery.CurrentCapacity = uint32(b.CurrentCapacity)
	f.Battery.FullCapacity = uint32(b.FullCapacity)
	f.Battery.Temperature = b.Temperature
	f.Battery.IsCellVoltageEstimated = false
	n := len(f.Battery.CellVoltages)
	if n > len(b.CellVoltages) {
		n = len(b.CellVoltages)
	}
	for i := 0; i < n; i++ {
		f.Battery.CellVoltages[i] = b.CellVoltages[i]
	}
}

func (it *Iterator) foldBatteryGroup(g *record.SmartBatteryGroup) {
	f := it.cur
	switch {
	case g.Dynamic != nil:
		d := g.Dynamic
		// Multi-battery aircraft report one Dynamic per pack; only
		// the first pack feeds the frame.
		if it.details.ProductType.BatteryNum() >= 2 && d.Index != 1 {
			return
		}
		f.Battery.Voltage = d.CurrentVoltage
		f.Battery.Current = d.CurrentCurrent
		f.Battery.CurrentCapacity = d.RemainedCapacity
		f.Battery.FullCapacity = d.FullCapacity
		f.Battery.ChargeLevel = d.CapacityPercent
		f.Battery.Temperature = d.Temperature
	case g.SingleVoltage != nil:
		s := g.SingleVoltage
		n := len(s.CellVoltages)
		if int(s.CellCount) < n {
			n = int(s.CellCount)
		}
		if n > len(f.Battery.CellVoltages) {
			n = len(f.Battery.CellVoltages)
		}
		for i := 0; i < n; i++ {
			f.Battery.CellVoltages[i] = s.CellVoltages[i]
		}
		if n > 0 {
			f.Battery.IsCellVoltageEstimated = false
		}
	}
}

func (it *Iterator) appendTip(msg string) {
	it.cur.App.Tip = appendMessage(it.cur.App.Tip, msg)
}

func (it *Iterator) appendWarn(msg string) {
	it.cur.App.Warn = appendMessage(it.cur.App.Warn, msg)
}

func appendMessage(cur, msg string) string {
	if msg == "" {
		return cur
	}
	if cur == "" {
		return msg
	}
	return cur + " " + msg
}

// haversine returns the great-circle distance in meters between two
// points given in degrees.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := lat1 * math.Pi / 180
	p2 := lat2 * math.Pi / 180
	dp := (lat2 - lat1) * math.Pi / 180
	dl := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dp/2)*math.Sin(dp/2) + math.Cos(p1)*math.Cos(p2)*math.Sin(dl/2)*math.Sin(dl/2)
	return 2 * earthRadius * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
