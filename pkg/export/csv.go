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

package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"dji.tools/djilog/pkg/frame"
)

// csvColumns fixes the column order. Appending is fine; reordering
// breaks downstream spreadsheets.
var csvColumns = []string{
	"time",
	"custom_date_time",
	"latitude",
	"longitude",
	"height",
	"height_max",
	"vps_height",
	"altitude",
	"x_speed",
	"x_speed_max",
	"y_speed",
	"y_speed_max",
	"z_speed",
	"z_speed_max",
	"horizontal_speed",
	"distance",
	"pitch",
	"roll",
	"yaw",
	"flyc_state",
	"flyc_command",
	"flight_action",
	"gps_num",
	"gps_level",
	"is_gps_used",
	"non_gps_cause",
	"drone_type",
	"is_on_ground",
	"is_motor_on",
	"go_home_status",
	"battery_charge_level",
	"battery_voltage",
	"battery_current",
	"battery_temperature",
	"battery_cell_voltage_deviation",
	"home_latitude",
	"home_longitude",
	"home_altitude",
	"home_height_limit",
	"gimbal_mode",
	"gimbal_pitch",
	"gimbal_roll",
	"gimbal_yaw",
	"camera_is_photo",
	"camera_is_video",
	"camera_sd_card_state",
	"rc_aileron",
	"rc_elevator",
	"rc_throttle",
	"rc_rudder",
	"rc_downlink_signal",
	"rc_uplink_signal",
	"aircraft_name",
	"aircraft_sn",
	"app_tip",
	"app_warn",
}

// WriteCSV writes one row per frame in the fixed column order.
func WriteCSV(w io.Writer, frames []*frame.Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return err
	}
	for _, f := range frames {
		if err := cw.Write(csvRow(f)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(f *frame.Frame) []string {
	return []string{
		csvTime(f.Time),
		csvTime(f.Custom.DateTime),
		f64(f.OSD.Latitude),
		f64(f.OSD.Longitude),
		f32(f.OSD.Height),
		f32(f.OSD.HeightMax),
		f32(f.OSD.VPSHeight),
		f32(f.OSD.Altitude),
		f32(f.OSD.SpeedX),
		f32(f.OSD.SpeedXMax),
		f32(f.OSD.SpeedY),
		f32(f.OSD.SpeedYMax),
		f32(f.OSD.SpeedZ),
		f32(f.OSD.SpeedZMax),
		f32(f.OSD.HorizontalSpeed),
		f64(f.OSD.Distance),
		f32(f.OSD.Pitch),
		f32(f.OSD.Roll),
		f32(f.OSD.Yaw),
		f.OSD.FlycState.String(),
		f.OSD.FlycCommand.String(),
		f.OSD.FlightAction.String(),
		u8(f.OSD.GPSNum),
		u8(f.OSD.GPSLevel),
		boolean(f.OSD.IsGPSUsed),
		f.OSD.NonGPSCause.String(),
		f.OSD.DroneType.String(),
		boolean(f.OSD.IsOnGround),
		boolean(f.OSD.IsMotorOn),
		f.OSD.GoHomeStatus.String(),
		u8(f.Battery.ChargeLevel),
		f32(f.Battery.Voltage),
		f32(f.Battery.Current),
		f32(f.Battery.Temperature),
		f32(f.Battery.CellVoltageDeviation),
		f64(f.Home.Latitude),
		f64(f.Home.Longitude),
		f32(f.Home.Altitude),
		f32(f.Home.HeightLimit),
		f.Gimbal.Mode.String(),
		f32(f.Gimbal.Pitch),
		f32(f.Gimbal.Roll),
		f32(f.Gimbal.Yaw),
		boolean(f.Camera.IsPhoto),
		boolean(f.Camera.IsVideo),
		f.Camera.SDCardState.String(),
		u16(f.RC.Aileron),
		u16(f.RC.Elevator),
		u16(f.RC.Throttle),
		u16(f.RC.Rudder),
		optU8(f.RC.DownlinkSignal),
		optU8(f.RC.UplinkSignal),
		f.Recover.AircraftName,
		f.Recover.AircraftSN,
		f.App.Tip,
		f.App.Warn,
	}
}

func csvTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

func f32(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func f64(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func u8(v uint8) string {
	return strconv.Itoa(int(v))
}

func u16(v uint16) string {
	return strconv.Itoa(int(v))
}

func boolean(v bool) string {
	return strconv.FormatBool(v)
}

func optU8(v *uint8) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(int(*v))
}
