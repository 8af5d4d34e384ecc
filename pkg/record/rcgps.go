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
	"time"

	"dji.tools/djilog/pkg/layout"
)

// RCGPS is the remote controller's GPS fix. Latitude and longitude
// stay in the controller's raw integer units.
type RCGPS struct {
	Hour   uint8
	Minute uint8
	Second uint8
	Year   uint16
	Month  uint8
	Day    uint8

	Latitude  int32
	Longitude int32
	SpeedX    int32
	SpeedY    int32
	GPSNum    uint8
	Accuracy  float32
	ValidData uint16
}

func DecodeRCGPS(body []byte) *RCGPS {
	c := layout.NewCursor(body)
	return &RCGPS{
		Hour:      c.U8(),
		Minute:    c.U8(),
		Second:    c.U8(),
		Year:      c.U16(),
		Month:     c.U8(),
		Day:       c.U8(),
		Latitude:  c.I32(),
		Longitude: c.I32(),
		SpeedX:    c.I32(),
		SpeedY:    c.I32(),
		GPSNum:    c.U8(),
		Accuracy:  c.F32(),
		ValidData: c.U16(),
	}
}

// Time assembles the record's date fields into a UTC instant.
func (r *RCGPS) Time() time.Time {
	return time.Date(int(r.Year), time.Month(r.Month), int(r.Day),
		int(r.Hour), int(r.Minute), int(r.Second), 0, time.UTC)
}
