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

// RCDisplayField carries stick channels on newer logs that stopped
// emitting the RC record.
type RCDisplayField struct {
	Aileron  uint16 // right stick, horizontal
	Elevator uint16 // right stick, vertical
	Throttle uint16 // left stick, vertical
	Rudder   uint16 // left stick, horizontal
	Gimbal   uint16
}

func DecodeRCDisplayField(body []byte) *RCDisplayField {
	c := layout.NewCursor(body)
	c.Skip(7)
	return &RCDisplayField{
		Aileron:  c.U16(),
		Elevator: c.U16(),
		Throttle: c.U16(),
		Rudder:   c.U16(),
		Gimbal:   c.U16(),
	}
}
