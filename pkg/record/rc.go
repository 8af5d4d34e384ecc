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

// RC is the remote controller input record. Stick values are raw
// channel units centered on 1024.
type RC struct {
	Aileron  uint16 // right stick, horizontal
	Elevator uint16 // right stick, vertical
	Throttle uint16 // left stick, vertical
	Rudder   uint16 // left stick, horizontal
	Gimbal   uint16

	WheelBtnDown  bool
	WheelOffset   uint8
	WheelPolarity uint8
	WheelChange   uint8

	TransformBtnReserve uint8
	ReturnBtn           bool
	FlightModeSwitch    FlightModeSwitch
	TransformSwitch     uint8

	CustomFunctionBtn4Down bool
	CustomFunctionBtn3Down bool
	CustomFunctionBtn2Down bool
	CustomFunctionBtn1Down bool
	PlaybackBtnDown        bool
	ShutterBtnDown         bool
	RecordBtnDown          bool

	Bandwidth           uint8 // version >= 6
	GimbalControlEnable uint8 // version >= 7
}

// DecodeRC decodes an RC body. The mode switch position is remapped
// for aircraft whose switch order differs from the common layout.
func DecodeRC(body []byte, version int, product layout.ProductType) *RC {
	c := layout.NewCursor(body)
	r := &RC{
		Aileron:  c.U16(),
		Elevator: c.U16(),
		Throttle: c.U16(),
		Rudder:   c.U16(),
		Gimbal:   c.U16(),
	}

	b := c.U8()
	r.WheelBtnDown = bit(b, 0x01)
	r.WheelOffset = subByteField(b, 0x3E)
	r.WheelPolarity = subByteField(b, 0x40)
	r.WheelChange = subByteField(b, 0x80)

	b = c.U8()
	r.TransformBtnReserve = subByteField(b, 0x07)
	r.ReturnBtn = bit(b, 0x08)
	r.FlightModeSwitch = flightModeSwitchFor(subByteField(b, 0x30), product)
	r.TransformSwitch = subByteField(b, 0xC0)

	b = c.U8()
	r.CustomFunctionBtn4Down = bit(b, 0x02)
	r.CustomFunctionBtn3Down = bit(b, 0x04)
	r.CustomFunctionBtn2Down = bit(b, 0x08)
	r.CustomFunctionBtn1Down = bit(b, 0x10)
	r.PlaybackBtnDown = bit(b, 0x20)
	r.ShutterBtnDown = bit(b, 0x40)
	r.RecordBtnDown = bit(b, 0x80)

	if version >= 6 {
		r.Bandwidth = c.U8()
	}
	if version >= 7 {
		r.GimbalControlEnable = c.U8()
	}
	return r
}

// FlightModeSwitch is the physical mode switch position.
type FlightModeSwitch uint8

const (
	SwitchOne FlightModeSwitch = iota
	SwitchTwo
	SwitchThree
)

// flightModeSwitchFor remaps the raw switch value for the Mavic Pro,
// whose switch order differs from other airframes.
func flightModeSwitchFor(value uint8, product layout.ProductType) FlightModeSwitch {
	if product == layout.ProductMavicPro {
		switch value {
		case 0:
			value = 2
		case 1:
			value = 3
		case 2:
			value = 1
		}
	}
	return FlightModeSwitch(value)
}

func (s FlightModeSwitch) String() string {
	switch s {
	case SwitchOne:
		return "One"
	case SwitchTwo:
		return "Two"
	case SwitchThree:
		return "Three"
	}
	return fmt.Sprintf("Unknown(%d)", uint8(s))
}
