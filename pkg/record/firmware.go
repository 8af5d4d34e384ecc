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

// Firmware reports a component firmware version.
type Firmware struct {
	SenderType    SenderType
	SubSenderType uint8
	Version       string
}

func DecodeFirmware(body []byte) *Firmware {
	c := layout.NewCursor(body)
	f := &Firmware{
		SenderType:    SenderType(c.U8()),
		SubSenderType: c.U8(),
	}
	v := c.Bytes(4)
	f.Version = fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
	return f
}

// SenderType identifies which component reported the version.
type SenderType uint8

func (t SenderType) String() string {
	switch t {
	case 0:
		return "None"
	case 1:
		return "Camera"
	case 3:
		return "MC"
	case 4:
		return "Gimbal"
	case 6:
		return "RC"
	case 11:
		return "Battery"
	}
	return fmt.Sprintf("Unknown(%d)", uint8(t))
}
