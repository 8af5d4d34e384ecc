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

// Gimbal is the gimbal pose record.
type Gimbal struct {
	Pitch float32 // degrees
	Roll  float32 // degrees
	Yaw   float32 // degrees

	Mode  GimbalMode
	Reset uint8

	RollAdjust float32 // degrees
	YawAngle   float32 // degrees

	IsPitchAtLimit        bool
	IsRollAtLimit         bool
	IsYawAtLimit          bool
	IsAutoCalibration     bool
	AutoCalibrationResult bool
	InstallDirection      bool
	IsStuck               bool

	Version       uint8
	IsDoubleClick bool
	IsTripleClick bool
	IsSingleClick bool
}

// DecodeGimbal decodes a Gimbal body. version is the log file version;
// the click bitpack appears from version 2 on.
func DecodeGimbal(body []byte, version int) *Gimbal {
	c := layout.NewCursor(body)
	g := &Gimbal{
		Pitch: float32(c.I16()) / 10,
		Roll:  float32(c.I16()) / 10,
		Yaw:   float32(c.I16()) / 10,
	}

	b := c.U8()
	g.Mode = GimbalMode(subByteField(b, 0xC0))
	g.Reset = subByteField(b, 0x20)

	g.RollAdjust = float32(c.I8()) / 10
	g.YawAngle = float32(c.I16()) / 10

	b = c.U8()
	g.IsPitchAtLimit = bit(b, 0x01)
	g.IsRollAtLimit = bit(b, 0x02)
	g.IsYawAtLimit = bit(b, 0x04)
	g.IsAutoCalibration = bit(b, 0x08)
	g.AutoCalibrationResult = bit(b, 0x10)
	g.InstallDirection = bit(b, 0x20)
	g.IsStuck = bit(b, 0x40)

	if version >= 2 {
		b = c.U8()
		g.Version = subByteField(b, 0x0F)
		g.IsDoubleClick = bit(b, 0x20)
		g.IsTripleClick = bit(b, 0x40)
		g.IsSingleClick = bit(b, 0x80)
	}
	return g
}

// GimbalMode is the gimbal work mode.
type GimbalMode uint8

const (
	GimbalFree GimbalMode = iota
	GimbalFPV
	GimbalYawFollow
)

func (m GimbalMode) String() string {
	switch m {
	case GimbalFree:
		return "Free"
	case GimbalFPV:
		return "FPV"
	case GimbalYawFollow:
		return "YawFollow"
	}
	return fmt.Sprintf("Unknown(%d)", uint8(m))
}
