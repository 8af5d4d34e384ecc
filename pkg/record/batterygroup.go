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

// SmartBatteryGroup is a tagged sub-record. The first body byte
// selects which of the three variants follows.
type SmartBatteryGroup struct {
	Static        *SmartBatteryStatic
	Dynamic       *SmartBatteryDynamic
	SingleVoltage *SmartBatterySingleVoltage
}

// SmartBatteryStatic carries pack identity and wear counters.
type SmartBatteryStatic struct {
	Index            uint8
	DesignedCapacity uint32
	LoopTimes        uint16
	FullVoltage      uint32
	SerialNumber     uint16
	VersionNumber    [8]byte
	BatteryLife      uint8
	BatteryType      uint8
}

// SmartBatteryDynamic carries the live electrical state.
type SmartBatteryDynamic struct {
	Index            uint8
	CurrentVoltage   float32 // volts
	CurrentCurrent   float32 // amperes, absolute
	FullCapacity     uint32  // mAh
	RemainedCapacity uint32  // mAh
	Temperature      float32 // celsius
	CellCount        uint8
	CapacityPercent  uint8
	BatteryState     uint64
}

// SmartBatterySingleVoltage carries per-cell voltages.
type SmartBatterySingleVoltage struct {
	Index        uint8
	CellCount    uint8
	CellVoltages []float32 // volts
}

func DecodeSmartBatteryGroup(body []byte) *SmartBatteryGroup {
	c := layout.NewCursor(body)
	g := &SmartBatteryGroup{}
	switch c.U8() {
	case 1:
		s := &SmartBatteryStatic{
			Index:            c.U8(),
			DesignedCapacity: c.U32(),
			LoopTimes:        c.U16(),
			FullVoltage:      c.U32(),
		}
		c.Skip(2)
		s.SerialNumber = c.U16()
		c.Skip(15)
		copy(s.VersionNumber[:], c.Bytes(8))
		s.BatteryLife = c.U8()
		s.BatteryType = c.U8()
		g.Static = s
	case 2:
		d := &SmartBatteryDynamic{Index: c.U8()}
		d.CurrentVoltage = float32(c.I32()) / 1000
		amps := float32(c.I32()) / 1000
		if amps < 0 {
			amps = -amps
		}
		d.CurrentCurrent = amps
		d.FullCapacity = c.U32()
		d.RemainedCapacity = c.U32()
		d.Temperature = float32(c.I16()) / 10
		d.CellCount = c.U8()
		d.CapacityPercent = c.U8()
		d.BatteryState = c.U64()
		g.Dynamic = d
	case 3:
		v := &SmartBatterySingleVoltage{
			Index:     c.U8(),
			CellCount: c.U8(),
		}
		v.CellVoltages = make([]float32, 0, v.CellCount)
		for i := 0; i < int(v.CellCount); i++ {
			v.CellVoltages = append(v.CellVoltages, float32(c.U16())/1000)
		}
		g.SingleVoltage = v
	}
	return g
}
