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

// CenterBattery is the per-cell center battery record.
type CenterBattery struct {
	RelativeCapacity   uint8
	Voltage            float32 // volts
	CurrentCapacity    uint16  // mAh
	FullCapacity       uint16  // mAh
	Life               uint8
	NumberOfDischarges uint16
	ErrorType          uint32
	Current            float32 // amperes

	CellVoltages [6]float32 // volts

	SerialNumber uint16
	ProductDate  uint16

	// Fields below appear from version 8 on.
	Temperature      float32 // celsius
	ConnectState     uint8
	SumLearnCount    uint16
	LatestLearnCycle uint16
	BatteryOnCharge  bool
}

func DecodeCenterBattery(body []byte, version int) *CenterBattery {
	c := layout.NewCursor(body)
	b := &CenterBattery{
		RelativeCapacity:   c.U8(),
		Voltage:            float32(c.U16()) / 1000,
		CurrentCapacity:    c.U16(),
		FullCapacity:       c.U16(),
		Life:               c.U8(),
		NumberOfDischarges: c.U16(),
		ErrorType:          c.U32(),
		Current:            float32(c.I16()) / 1000,
	}
	for i := range b.CellVoltages {
		b.CellVoltages[i] = float32(c.U16()) / 1000
	}
	b.SerialNumber = c.U16()
	b.ProductDate = c.U16()
	if version >= 8 {
		b.Temperature = float32(c.U16())/10 - 273.15
		b.ConnectState = c.U8()
		b.SumLearnCount = c.U16()
		b.LatestLearnCycle = c.U16()
		b.BatteryOnCharge = bit(c.U8(), 0x01)
	}
	return b
}

// SmartBattery is the smart battery prediction record.
type SmartBattery struct {
	UsefulTime      uint16
	GoHomeTime      uint16
	LandTime        uint16
	GoHomeBattery   uint16
	LandBattery     uint16
	SafeFlyRadius   float32
	VolumeConsume   float32
	Status          uint32
	GoHomeStatus    BatteryGoHomeStatus
	GoHomeCountdown uint8
	Voltage         float32 // volts
	Percent         uint8

	LowWarning               uint8
	LowWarningGoHome         uint8
	SeriousLowWarning        uint8
	SeriousLowWarningLanding uint8
}

func DecodeSmartBattery(body []byte) *SmartBattery {
	c := layout.NewCursor(body)
	s := &SmartBattery{
		UsefulTime:    c.U16(),
		GoHomeTime:    c.U16(),
		LandTime:      c.U16(),
		GoHomeBattery: c.U16(),
		LandBattery:   c.U16(),
		SafeFlyRadius: c.F32(),
		VolumeConsume: c.F32(),
		Status:        c.U32(),
		GoHomeStatus:  BatteryGoHomeStatus(c.U8()),
	}
	s.GoHomeCountdown = c.U8()
	s.Voltage = float32(c.U16()) / 1000
	s.Percent = c.U8()

	b := c.U8()
	s.LowWarning = subByteField(b, 0x7F)
	s.LowWarningGoHome = subByteField(b, 0x80)

	b = c.U8()
	s.SeriousLowWarning = subByteField(b, 0x7F)
	s.SeriousLowWarningLanding = subByteField(b, 0x80)
	return s
}

// BatteryGoHomeStatus is the battery-driven go-home state.
type BatteryGoHomeStatus uint8

func (s BatteryGoHomeStatus) String() string {
	switch s {
	case 0:
		return "NonGoHome"
	case 1:
		return "GoHome"
	case 2:
		return "GoHomeAlready"
	}
	return fmt.Sprintf("Unknown(%d)", uint8(s))
}
