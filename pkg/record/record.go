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
)

// Type is the record type byte that opens every record envelope.
type Type uint8

const (
	TypeOSD               Type = 1
	TypeHome              Type = 2
	TypeGimbal            Type = 3
	TypeRC                Type = 4
	TypeCustom            Type = 5
	TypeDeform            Type = 6
	TypeCenterBattery     Type = 7
	TypeSmartBattery      Type = 8
	TypeAppTip            Type = 9
	TypeAppWarn           Type = 10
	TypeRCGPS             Type = 11
	TypeRecover           Type = 13
	TypeAppGPS            Type = 14
	TypeFirmware          Type = 15
	TypeSmartBatteryGroup Type = 22
	TypeAppSeriousWarn    Type = 24
	TypeCamera            Type = 25
	TypeOFDM              Type = 49
	TypeEnd               Type = 50
	TypeKeyStorage        Type = 55
	TypeKeyStorageRecover Type = 56
	TypeRCDisplayField    Type = 62
	TypeEndAlt            Type = 254

	// TypeJPEG marks embedded moment pictures. JPEG records carry no
	// type byte in the stream; the framer assigns this value when it
	// meets a raw FFD8 marker.
	TypeJPEG Type = 0xD8
)

var typeNames = map[Type]string{
	TypeOSD:               "OSD",
	TypeHome:              "Home",
	TypeGimbal:            "Gimbal",
	TypeRC:                "RC",
	TypeCustom:            "Custom",
	TypeDeform:            "Deform",
	TypeCenterBattery:     "CenterBattery",
	TypeSmartBattery:      "SmartBattery",
	TypeAppTip:            "AppTip",
	TypeAppWarn:           "AppWarn",
	TypeRCGPS:             "RCGPS",
	TypeRecover:           "Recover",
	TypeAppGPS:            "AppGPS",
	TypeFirmware:          "Firmware",
	TypeSmartBatteryGroup: "SmartBatteryGroup",
	TypeAppSeriousWarn:    "AppSeriousWarn",
	TypeCamera:            "Camera",
	TypeOFDM:              "OFDM",
	TypeEnd:               "End",
	TypeKeyStorage:        "KeyStorage",
	TypeKeyStorageRecover: "KeyStorageRecover",
	TypeRCDisplayField:    "RCDisplayField",
	TypeEndAlt:            "End",
	TypeJPEG:              "JPEG",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(t))
}

// Known reports whether the type byte opens a decodable record kind.
// The framer uses it to resync after a missing terminator.
func (t Type) Known() bool {
	_, ok := typeNames[t]
	return ok && t != TypeJPEG
}

// IsEnd reports whether the record closes the stream.
func (t Type) IsEnd() bool {
	return t == TypeEnd || t == TypeEndAlt
}

// Plaintext reports whether the record body stays unencrypted in
// v13+ logs.
func (t Type) Plaintext() bool {
	switch t {
	case TypeEnd, TypeEndAlt, TypeKeyStorage, TypeKeyStorageRecover, TypeJPEG:
		return true
	}
	return false
}

// Record is one decoded record. Type selects which of the kind fields
// is set; Raw always holds the plaintext body bytes, or the ciphertext
// when decryption was not possible.
type Record struct {
	Type   Type
	Offset int
	Raw    []byte

	OSD               *OSD
	Home              *Home
	Gimbal            *Gimbal
	RC                *RC
	Custom            *Custom
	Deform            *Deform
	CenterBattery     *CenterBattery
	SmartBattery      *SmartBattery
	SmartBatteryGroup *SmartBatteryGroup
	AppTip            *AppTip
	AppWarn           *AppWarn
	AppSeriousWarn    *AppSeriousWarn
	AppGPS            *AppGPS
	RCGPS             *RCGPS
	Recover           *Recover
	Firmware          *Firmware
	Camera            *Camera
	OFDM              *OFDM
	RCDisplayField    *RCDisplayField
	KeyStorage        *KeyStorage

	// JPEG holds the full image bytes for TypeJPEG records.
	JPEG []byte
}
