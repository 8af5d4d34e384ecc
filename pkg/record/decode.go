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

// decodeBody fills the kind field matching rec.Type from rec.Raw.
// Unknown types keep their raw bytes only.
func decodeBody(rec *Record, version int, product layout.ProductType) {
	switch rec.Type {
	case TypeOSD:
		rec.OSD = DecodeOSD(rec.Raw, version)
	case TypeHome:
		rec.Home = DecodeHome(rec.Raw, version)
	case TypeGimbal:
		rec.Gimbal = DecodeGimbal(rec.Raw, version)
	case TypeRC:
		rec.RC = DecodeRC(rec.Raw, version, product)
	case TypeCustom:
		rec.Custom = DecodeCustom(rec.Raw)
	case TypeDeform:
		rec.Deform = DecodeDeform(rec.Raw)
	case TypeCenterBattery:
		rec.CenterBattery = DecodeCenterBattery(rec.Raw, version)
	case TypeSmartBattery:
		rec.SmartBattery = DecodeSmartBattery(rec.Raw)
	case TypeSmartBatteryGroup:
		rec.SmartBatteryGroup = DecodeSmartBatteryGroup(rec.Raw)
	case TypeAppTip:
		rec.AppTip = DecodeAppTip(rec.Raw)
	case TypeAppWarn:
		rec.AppWarn = DecodeAppWarn(rec.Raw)
	case TypeAppSeriousWarn:
		rec.AppSeriousWarn = DecodeAppSeriousWarn(rec.Raw)
	case TypeAppGPS:
		rec.AppGPS = DecodeAppGPS(rec.Raw)
	case TypeRCGPS:
		rec.RCGPS = DecodeRCGPS(rec.Raw)
	case TypeRecover:
		rec.Recover = DecodeRecover(rec.Raw, version)
	case TypeFirmware:
		rec.Firmware = DecodeFirmware(rec.Raw)
	case TypeCamera:
		rec.Camera = DecodeCamera(rec.Raw)
	case TypeOFDM:
		rec.OFDM = DecodeOFDM(rec.Raw)
	case TypeRCDisplayField:
		rec.RCDisplayField = DecodeRCDisplayField(rec.Raw)
	case TypeKeyStorage:
		rec.KeyStorage = DecodeKeyStorage(rec.Raw)
	case TypeJPEG:
		rec.JPEG = rec.Raw
	}
}
