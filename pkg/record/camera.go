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

// Camera is the camera state record.
type Camera struct {
	IsConnect             bool
	IsUSBConnect          bool
	TimerSyncState        uint8
	IsShootingSinglePhoto bool
	IsRecording           bool

	HasSDCard   bool
	SDCardState SDCardState
	IsUpgrading uint8

	IsHeat           bool
	IsCaptureDisable bool
	IsDDRStoring     bool
	ContiCapture     bool
	HDMIOutputStatus bool
	EncryptStatus    uint8

	FileSynState             bool
	RCBtnForbidState         bool
	GetFocusState            bool
	PanoTimelapseGimbalState bool
	IsEnableTrackingMode     bool

	WorkMode CameraWorkMode

	SDCardTotalCapacity  uint32 // MB
	SDCardRemainCapacity uint32 // MB
	RemainPhotoNum       uint32
	RemainVideoTimer     uint32 // seconds
	RecordTime           uint16 // seconds
	CameraType           uint8
}

func DecodeCamera(body []byte) *Camera {
	c := layout.NewCursor(body)
	cam := &Camera{}

	b := c.U8()
	cam.IsConnect = bit(b, 0x01)
	cam.IsUSBConnect = bit(b, 0x02)
	cam.TimerSyncState = subByteField(b, 0x04)
	cam.IsShootingSinglePhoto = bit(b, 0x38)
	cam.IsRecording = subByteField(b, 0xC0) != 0

	b = c.U8()
	cam.HasSDCard = bit(b, 0x02)
	cam.SDCardState = SDCardState(subByteField(b, 0x3C))
	cam.IsUpgrading = subByteField(b, 0x40)

	b = c.U8()
	cam.IsHeat = bit(b, 0x02)
	cam.IsCaptureDisable = bit(b, 0x04)
	cam.IsDDRStoring = bit(b, 0x08)
	cam.ContiCapture = bit(b, 0x10)
	cam.HDMIOutputStatus = bit(b, 0x20)
	cam.EncryptStatus = subByteField(b, 0xC0)

	b = c.U8()
	cam.FileSynState = bit(b, 0x01)
	cam.RCBtnForbidState = bit(b, 0x02)
	cam.GetFocusState = bit(b, 0x04)
	cam.PanoTimelapseGimbalState = bit(b, 0x08)
	cam.IsEnableTrackingMode = bit(b, 0x10)

	cam.WorkMode = CameraWorkMode(c.U8())
	cam.SDCardTotalCapacity = c.U32()
	cam.SDCardRemainCapacity = c.U32()
	cam.RemainPhotoNum = c.U32()
	cam.RemainVideoTimer = c.U32()
	cam.RecordTime = c.U16()
	cam.CameraType = c.U8()
	return cam
}

// SDCardState is the camera's SD card condition.
type SDCardState uint8

var sdCardStateNames = map[SDCardState]string{
	0:  "Normal",
	1:  "NoCard",
	2:  "InvalidCard",
	3:  "WriteProtected",
	4:  "Unformatted",
	5:  "Formatting",
	6:  "IllegalFileSys",
	8:  "Full",
	9:  "LowSpeed",
	11: "IndexMax",
	12: "Initialize",
	13: "SuggestFormat",
	14: "Repairing",
}

func (s SDCardState) String() string {
	if name, ok := sdCardStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(s))
}

// CameraWorkMode is the camera's active mode.
type CameraWorkMode uint8

var cameraWorkModeNames = map[CameraWorkMode]string{
	0: "Capture",
	1: "Recording",
	2: "Playback",
	3: "Transcode",
	4: "Tuning",
	5: "PowerSave",
	6: "Download",
	7: "XcodePlayback",
	8: "Broadcast",
}

func (m CameraWorkMode) String() string {
	if name, ok := cameraWorkModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(m))
}
