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

// FlightMode is the flight controller mode reported by OSD records.
type FlightMode uint8

const (
	ModeManual          FlightMode = 0
	ModeAtti            FlightMode = 1
	ModeAttiCourseLock  FlightMode = 2
	ModeAttiHover       FlightMode = 3
	ModeHover           FlightMode = 4
	ModeGPSBlake        FlightMode = 5
	ModeGPSAtti         FlightMode = 6
	ModeGPSCourseLock   FlightMode = 7
	ModeGPSHomeLock     FlightMode = 8
	ModeGPSHotPoint     FlightMode = 9
	ModeAssistedTakeoff FlightMode = 10
	ModeAutoTakeoff     FlightMode = 11
	ModeAutoLanding     FlightMode = 12
	ModeAttiLanding     FlightMode = 13
	ModeGPSWaypoint     FlightMode = 14
	ModeGoHome          FlightMode = 15
	ModeClickGo         FlightMode = 16
	ModeJoystick        FlightMode = 17
	ModeAttiWristband   FlightMode = 18
	ModeCinematic       FlightMode = 19
	ModeAttiLimited     FlightMode = 23
	ModeDraw            FlightMode = 24
	ModeGPSFollowMe     FlightMode = 25
	ModeActiveTrack     FlightMode = 26
	ModeTapFly          FlightMode = 27
	ModePano            FlightMode = 28
	ModeFarming         FlightMode = 29
	ModeFPV             FlightMode = 30
	ModeGPSSport        FlightMode = 31
	ModeGPSNovice       FlightMode = 32
	ModeConfirmLanding  FlightMode = 33
	ModeTerrainTracking FlightMode = 35
	ModeNaviAdvGoHome   FlightMode = 36
	ModeNaviAdvLanding  FlightMode = 37
	ModeTripod          FlightMode = 38
	ModeTrackHeadlock   FlightMode = 39
	ModeEngineStart     FlightMode = 41
	ModeGPSGentle       FlightMode = 43
)

var flightModeNames = map[FlightMode]string{
	ModeManual:          "Manual",
	ModeAtti:            "Atti",
	ModeAttiCourseLock:  "AttiCourseLock",
	ModeAttiHover:       "AttiHover",
	ModeHover:           "Hover",
	ModeGPSBlake:        "GPSBlake",
	ModeGPSAtti:         "GPSAtti",
	ModeGPSCourseLock:   "GPSCourseLock",
	ModeGPSHomeLock:     "GPSHomeLock",
	ModeGPSHotPoint:     "GPSHotPoint",
	ModeAssistedTakeoff: "AssistedTakeoff",
	ModeAutoTakeoff:     "AutoTakeoff",
	ModeAutoLanding:     "AutoLanding",
	ModeAttiLanding:     "AttiLanding",
	ModeGPSWaypoint:     "GPSWaypoint",
	ModeGoHome:          "GoHome",
	ModeClickGo:         "ClickGo",
	ModeJoystick:        "Joystick",
	ModeAttiWristband:   "GPSAttiWristband",
	ModeCinematic:       "Cinematic",
	ModeAttiLimited:     "AttiLimited",
	ModeDraw:            "Draw",
	ModeGPSFollowMe:     "GPSFollowMe",
	ModeActiveTrack:     "ActiveTrack",
	ModeTapFly:          "TapFly",
	ModePano:            "Pano",
	ModeFarming:         "Farming",
	ModeFPV:             "FPV",
	ModeGPSSport:        "GPSSport",
	ModeGPSNovice:       "GPSNovice",
	ModeConfirmLanding:  "ConfirmLanding",
	ModeTerrainTracking: "TerrainTracking",
	ModeNaviAdvGoHome:   "NaviAdvGoHome",
	ModeNaviAdvLanding:  "NaviAdvLanding",
	ModeTripod:          "Tripod",
	ModeTrackHeadlock:   "TrackHeadlock",
	ModeEngineStart:     "EngineStart",
	ModeGPSGentle:       "GPSGentle",
}

func (m FlightMode) String() string {
	if name, ok := flightModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(m))
}

// AppCommand is the last app-issued command observed by the flight
// controller.
type AppCommand uint8

var appCommandNames = map[AppCommand]string{
	1:  "AutoFly",
	2:  "AutoLanding",
	3:  "HomePointNow",
	4:  "HomePointHot",
	5:  "HomePointLock",
	6:  "GoHome",
	7:  "StartMotor",
	8:  "StopMotor",
	9:  "Calibration",
	10: "DeformProtecClose",
	11: "DeformProtecOpen",
	12: "DropGoHome",
	13: "DropTakeOff",
	14: "DropLanding",
	15: "DynamicHomePointOpen",
	16: "DynamicHomePointClose",
	17: "FollowFunctionOpen",
	18: "FollowFunctionClose",
	19: "IOCOpen",
	20: "IOCClose",
	21: "DropCalibration",
	22: "PackMode",
	23: "UnPackMode",
	24: "EnterManualMode",
	25: "StopDeform",
	28: "DownDeform",
	29: "UpDeform",
	30: "ForceLanding",
	31: "ForceLanding2",
}

func (a AppCommand) String() string {
	if name, ok := appCommandNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(a))
}

// GroundOrSky reports whether the aircraft is airborne.
type GroundOrSky uint8

func (g GroundOrSky) String() string {
	switch g {
	case 0, 1:
		return "Ground"
	case 2, 3:
		return "Sky"
	}
	return fmt.Sprintf("Unknown(%d)", uint8(g))
}

// Airborne reports whether the value denotes flight.
func (g GroundOrSky) Airborne() bool {
	return g == 2 || g == 3
}

// GoHomeStatus is the phase of an active return-to-home.
type GoHomeStatus uint8

var goHomeStatusNames = map[GoHomeStatus]string{
	0: "Standby",
	1: "Preascending",
	2: "Align",
	3: "Ascending",
	4: "Cruise",
	5: "Braking",
	6: "Bypassing",
}

func (s GoHomeStatus) String() string {
	if name, ok := goHomeStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(s))
}

// BatteryType distinguishes smart from non-smart packs.
type BatteryType uint8

func (b BatteryType) String() string {
	switch b {
	case 1:
		return "NonSmart"
	case 2:
		return "Smart"
	}
	return fmt.Sprintf("Unknown(%d)", uint8(b))
}

// FlightAction is the automatic action the flight controller is
// executing, if any.
type FlightAction uint8

var flightActionNames = map[FlightAction]string{
	0:  "None",
	1:  "WarningPowerGoHome",
	2:  "WarningPowerLanding",
	3:  "SmartPowerGoHome",
	4:  "SmartPowerLanding",
	5:  "LowVoltageLanding",
	6:  "LowVoltageGoHome",
	7:  "SeriousLowVoltageLanding",
	8:  "RCOnekeyGoHome",
	9:  "RCAssistantTakeoff",
	10: "RCAutoTakeoff",
	11: "RCAutoLanding",
	12: "AppAutoGoHome",
	13: "AppAutoLanding",
	14: "AppAutoTakeoff",
	15: "OutOfControlGoHome",
	16: "ApiAutoTakeoff",
	17: "ApiAutoLanding",
	18: "ApiAutoGoHome",
	19: "AvoidGroundLanding",
	20: "AirportAvoidLanding",
	21: "TooCloseGoHomeLanding",
	22: "TooFarGoHomeLanding",
	23: "AppWPMission",
	24: "WPAutoTakeoff",
	25: "GoHomeAvoid",
	26: "PGoHomeFinish",
	27: "VertLowLimitLanding",
	28: "BatteryForceLanding",
	29: "MCProtectGoHome",
	30: "MotorblockLanding",
	31: "AppRequestForceLanding",
	32: "FakeBatteryLanding",
	33: "RTHComingObstacleLanding",
	34: "IMUErrorRTH",
}

func (a FlightAction) String() string {
	if name, ok := flightActionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(a))
}

// MotorStartFailedCause reports why the motors refused to start.
type MotorStartFailedCause uint8

var motorStartFailedCauseNames = map[MotorStartFailedCause]string{
	0:   "None",
	1:   "CompassError",
	2:   "AssistantProtected",
	3:   "DeviceLocked",
	4:   "DistanceLimit",
	5:   "IMUNeedCalibration",
	6:   "IMUSNError",
	7:   "IMUWarning",
	8:   "CompassCalibrating",
	9:   "AttiError",
	10:  "NoviceProtected",
	11:  "BatteryCellError",
	12:  "BatteryCommuniteError",
	13:  "SeriousLowVoltage",
	14:  "SeriousLowPower",
	15:  "LowVoltage",
	16:  "TempureVolLow",
	17:  "SmartLowToLand",
	18:  "BatteryNotReady",
	19:  "SimulatorMode",
	20:  "PackMode",
	21:  "AttitudeAbnormal",
	22:  "UnActive",
	23:  "FlyForbiddenError",
	24:  "BiasError",
	25:  "EscError",
	26:  "ImuInitError",
	27:  "SystemUpgrade",
	28:  "SimulatorStarted",
	29:  "ImuingError",
	30:  "AttiAngleOver",
	31:  "GyroscopeError",
	32:  "AcceleratorError",
	33:  "CompassFailed",
	34:  "BarometerError",
	35:  "BarometerNegative",
	36:  "CompassBig",
	37:  "GyroscopeBiasBig",
	38:  "AcceleratorBiasBig",
	39:  "CompassNoiseBig",
	40:  "BarometerNoiseBig",
	41:  "InvalidSn",
	44:  "FlashOperating",
	45:  "GPSdisconnect",
	47:  "SDCardException",
	61:  "IMUNoconnection",
	62:  "RCCalibration",
	63:  "RCCalibrationException",
	64:  "RCCalibrationUnfinished",
	65:  "RCCalibrationException2",
	66:  "RCCalibrationException3",
	67:  "AircraftTypeMismatch",
	68:  "FoundUnfinishedModule",
	70:  "CyroAbnormal",
	71:  "BaroAbnormal",
	72:  "CompassAbnormal",
	73:  "GPSAbnormal",
	74:  "NSAbnormal",
	75:  "TopologyAbnormal",
	76:  "RCNeedCali",
	77:  "InvalidFloat",
	78:  "M600BatTooLittle",
	79:  "M600BatAuthErr",
	80:  "M600BatCommErr",
	81:  "M600BatDifVoltLarge1",
	82:  "M600BatDifVoltLarge2",
	83:  "InvalidVersion",
	84:  "GimbalGyroAbnormal",
	85:  "GimbalESCPitchNonData",
	86:  "GimbalESCRollNonData",
	87:  "GimbalESCYawNonData",
	88:  "GimbalFirmwIsUpdating",
	89:  "GimbalDisorder",
	90:  "GimbalPitchShock",
	91:  "GimbalRollShock",
	92:  "GimbalYawShock",
	93:  "IMUcCalibrationFinished",
	101: "BattVersionError",
	102: "RTKBadSignal",
	103: "RTKDeviationError",
	112: "ESCCalibrating",
	113: "GPSSignInvalid",
	114: "GimbalIsCalibrating",
	115: "LockByApp",
	116: "StartFlyHeightError",
	117: "ESCVersionNotMatch",
	118: "IMUOriNotMatch",
	119: "StopByApp",
	120: "CompassIMUOriNotMatch",
	122: "CompassIMUOriNotMatch",
	123: "BatteryOverTemperature",
	124: "BatteryInstallError",
	125: "BeImpact",
}

func (c MotorStartFailedCause) String() string {
	if name, ok := motorStartFailedCauseNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(c))
}

// NonGPSCause reports why the controller is not in a GPS mode.
type NonGPSCause uint8

var nonGPSCauseNames = map[NonGPSCause]string{
	0: "Already",
	1: "Forbid",
	2: "GpsNumNonEnough",
	3: "GpsHdopLarge",
	4: "GpsPositionNonMatch",
	5: "SpeedErrorLarge",
	6: "YawErrorLarge",
	7: "CompassErrorLarge",
}

func (c NonGPSCause) String() string {
	if name, ok := nonGPSCauseNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(c))
}

// ImuInitFailReason reports why IMU initialization failed.
type ImuInitFailReason uint8

var imuInitFailReasonNames = map[ImuInitFailReason]string{
	0:  "MonitorError",
	1:  "CollectingData",
	3:  "AcceDead",
	4:  "CompassDead",
	5:  "BarometerDead",
	6:  "BarometerNegative",
	7:  "CompassModTooLarge",
	8:  "GyroBiasTooLarge",
	9:  "AcceBiasTooLarge",
	10: "CompassNoiseTooLarge",
	11: "BarometerNoiseTooLarge",
	12: "WaitingMcStationary",
	13: "AcceMoveTooLarge",
	14: "McHeaderMoved",
	15: "McVibrated",
}

func (r ImuInitFailReason) String() string {
	if name, ok := imuInitFailReasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(r))
}

// DroneType is the airframe reported by OSD records from version 2 on.
type DroneType uint8

var droneTypeNames = map[DroneType]string{
	0:  "None",
	1:  "Inspire1",
	2:  "Phantom3Advanced",
	3:  "Phantom3Pro",
	4:  "Phantom3Standard",
	5:  "OpenFrame",
	6:  "AceOne",
	7:  "WKM",
	8:  "Naza",
	9:  "A2",
	10: "A3",
	11: "Phantom4",
	14: "Matrice600",
	15: "Phantom34K",
	16: "MavicPro",
	17: "Inspire2",
	18: "Phantom4Pro",
	20: "N3",
	21: "Spark",
	23: "Matrice600Pro",
	24: "MavicAir",
	25: "Matrice200",
	27: "Phantom4Advanced",
	28: "Matrice210",
	29: "Phantom3SE",
	30: "Matrice210RTK",
	36: "Phantom4ProV2",
	41: "Mavic2",
	51: "Mavic2Enterprise",
	58: "MavicAir2",
	60: "Matrice300RTK",
	63: "Mini2",
	77: "Mavic3Enterprise",
	84: "Mavic3Pro",
	89: "Matrice350RTK",
	93: "Mini4Pro",
	94: "Avata2",
}

func (d DroneType) String() string {
	if name, ok := droneTypeNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(d))
}
