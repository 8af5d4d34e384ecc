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

package keychain

import (
	"encoding/json"
	"fmt"
)

// FeaturePoint identifies one key domain of the log encryption scheme.
// Every encrypted record type belongs to exactly one feature point and
// is decrypted with that feature point's key.
type FeaturePoint uint16

const (
	FeatureBase FeaturePoint = iota + 1
	FeatureVision
	FeatureWaypoint
	FeatureAgriculture
	FeatureAirLink
	FeatureAfterSales
	FeatureFlyCustom
	FeaturePlaintext
	FeatureFlightHub
	FeatureGimbal
	FeatureRC
	FeatureCamera
	FeatureBattery
	FeatureFlySafe
	FeatureSecurity
)

var featurePointStrings = map[FeaturePoint]string{
	FeatureBase:        "FR_Standardization_Feature_Base_1",
	FeatureVision:      "FR_Standardization_Feature_Vision_2",
	FeatureWaypoint:    "FR_Standardization_Feature_Waypoint_3",
	FeatureAgriculture: "FR_Standardization_Feature_Agriculture_4",
	FeatureAirLink:     "FR_Standardization_Feature_AirLink_5",
	FeatureAfterSales:  "FR_Standardization_Feature_AfterSales_6",
	FeatureFlyCustom:   "FR_Standardization_Feature_DJIFlyCustom_7",
	FeaturePlaintext:   "FR_Standardization_Feature_Plaintext_8",
	FeatureFlightHub:   "FR_Standardization_Feature_FlightHub_9",
	FeatureGimbal:      "FR_Standardization_Feature_Gimbal_10",
	FeatureRC:          "FR_Standardization_Feature_RC_11",
	FeatureCamera:      "FR_Standardization_Feature_Camera_12",
	FeatureBattery:     "FR_Standardization_Feature_Battery_13",
	FeatureFlySafe:     "FR_Standardization_Feature_FlySafe_14",
	FeatureSecurity:    "FR_Standardization_Feature_Security_15",
}

var featurePointFromString = func() map[string]FeaturePoint {
	m := make(map[string]FeaturePoint, len(featurePointStrings))
	for fp, s := range featurePointStrings {
		m[s] = fp
	}
	return m
}()

func (fp FeaturePoint) String() string {
	if s, ok := featurePointStrings[fp]; ok {
		return s
	}
	return fmt.Sprintf("FR_Standardization_Feature_Unknown_%d", uint16(fp))
}

func (fp FeaturePoint) MarshalJSON() ([]byte, error) {
	s, ok := featurePointStrings[fp]
	if !ok {
		return nil, BadResponseError{Reason: fmt.Sprintf("unknown feature point code %d", uint16(fp))}
	}
	return json.Marshal(s)
}

func (fp *FeaturePoint) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := featurePointFromString[s]
	if !ok {
		return BadResponseError{Reason: fmt.Sprintf("unknown feature point %q", s)}
	}
	*fp = parsed
	return nil
}

// FeaturePointForRecordType maps a record type code to its feature
// point. A handful of types moved under the base or after-sales keys
// in version 13, so the log version participates in the mapping.
func FeaturePointForRecordType(recordType uint8, version int) FeaturePoint {
	v13 := version == 13
	switch recordType {
	case 1, 2, 6, 13, 14, 15, 40, 58, 59, 63:
		return FeatureBase
	case 3:
		if v13 {
			return FeatureBase
		}
		return FeatureGimbal
	case 4, 11, 29, 33:
		if v13 {
			return FeatureBase
		}
		return FeatureRC
	case 5, 9, 10, 20, 24, 30, 54:
		return FeatureFlyCustom
	case 7, 8:
		if v13 {
			return FeatureBase
		}
		return FeatureBattery
	case 12, 16, 19, 26, 27:
		return FeatureAfterSales
	case 17, 18:
		return FeatureVision
	case 21, 41, 43, 44, 45, 46, 47, 48:
		return FeatureAgriculture
	case 22:
		if v13 {
			return FeatureAfterSales
		}
		return FeatureBattery
	case 25:
		if v13 {
			return FeatureBase
		}
		return FeatureCamera
	case 28, 51, 52:
		if v13 {
			return FeatureAfterSales
		}
		return FeatureFlySafe
	case 31, 32, 34, 35, 36, 38, 39:
		return FeatureWaypoint
	case 49:
		return FeatureAirLink
	case 53:
		if v13 {
			return FeatureAfterSales
		}
		return FeatureFlightHub
	case 62:
		return FeatureRC
	case 50, 55, 56, 254:
		return FeaturePlaintext
	default:
		return FeaturePlaintext
	}
}

// RecordTypesForFeaturePoint returns every record type code assigned
// to the feature point for the given log version.
func RecordTypesForFeaturePoint(fp FeaturePoint, version int) []uint8 {
	var types []uint8
	for code := 0; code < 256; code++ {
		if FeaturePointForRecordType(uint8(code), version) == fp {
			types = append(types, uint8(code))
		}
	}
	return types
}
