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
	"testing"

	"github.com/stretchr/testify/assert"

	"dji.tools/djilog/pkg/layout"
)

func sampleSegments() []layout.AuxiliarySegment {
	return []layout.AuxiliarySegment{
		{Entries: []layout.AuxiliaryEntry{
			{FeaturePoint: uint16(FeatureBase), Version: 1, Data: []byte{0x01, 0x02}},
			{FeaturePoint: uint16(FeatureGimbal), Version: 1, Data: []byte{0x03}},
		}},
		{Entries: []layout.AuxiliaryEntry{
			{FeaturePoint: uint16(FeatureBase), Version: 2, Data: []byte{0x04}},
		}},
	}
}

func TestNewRequest(t *testing.T) {
	r := NewRequest(13, sampleSegments(), RequestOptions{})
	assert.Equal(t, 13, r.Version)
	assert.Equal(t, 2, r.SegmentCount())
	assert.Equal(t, "AQI=", r.Keychains[0][0].AESCiphertext)
	assert.Equal(t, FeatureGimbal, r.Keychains[0][1].FeaturePoint)
	assert.Nil(t, r.Department)
}

func TestNewRequestDeterministic(t *testing.T) {
	a, err := json.Marshal(NewRequest(13, sampleSegments(), RequestOptions{}))
	assert.Nil(t, err)
	b, err := json.Marshal(NewRequest(13, sampleSegments(), RequestOptions{}))
	assert.Nil(t, err)
	assert.Equal(t, a, b)
}

func TestRequestJSON(t *testing.T) {
	department := 5
	r := NewRequest(13, sampleSegments()[:1], RequestOptions{Department: &department})
	data, err := json.Marshal(r)
	assert.Nil(t, err)

	var decoded map[string]interface{}
	assert.Nil(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(13), decoded["version"])
	assert.Equal(t, float64(5), decoded["department"])
	assert.NotContains(t, decoded, "file_version")
	assert.Contains(t, string(data), "FR_Standardization_Feature_Base_1")
}

func TestFeaturePointRoundTrip(t *testing.T) {
	data, err := json.Marshal(FeatureBattery)
	assert.Nil(t, err)
	assert.Equal(t, `"FR_Standardization_Feature_Battery_13"`, string(data))

	var fp FeaturePoint
	assert.Nil(t, json.Unmarshal(data, &fp))
	assert.Equal(t, FeatureBattery, fp)
}

func TestFeaturePointUnmarshalUnknown(t *testing.T) {
	var fp FeaturePoint
	err := json.Unmarshal([]byte(`"FR_Standardization_Feature_Bogus_99"`), &fp)
	assert.NotNil(t, err)
}

func TestFeaturePointForRecordTypeVersioned(t *testing.T) {
	// Gimbal and battery types fold under the base key in version 13.
	assert.Equal(t, FeatureGimbal, FeaturePointForRecordType(3, 12))
	assert.Equal(t, FeatureBase, FeaturePointForRecordType(3, 13))
	assert.Equal(t, FeatureBattery, FeaturePointForRecordType(7, 12))
	assert.Equal(t, FeatureBase, FeaturePointForRecordType(7, 13))
	assert.Equal(t, FeatureBase, FeaturePointForRecordType(1, 13))
	assert.Equal(t, FeaturePlaintext, FeaturePointForRecordType(200, 13))
}

func TestRecordTypesForFeaturePoint(t *testing.T) {
	types := RecordTypesForFeaturePoint(FeatureVision, 13)
	assert.Equal(t, []uint8{17, 18}, types)
	for _, code := range RecordTypesForFeaturePoint(FeatureBase, 13) {
		assert.Equal(t, FeatureBase, FeaturePointForRecordType(code, 13))
	}
}
