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

package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dji.tools/djilog/pkg/frame"
)

func sampleFrames() []*frame.Frame {
	first := &frame.Frame{Time: time.Date(2016, 11, 7, 9, 0, 0, 0, time.UTC)}
	first.OSD.Latitude = 22.53
	first.OSD.Longitude = 113.95
	first.OSD.Height = 10.5
	first.Battery.ChargeLevel = 95
	first.Recover.AircraftName = "Voyager"

	second := &frame.Frame{Time: first.Time.Add(time.Second)}
	second.OSD.Latitude = 22.54
	second.OSD.Longitude = 113.96
	second.OSD.Height = 12
	second.OSD.Distance = 120.5
	second.Battery.ChargeLevel = 94
	second.Recover.AircraftName = "Voyager"
	return []*frame.Frame{first, second}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, WriteCSV(&buf, sampleFrames()))

	rows, err := csv.NewReader(&buf).ReadAll()
	assert.Nil(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, csvColumns, rows[0])
	assert.Len(t, rows[1], len(csvColumns))
	assert.Equal(t, "2016-11-07T09:00:00.000Z", rows[1][0])
	assert.Equal(t, "22.53", rows[1][2])
	assert.Equal(t, "113.95", rows[1][3])
	assert.Equal(t, "10.5", rows[1][4])
	assert.Equal(t, "95", rows[1][30])
	assert.Equal(t, "Voyager", rows[1][52])
}

func TestWriteCSVZeroTime(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, WriteCSV(&buf, []*frame.Frame{{}}))
	rows, err := csv.NewReader(&buf).ReadAll()
	assert.Nil(t, err)
	assert.Equal(t, "", rows[1][0])
	assert.Equal(t, "", rows[1][50])
}

func TestWriteGeoJSON(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, WriteGeoJSON(&buf, sampleFrames()))

	var fc map[string]interface{}
	assert.Nil(t, json.Unmarshal(buf.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc["type"])

	features := fc["features"].([]interface{})
	assert.Len(t, features, 3)

	line := features[0].(map[string]interface{})["geometry"].(map[string]interface{})
	assert.Equal(t, "LineString", line["type"])
	coords := line["coordinates"].([]interface{})
	assert.Len(t, coords, 2)
	point := coords[0].([]interface{})
	assert.Equal(t, 113.95, point[0])
	assert.Equal(t, 22.53, point[1])
}

func TestWriteGeoJSONSkipsUnpositionedFrames(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, WriteGeoJSON(&buf, []*frame.Frame{{}}))
	var fc map[string]interface{}
	assert.Nil(t, json.Unmarshal(buf.Bytes(), &fc))
	assert.Empty(t, fc["features"])
}

func TestWriteKML(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, WriteKML(&buf, sampleFrames()))
	out := buf.String()
	assert.Contains(t, out, "<kml")
	assert.Contains(t, out, "Voyager")
	assert.Contains(t, out, "relativeToGround")
	assert.Contains(t, out, "113.95")
}

func TestWriteImages(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "moments")
	images := [][]byte{
		{0xFF, 0xD8, 0x01, 0xFF, 0xD9},
		{0xFF, 0xD8, 0x02, 0xFF, 0xD9},
	}
	paths, err := WriteImages(dir, images)
	assert.Nil(t, err)
	assert.Len(t, paths, 2)
	for i, p := range paths {
		data, err := ioutil.ReadFile(p)
		assert.Nil(t, err)
		assert.Equal(t, images[i], data)
	}
	_, err = os.Stat(filepath.Join(dir, "moment_01.jpeg"))
	assert.Nil(t, err)
}
