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
	"encoding/json"
	"io"

	"dji.tools/djilog/pkg/frame"
)

type geoFeatureCollection struct {
	Type     string       `json:"type"`
	Features []geoFeature `json:"features"`
}

type geoFeature struct {
	Type       string                 `json:"type"`
	Geometry   geoGeometry            `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

type geoGeometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

// WriteGeoJSON writes a FeatureCollection holding the track as one
// LineString plus one Point per positioned frame. Frames without a
// fix are left out of both. The LineString is only written when at
// least two frames are positioned.
func WriteGeoJSON(w io.Writer, frames []*frame.Frame) error {
	var track [][]float64
	features := make([]geoFeature, 0, len(frames)+1)

	for _, f := range frames {
		if f.OSD.Latitude == 0 && f.OSD.Longitude == 0 {
			continue
		}
		coord := []float64{f.OSD.Longitude, f.OSD.Latitude, float64(f.OSD.Height)}
		track = append(track, coord)
		props := map[string]interface{}{
			"height":           f.OSD.Height,
			"altitude":         f.OSD.Altitude,
			"horizontal_speed": f.OSD.HorizontalSpeed,
			"z_speed":          f.OSD.SpeedZ,
			"distance":         f.OSD.Distance,
			"flyc_state":       f.OSD.FlycState.String(),
			"gps_num":          f.OSD.GPSNum,
			"battery":          f.Battery.ChargeLevel,
		}
		if !f.Time.IsZero() {
			props["time"] = csvTime(f.Time)
		}
		features = append(features, geoFeature{
			Type:       "Feature",
			Geometry:   geoGeometry{Type: "Point", Coordinates: coord},
			Properties: props,
		})
	}

	all := make([]geoFeature, 0, len(features)+1)
	if len(track) >= 2 {
		all = append(all, geoFeature{
			Type:       "Feature",
			Geometry:   geoGeometry{Type: "LineString", Coordinates: track},
			Properties: map[string]interface{}{"name": "track"},
		})
	}
	all = append(all, features...)

	enc := json.NewEncoder(w)
	return enc.Encode(geoFeatureCollection{Type: "FeatureCollection", Features: all})
}
