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
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"dji.tools/djilog/pkg/frame"
)

type kmlRoot struct {
	XMLName  xml.Name    `xml:"kml"`
	Xmlns    string      `xml:"xmlns,attr"`
	Document kmlDocument `xml:"Document"`
}

type kmlDocument struct {
	Name      string       `xml:"name"`
	Placemark kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name       string        `xml:"name"`
	LineString kmlLineString `xml:"LineString"`
}

type kmlLineString struct {
	Extrude      int    `xml:"extrude"`
	Tessellate   int    `xml:"tessellate"`
	AltitudeMode string `xml:"altitudeMode"`
	Coordinates  string `xml:"coordinates"`
}

// WriteKML writes the track as a single extruded placemark. The
// document name comes from the aircraft name of the first frame.
func WriteKML(w io.Writer, frames []*frame.Frame) error {
	var coords strings.Builder
	for _, f := range frames {
		if f.OSD.Latitude == 0 && f.OSD.Longitude == 0 {
			continue
		}
		fmt.Fprintf(&coords, "%s,%s,%s\n", f64(f.OSD.Longitude), f64(f.OSD.Latitude), f32(f.OSD.Height))
	}

	name := "flight"
	if len(frames) > 0 && frames[0].Recover.AircraftName != "" {
		name = frames[0].Recover.AircraftName
	}

	root := kmlRoot{
		Xmlns: "http://www.opengis.net/kml/2.2",
		Document: kmlDocument{
			Name: name,
			Placemark: kmlPlacemark{
				Name: "track",
				LineString: kmlLineString{
					Extrude:      1,
					Tessellate:   1,
					AltitudeMode: "relativeToGround",
					Coordinates:  coords.String(),
				},
			},
		},
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(root); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
