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
	"strings"

	"dji.tools/djilog/pkg/layout"
)

// AppTip is an informational app message covering the whole body.
type AppTip struct {
	Message string
}

// AppWarn is a warning app message covering the whole body.
type AppWarn struct {
	Message string
}

// AppSeriousWarn is a critical app message covering the whole body.
type AppSeriousWarn struct {
	Message string
}

func appString(body []byte) string {
	return strings.TrimRight(string(body), "\x00")
}

func DecodeAppTip(body []byte) *AppTip {
	return &AppTip{Message: appString(body)}
}

func DecodeAppWarn(body []byte) *AppWarn {
	return &AppWarn{Message: appString(body)}
}

func DecodeAppSeriousWarn(body []byte) *AppSeriousWarn {
	return &AppSeriousWarn{Message: appString(body)}
}

// AppGPS is the phone's own position, already in degrees.
type AppGPS struct {
	Longitude float64 // degrees
	Latitude  float64 // degrees
}

func DecodeAppGPS(body []byte) *AppGPS {
	c := layout.NewCursor(body)
	return &AppGPS{
		Longitude: c.F64(),
		Latitude:  c.F64(),
	}
}
