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
	"time"

	"dji.tools/djilog/pkg/layout"
)

// Recover repeats aircraft identity inside the record stream so a log
// truncated before its details area still identifies the flight.
type Recover struct {
	ProductType  layout.ProductType
	AppPlatform  layout.Platform
	AppVersion   string
	AircraftSN   string
	AircraftName string
	Timestamp    time.Time
	CameraSN     string
	RCSN         string
	BatterySN    string
}

// DecodeRecover decodes a Recover body. Serial fields are 10 bytes
// through version 7 and 16 bytes after.
func DecodeRecover(body []byte, version int) *Recover {
	snLen := 16
	if version <= 7 {
		snLen = 10
	}
	c := layout.NewCursor(body)
	r := &Recover{
		ProductType: layout.ProductType(c.U8()),
		AppPlatform: layout.Platform(c.U8()),
	}
	v := c.Bytes(3)
	r.AppVersion = fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
	r.AircraftSN = c.FixedString(snLen)
	r.AircraftName = c.FixedString(32)
	r.Timestamp = time.Unix(c.I64(), 0).UTC()
	r.CameraSN = c.FixedString(snLen)
	r.RCSN = c.FixedString(snLen)
	r.BatterySN = c.FixedString(snLen)
	return r
}
