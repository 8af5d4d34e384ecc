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
	"time"

	"dji.tools/djilog/pkg/layout"
)

// Custom is the app-side bookkeeping record carrying the ground
// clock and the app's own speed and distance integration.
type Custom struct {
	IsPhoto  bool
	IsVideo  bool
	HSpeed   float32 // m/s
	Distance float32 // meters
	// UpdateTime is the app wall clock at the time of the record.
	UpdateTime time.Time
}

func DecodeCustom(body []byte) *Custom {
	c := layout.NewCursor(body)
	u := &Custom{
		IsPhoto:  c.U8() != 0,
		IsVideo:  c.U8() != 0,
		HSpeed:   c.F32(),
		Distance: c.F32(),
	}
	ms := c.I64()
	u.UpdateTime = time.UnixMilli(ms).UTC()
	return u
}
