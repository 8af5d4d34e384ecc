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
	"math"
)

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// subByteField extracts the bits of b selected by mask and shifts them
// down to the least significant position. The mask must be contiguous.
func subByteField(b, mask uint8) uint8 {
	b &= mask
	for mask != 0 && mask&0x01 == 0 {
		b >>= 1
		mask >>= 1
	}
	return b
}

func bit(b, mask uint8) bool {
	return subByteField(b, mask) == 1
}
