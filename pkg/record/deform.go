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

// Deform is the landing gear / arm deformation record.
type Deform struct {
	IsDeformProtected bool
	DeformStatus      DeformStatus
	DeformMode        DeformMode
}

func DecodeDeform(body []byte) *Deform {
	if len(body) == 0 {
		return &Deform{}
	}
	b := body[0]
	return &Deform{
		IsDeformProtected: bit(b, 0x01),
		DeformStatus:      DeformStatus(subByteField(b, 0x0E)),
		DeformMode:        DeformMode(subByteField(b, 0x30)),
	}
}

// DeformMode is the deformation target state.
type DeformMode uint8

func (m DeformMode) String() string {
	switch m {
	case 0:
		return "Pack"
	case 1:
		return "Protect"
	case 2:
		return "Normal"
	}
	return fmt.Sprintf("Unknown(%d)", uint8(m))
}

// DeformStatus is the deformation progress.
type DeformStatus uint8

var deformStatusNames = map[DeformStatus]string{
	1: "FoldComplete",
	2: "Folding",
	3: "StretchComplete",
	4: "Stretching",
	5: "StopDeformation",
}

func (s DeformStatus) String() string {
	if name, ok := deformStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(s))
}
