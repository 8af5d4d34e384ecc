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
	"dji.tools/djilog/pkg/layout"
)

// KeyStorage is an always-plaintext record repeating one wrapped key
// from the encryption info area.
type KeyStorage struct {
	FeaturePoint uint16
	Data         []byte
}

func DecodeKeyStorage(body []byte) *KeyStorage {
	c := layout.NewCursor(body)
	k := &KeyStorage{FeaturePoint: c.U16()}
	n := int(c.U16())
	if n > c.Remaining() {
		n = c.Remaining()
	}
	k.Data = c.Bytes(n)
	return k
}
