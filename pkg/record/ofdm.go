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

// OFDM is one radio link quality sample. IsUp distinguishes the
// uplink from the downlink.
type OFDM struct {
	SignalPercent uint8
	IsUp          bool
}

func DecodeOFDM(body []byte) *OFDM {
	if len(body) == 0 {
		return &OFDM{}
	}
	b := body[0]
	return &OFDM{
		SignalPercent: subByteField(b, 0x7F),
		IsUp:          bit(b, 0x80),
	}
}
