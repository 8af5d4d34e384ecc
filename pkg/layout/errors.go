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

package layout

import (
	"fmt"
)

// MalformedPrefixError returned when the fixed container prefix fails validation
type MalformedPrefixError struct {
	Reason string
}

func (e MalformedPrefixError) Error() string {
	return fmt.Sprintf("Malformed prefix: %s", e.Reason)
}

// UnsupportedVersionError returned when the log version is outside the known range
type UnsupportedVersionError struct {
	Version int
}

func (e UnsupportedVersionError) Error() string {
	return fmt.Sprintf("Unsupported log version: %d", e.Version)
}

// MalformedAuxiliaryError returned when the encryption info area can not be decoded
type MalformedAuxiliaryError struct {
	Reason string
}

func (e MalformedAuxiliaryError) Error() string {
	return fmt.Sprintf("Malformed encryption info area: %s", e.Reason)
}
