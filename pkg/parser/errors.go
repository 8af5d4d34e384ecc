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

package parser

import (
	"fmt"
)

// NoEncryptionError is returned when a keychain request is asked of a
// log version that carries no encryption info area.
type NoEncryptionError struct {
	Version int
}

func (e NoEncryptionError) Error() string {
	return fmt.Sprintf("log version %d carries no encryption info", e.Version)
}
