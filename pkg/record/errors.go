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

// StreamCorruptError returned when the record stream can not be resynced
type StreamCorruptError struct {
	Offset int
}

func (e StreamCorruptError) Error() string {
	return fmt.Sprintf("Record stream corrupt at offset %d", e.Offset)
}
