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

package keychain

import (
	"fmt"
)

// NetworkError returned when the keychain endpoint can not be reached
type NetworkError struct {
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("Keychain endpoint unreachable: %v", e.Err)
}

func (e NetworkError) Unwrap() error {
	return e.Err
}

// AuthError returned when the endpoint rejects the api key
type AuthError struct {
	Status int
}

func (e AuthError) Error() string {
	return fmt.Sprintf("Keychain endpoint rejected api key: status %d", e.Status)
}

// BadResponseError returned when the endpoint response can not be interpreted
type BadResponseError struct {
	Reason string
}

func (e BadResponseError) Error() string {
	return fmt.Sprintf("Bad keychain response: %s", e.Reason)
}

// ServiceError returned when the endpoint answers with a non-auth error status
type ServiceError struct {
	Status int
}

func (e ServiceError) Error() string {
	return fmt.Sprintf("Keychain endpoint error: status %d", e.Status)
}
