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

// DiagnosticKind classifies non-fatal conditions met while iterating.
type DiagnosticKind int

const (
	// TerminatorMissing means a record had no 0xFF terminator but the
	// stream resynced on the next plausible type byte.
	TerminatorMissing DiagnosticKind = iota
	// Truncated means a record body was cut short by the end of the
	// stream; missing trailing fields decode as zero.
	Truncated
	// MissingKey means an encrypted record had no key in the active
	// keychain segment; its body is left as ciphertext.
	MissingKey
	// DecryptionFailed means the ciphertext did not decrypt to validly
	// padded plaintext; the body is left as ciphertext.
	DecryptionFailed
)

func (k DiagnosticKind) String() string {
	switch k {
	case TerminatorMissing:
		return "TerminatorMissing"
	case Truncated:
		return "Truncated"
	case MissingKey:
		return "MissingKey"
	case DecryptionFailed:
		return "DecryptionFailed"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// Diagnostic is one non-fatal condition, tied to the record that
// produced it by offset and type.
type Diagnostic struct {
	Kind       DiagnosticKind
	Offset     int
	RecordType Type
	Detail     string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at offset %d (type %s): %s", d.Kind, d.Offset, d.RecordType, d.Detail)
}
