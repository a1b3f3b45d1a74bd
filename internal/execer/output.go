// SPDX-License-Identifier: MPL-2.0

package execer

import "bytes"

// capturedOutput holds the stdout and stderr buffers when capture mode is
// used.
type capturedOutput struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}
