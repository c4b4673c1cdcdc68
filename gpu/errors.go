// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// ErrorString returns the name of an error code returned by [API.Error].
// The codes are the OpenGL ones.
func ErrorString(code uint32) string {
	switch code {
	case 0:
		return "NO_ERROR"
	case 0x0500:
		return "INVALID_ENUM"
	case 0x0501:
		return "INVALID_VALUE"
	case 0x0502:
		return "INVALID_OPERATION"
	case 0x0505:
		return "OUT_OF_MEMORY"
	case 0x0506:
		return "INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("0x%04X", code)
}
