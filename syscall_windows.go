/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

//go:build windows

package winerr

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// sysLastError reads the calling thread's last-error slot (GetLastError).
func sysLastError() uint32 {
	err := windows.GetLastError()
	if err == nil {
		return 0
	}
	errno, ok := err.(syscall.Errno)
	if !ok {
		return 0
	}
	return uint32(errno)
}

// sysFormatMessage asks the system message table for the text of code,
// writing UTF-16 units into buf. It returns the number of units written;
// zero means the lookup failed (typically an unknown code).
//
// MAX_WIDTH_MASK makes the system emit width-capped lines instead of hard
// newline/CR pairs; IGNORE_INSERTS keeps positional %n placeholders literal
// since no insert arguments are supplied. Language id 0 lets the system
// pick its default lookup order.
func sysFormatMessage(code uint32, buf []uint16) uint32 {
	const flags = windows.FORMAT_MESSAGE_FROM_SYSTEM |
		windows.FORMAT_MESSAGE_IGNORE_INSERTS |
		windows.FORMAT_MESSAGE_MAX_WIDTH_MASK

	n, err := windows.FormatMessage(flags, 0, code, 0, buf, nil)
	if err != nil {
		return 0
	}
	return n
}
