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

package winerr

import "strings"

// Error is a Win32 API error code.
//
// It wraps the 32-bit value the operating system uses to identify a failure
// condition (0 means success). No validation is performed: any uint32 is a
// legal Error, including values the system message table knows nothing about.
//
// Error is a plain 4-byte value: copy it freely, compare it with ==, order it
// with <, use it as a map key. Conversions to and from uint32 are lossless
// inverses of each other.
//
// Error implements the error interface by rendering the system-provided
// message for the code:
//
//	err := winerr.New(0)
//	fmt.Println(err) // "The operation completed successfully."
type Error uint32

// New constructs an Error from an arbitrary raw Win32 error code.
// It always succeeds.
func New(code uint32) Error {
	return Error(code)
}

// LastError returns the last error code recorded for the calling thread.
//
// The slot is overwritten by any subsequent system call on the same thread,
// so it must be read immediately after the call whose failure is being
// diagnosed, with no other OS calls in between. In Go that additionally
// requires the goroutine to be pinned to its OS thread
// (runtime.LockOSThread) across the failing call and LastError; otherwise
// the scheduler may observe a different thread's slot.
//
// On non-Windows builds the slot always reads as success (0).
func LastError() Error {
	return Error(readLastError())
}

// Code returns the raw Win32 error code.
func (e Error) Code() uint32 {
	return uint32(e)
}

// Error renders the system message for the code, trimmed of leading and
// trailing whitespace. Codes unknown to the system message table render in
// the canonical hex form instead (see Hex). Rendering never fails; use
// WriteMessage to stream the message into a fallible sink.
func (e Error) Error() string {
	var sb strings.Builder
	// strings.Builder writes cannot fail.
	_ = e.WriteMessage(&sb)
	return sb.String()
}

// Hex returns the code as "0x" followed by exactly eight zero-padded
// uppercase hex digits, e.g. "0x00000005". This is the same form
// WriteMessage falls back to for codes without a system message.
func (e Error) Hex() string {
	var sb strings.Builder
	_ = writeHex(&sb, uint32(e))
	return sb.String()
}
