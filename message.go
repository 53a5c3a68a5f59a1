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

import (
	"io"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// msgBufCap is the capacity, in UTF-16 code units, of the scratch buffer
// handed to the system message lookup. The decoded-scalar buffer shares the
// same capacity: a UTF-16 stream of N units never decodes to more than N
// scalar values, so the second buffer cannot overflow while the two sizes
// stay equal. Do not resize one without re-verifying the other.
const msgBufCap = 1024

// Seams over the OS bindings (see syscall_windows.go / syscall_other.go).
// Tests substitute lookupMessage to drive the renderer from a deterministic
// message table.
var (
	readLastError = sysLastError
	lookupMessage = sysFormatMessage
)

// WriteMessage renders the system message for the code into w, trimmed of
// leading and trailing whitespace, as UTF-8.
//
// The routine works entirely in fixed-capacity buffers. The system lookup
// writes at most msgBufCap UTF-16 units; code units or surrogate pairs that
// do not form a valid scalar value are each replaced with U+FFFD. A failed
// lookup (typically a code unknown to the system table) is not an error: the
// code is written in its canonical hex form instead. The only failure
// WriteMessage reports is a write failure from w, returned verbatim; some
// prefix of the message may already have been written at that point.
func (e Error) WriteMessage(w io.Writer) error {
	var units [msgBufCap]uint16
	n := lookupMessage(uint32(e), units[:])
	if n == 0 {
		// Lookup failed: fall back to the raw code.
		return writeHex(w, uint32(e))
	}
	if n > msgBufCap {
		n = msgBufCap
	}

	var scalars [msgBufCap]rune
	count := decodeUTF16(units[:n], scalars[:])

	// The system table conventionally pads messages with trailing newlines
	// or whitespace; trim both ends before writing.
	start, end := trimRange(scalars[:count])

	var enc [utf8.UTFMax]byte
	for _, r := range scalars[start:end] {
		size := utf8.EncodeRune(enc[:], r)
		if _, err := w.Write(enc[:size]); err != nil {
			return err
		}
	}
	return nil
}

// decodeUTF16 decodes units into dst and returns the number of scalar values
// written. Every unit or surrogate pair that does not decode to a valid
// scalar value becomes exactly one U+FFFD; decoding never fails. dst must be
// at least len(units) long.
func decodeUTF16(units []uint16, dst []rune) int {
	n := 0
	for i := 0; i < len(units); i++ {
		r := rune(units[i])
		if utf16.IsSurrogate(r) {
			if i+1 < len(units) {
				if p := utf16.DecodeRune(r, rune(units[i+1])); p != unicode.ReplacementChar {
					dst[n] = p
					n++
					i++
					continue
				}
			}
			// Lone or ill-ordered surrogate.
			r = unicode.ReplacementChar
		}
		dst[n] = r
		n++
	}
	return n
}

// trimRange returns the half-open range [start, end) of scalars with leading
// and trailing whitespace excluded. All-whitespace input yields an empty
// range.
func trimRange(scalars []rune) (start, end int) {
	start, end = 0, len(scalars)
	for start < end && unicode.IsSpace(scalars[start]) {
		start++
	}
	for end > start && unicode.IsSpace(scalars[end-1]) {
		end--
	}
	return start, end
}

const hexDigits = "0123456789ABCDEF"

// writeHex writes code as "0x" followed by exactly eight zero-padded
// uppercase hex digits.
func writeHex(w io.Writer, code uint32) error {
	var b [10]byte
	b[0], b[1] = '0', 'x'
	for i := 9; i >= 2; i-- {
		b[i] = hexDigits[code&0xF]
		code >>= 4
	}
	_, err := w.Write(b[:])
	return err
}
