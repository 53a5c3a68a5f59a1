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

package sysx

import (
	"errors"
	"syscall"

	"dirpx.dev/winerr"
)

// ErrNoRawCode is returned by FromError when the given error does not carry
// a raw OS error code anywhere in its chain (for example, an error that did
// not originate from a failing OS call).
//
// Having a dedicated sentinel makes it easy for callers and tests to detect
// "this error is not OS-originated" vs "some other failure".
var ErrNoRawCode = errors.New("sysx: error carries no raw OS error code")

// FromError extracts the Win32 error code carried somewhere in err's chain.
//
// It walks the chain with errors.As looking for a syscall.Errno, which covers
// the errors package os produces (*os.PathError, *os.LinkError,
// *os.SyscallError) as well as anything wrapped with fmt.Errorf("...: %w").
// When no raw code is present it fails with ErrNoRawCode; that is the only
// error it can return.
func FromError(err error) (winerr.Error, error) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return winerr.New(uint32(errno)), nil
	}
	return 0, ErrNoRawCode
}

// ToError converts e into the generic OS error representation used by
// package os and the syscall wrappers. It always succeeds, and the result
// round-trips through FromError:
//
//	sysx.FromError(sysx.ToError(e)) == e
func ToError(e winerr.Error) error {
	return syscall.Errno(e.Code())
}
