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

// Package sysx converts between winerr.Error and the generic OS error values
// produced by package os and the syscall wrappers.
//
// On Windows the raw code inside a syscall.Errno IS the Win32 error code, so
// the two directions are:
//
//   - FromError digs a syscall.Errno out of an arbitrary error chain
//     (covering *os.PathError, *os.SyscallError, fmt.Errorf %w wrapping, ...)
//     and returns it as a winerr.Error. An error that carries no raw OS code
//     fails with ErrNoRawCode — the only checked failure in the winerr
//     subsystem.
//   - ToError wraps a winerr.Error back into a syscall.Errno, the same shape
//     package os attaches to its errors.
//
// The package is intentionally separate from the root package so that the
// core value type and renderer keep zero dependencies on the hosted error
// machinery, mirroring environments where only the core is wanted.
package sysx
