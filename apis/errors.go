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

package apis

// SystemError represents an error that carries a raw Win32 error code.
//
// winerr.Error satisfies it directly, but the adapters target this interface
// instead of the concrete type so that applications can surface their own
// richer error types (with causes, request context, and so on) and still get
// correct transport mapping, as long as they expose the underlying code.
//
// Implementations MUST return the raw 32-bit code unmodified; adapters treat
// the value as authoritative and do not attempt to validate it (every uint32
// is a legal Win32 error code).
type SystemError interface {
	error

	// Code returns the raw Win32 error code.
	Code() uint32
}
