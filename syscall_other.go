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

//go:build !windows

package winerr

// Non-Windows builds have no per-thread last-error slot and no system
// message table: the slot always reads as success and every lookup misses,
// so rendering takes the hex fallback path. This keeps the package (and
// everything layered on it) compiling and testable on any platform.

func sysLastError() uint32 {
	return 0
}

func sysFormatMessage(code uint32, buf []uint16) uint32 {
	return 0
}
