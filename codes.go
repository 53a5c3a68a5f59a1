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

// Well-known Win32 error codes.
//
// This is not an attempt at completeness — the Win32 space holds thousands of
// codes and any uint32 is a legal Error. These are the values that routinely
// cross library boundaries (file I/O, handles, parameter validation) and that
// the transport mappers ship defaults for. Names follow the system ERROR_*
// identifiers with the prefix dropped.

// Success and call-shape errors.
const (
	// Success is ERROR_SUCCESS: the operation completed successfully.
	// Note that 0 is a real, renderable code, not a sentinel.
	Success Error = 0

	// InvalidFunction is ERROR_INVALID_FUNCTION: the request is not
	// implemented or not valid for the target device/object.
	InvalidFunction Error = 1

	// InvalidParameter is ERROR_INVALID_PARAMETER: an argument failed
	// validation inside the system call.
	InvalidParameter Error = 87

	// InvalidName is ERROR_INVALID_NAME: a file/volume/object name has
	// invalid syntax.
	InvalidName Error = 123

	// NotSupported is ERROR_NOT_SUPPORTED: the request is recognized but
	// not supported by the target.
	NotSupported Error = 50
)

// Filesystem and object lookup.
const (
	// FileNotFound is ERROR_FILE_NOT_FOUND.
	FileNotFound Error = 2

	// PathNotFound is ERROR_PATH_NOT_FOUND: a directory component of the
	// path does not exist.
	PathNotFound Error = 3

	// AlreadyExists is ERROR_ALREADY_EXISTS: creation failed because the
	// target object is already present.
	AlreadyExists Error = 183

	// NotFound is ERROR_NOT_FOUND: a generic "element not found", used by
	// many non-filesystem APIs.
	NotFound Error = 1168
)

// Access, handles and contention.
const (
	// AccessDenied is ERROR_ACCESS_DENIED.
	AccessDenied Error = 5

	// InvalidHandle is ERROR_INVALID_HANDLE: the handle is closed, of the
	// wrong type, or otherwise unusable.
	InvalidHandle Error = 6

	// SharingViolation is ERROR_SHARING_VIOLATION: the object is in use
	// with an incompatible sharing mode.
	SharingViolation Error = 32

	// BrokenPipe is ERROR_BROKEN_PIPE: the other end of the pipe has gone
	// away.
	BrokenPipe Error = 109
)

// Resource exhaustion and buffer sizing.
const (
	// TooManyOpenFiles is ERROR_TOO_MANY_OPEN_FILES.
	TooManyOpenFiles Error = 4

	// NotEnoughMemory is ERROR_NOT_ENOUGH_MEMORY.
	NotEnoughMemory Error = 8

	// DiskFull is ERROR_DISK_FULL.
	DiskFull Error = 112

	// InsufficientBuffer is ERROR_INSUFFICIENT_BUFFER: the caller-supplied
	// buffer is too small for the result.
	InsufficientBuffer Error = 122

	// MoreData is ERROR_MORE_DATA: partial result returned, call again with
	// a larger buffer.
	MoreData Error = 234
)

// Asynchronous completion and timing.
const (
	// OperationAborted is ERROR_OPERATION_ABORTED: the request was
	// cancelled (CancelIo and friends).
	OperationAborted Error = 995

	// IOPending is ERROR_IO_PENDING: the overlapped operation is still in
	// progress. Frequently a success-path code, not a failure.
	IOPending Error = 997

	// Timeout is ERROR_TIMEOUT: the operation did not complete within the
	// allotted time.
	Timeout Error = 1460
)
