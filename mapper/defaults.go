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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/winerr"
)

// defaultHTTP defines the library's built-in HTTP mappings for well-known
// Win32 error codes. These are only defaults: callers are expected to
// override them at the boundary where HTTP is actually produced when a
// different policy is required.
//
// The intent is to stay close to common REST conventions while preserving
// the OS-level meaning of the code. Codes not listed here resolve to the
// global fallback (500 by default) — an arbitrary Win32 code carries no
// client-actionable information.
var defaultHTTP = map[winerr.Error]int{
	// Success. Mostly useful for descriptors; handlers do not normally map
	// a success code into an error response.
	winerr.Success: http.StatusOK,

	// Lookups.
	winerr.FileNotFound: http.StatusNotFound,
	winerr.PathNotFound: http.StatusNotFound,
	winerr.NotFound:     http.StatusNotFound,

	// Caller-side request problems.
	winerr.InvalidParameter: http.StatusBadRequest,
	winerr.InvalidName:      http.StatusBadRequest,
	winerr.InvalidFunction:  http.StatusNotImplemented, // request not implemented by the target
	winerr.NotSupported:     http.StatusNotImplemented,

	// Access and contention.
	winerr.AccessDenied:     http.StatusForbidden,
	winerr.SharingViolation: http.StatusConflict, // object busy under an incompatible share mode
	winerr.AlreadyExists:    http.StatusConflict,

	// Exhaustion. 507 is WebDAV-born but widely understood for "no space".
	winerr.NotEnoughMemory:  http.StatusInsufficientStorage,
	winerr.DiskFull:         http.StatusInsufficientStorage,
	winerr.TooManyOpenFiles: http.StatusServiceUnavailable,

	// Timing and cancellation.
	winerr.Timeout:          http.StatusGatewayTimeout,
	winerr.OperationAborted: http.StatusRequestTimeout,

	// Transport-ish failures on the server side.
	winerr.BrokenPipe:    http.StatusBadGateway,
	winerr.InvalidHandle: http.StatusInternalServerError,
}

// defaultGRPC defines the library's built-in gRPC mappings for well-known
// Win32 error codes, chosen to align with the canonical gRPC status code
// semantics. As with HTTP, callers may override these at the transport edge.
var defaultGRPC = map[winerr.Error]codes.Code{
	winerr.Success: codes.OK,

	winerr.FileNotFound: codes.NotFound,
	winerr.PathNotFound: codes.NotFound,
	winerr.NotFound:     codes.NotFound,

	winerr.InvalidParameter: codes.InvalidArgument,
	winerr.InvalidName:      codes.InvalidArgument,
	winerr.InvalidFunction:  codes.Unimplemented,
	winerr.NotSupported:     codes.Unimplemented,

	winerr.AccessDenied:     codes.PermissionDenied,
	winerr.SharingViolation: codes.Aborted, // concurrency conflict; retry at a higher level
	winerr.AlreadyExists:    codes.AlreadyExists,

	winerr.NotEnoughMemory:  codes.ResourceExhausted,
	winerr.DiskFull:         codes.ResourceExhausted,
	winerr.TooManyOpenFiles: codes.ResourceExhausted,

	winerr.Timeout:          codes.DeadlineExceeded,
	winerr.OperationAborted: codes.Canceled,

	winerr.BrokenPipe:    codes.Unavailable,
	winerr.InvalidHandle: codes.Internal,
}
