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

// Package mapper provides deterministic, immutable mappings from Win32 error
// codes to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// Transport layers (HTTP handlers, gRPC servers) that surface OS-level
// failures need to turn a raw Win32 code into concrete status codes. Package
// mapper does that in a way that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per code;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the code;
//  2. per-code default (library or user-adjusted);
//  3. global fallback (500 / codes.Unknown).
//
// # Library defaults
//
// The package ships with defaults for the well-known codes exported by the
// root package, e.g. winerr.FileNotFound -> 404 / NotFound,
// winerr.AccessDenied -> 403 / PermissionDenied, winerr.Timeout -> 504 /
// DeadlineExceeded. Everything else falls through to the global fallback:
// the Win32 space holds thousands of codes and an unknown one tells the
// client nothing more specific than "server-side failure".
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m := mapper.New(
//	    mapper.WithHTTPOverride(winerr.SharingViolation, http.StatusLocked),
//	    mapper.WithFallback(http.StatusBadGateway, codes.Internal),
//	)
//
//	st := m.Status(winerr.FileNotFound)
//	// st.HTTP == 404, st.GRPC == codes.NotFound
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a code was resolved,
// including which tier matched. This is intended for inspection and logging,
// not for stable machine parsing.
//
// # Immutability
//
// All inputs are copied during New. After construction, the Mapper does not
// observe further changes to anything the caller holds, making it safe to
// share a single instance across handlers, goroutines, and requests.
package mapper
