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

// ErrorView is the public, client-facing shape of a Win32 error as written
// by HTTP adapters. Unlike ErrorDescriptor it omits transport statuses (the
// status line already carries them) and adds optional correlation fields.
type ErrorView struct {
	// Code is the raw Win32 error code.
	Code uint32 `json:"code"`

	// Hex is the canonical hex rendering of Code.
	Hex string `json:"hex"`

	// Message is the system-rendered, whitespace-trimmed message.
	Message string `json:"message"`

	// RetryAfterSeconds hints the client when a retry may succeed.
	// Zero means no hint.
	RetryAfterSeconds int32 `json:"retry_after_seconds,omitempty"`

	// Correlation is a client/server correlation token (request ID,
	// idempotency key).
	Correlation string `json:"correlation,omitempty"`

	// TraceID is the distributed trace identifier.
	TraceID string `json:"trace_id,omitempty"`

	// SpanID is the span identifier within the trace.
	SpanID string `json:"span_id,omitempty"`
}
