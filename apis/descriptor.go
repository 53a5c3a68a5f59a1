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

// ErrorDescriptor is a transport-neutral projection of a Win32 error,
// intended for structured logging, tracing, or message-bus propagation.
// It carries both the raw identity (code, hex) and the concrete transport
// statuses resolved for it.
type ErrorDescriptor struct {
	// Code is the raw Win32 error code.
	Code uint32 `json:"code"`

	// Hex is the canonical "0x"-prefixed, zero-padded uppercase rendering
	// of Code. Stable, grep-friendly, and identical to the renderer's
	// fallback form.
	Hex string `json:"hex"`

	// Message is the system-rendered, whitespace-trimmed message (or the
	// hex fallback when the code is unknown to the system table).
	Message string `json:"message"`

	// HTTPStatus is the resolved HTTP status code.
	HTTPStatus int `json:"http_status"`

	// GRPCCode is the resolved gRPC status code as an integer.
	GRPCCode int `json:"grpc_code"`
}
