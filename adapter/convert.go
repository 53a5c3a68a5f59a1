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

package adapter

import (
	"dirpx.dev/winerr"
	"dirpx.dev/winerr/apis"
)

// ToDescriptor converts a Win32 error together with its resolved transport
// status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the raw identity (code, hex) and the concrete
// transport statuses (HTTP and gRPC).
func ToDescriptor(e winerr.Error, st apis.Status) apis.ErrorDescriptor {
	return apis.ErrorDescriptor{
		Code:       e.Code(),
		Hex:        e.Hex(),
		Message:    e.Error(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
}

// ToView converts a Win32 error into a public ErrorView. The resolved status
// is not embedded in the view — the transport's own status line carries it —
// but is accepted for symmetry with ToDescriptor and future shaping.
//
// No redaction or filtering is performed: the system-rendered message is
// exposed as-is. It is up to the caller or API layer to decide whether that
// is appropriate for the audience.
func ToView(e winerr.Error, st apis.Status) apis.ErrorView {
	return apis.ErrorView{
		Code:    e.Code(),
		Hex:     e.Hex(),
		Message: e.Error(),
	}
}
