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
	"net/http"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/winerr"
	"dirpx.dev/winerr/apis"
)

func TestToDescriptor(t *testing.T) {
	st := apis.Status{HTTP: http.StatusForbidden, GRPC: codes.PermissionDenied}
	d := ToDescriptor(winerr.AccessDenied, st)

	if d.Code != 5 {
		t.Fatalf("Code = %d, want 5", d.Code)
	}
	if d.Hex != "0x00000005" {
		t.Fatalf("Hex = %q, want %q", d.Hex, "0x00000005")
	}
	if d.Message == "" {
		t.Fatal("Message must not be empty")
	}
	if d.HTTPStatus != http.StatusForbidden || d.GRPCCode != int(codes.PermissionDenied) {
		t.Fatalf("statuses = %d/%d, want 403/%d", d.HTTPStatus, d.GRPCCode, int(codes.PermissionDenied))
	}
}

func TestToView(t *testing.T) {
	st := apis.Status{HTTP: http.StatusNotFound, GRPC: codes.NotFound}
	v := ToView(winerr.FileNotFound, st)

	if v.Code != 2 || v.Hex != "0x00000002" {
		t.Fatalf("identity = %d/%q, want 2/0x00000002", v.Code, v.Hex)
	}
	if v.Message == "" {
		t.Fatal("Message must not be empty")
	}
	if v.Correlation != "" || v.TraceID != "" || v.SpanID != "" {
		t.Fatal("correlation fields must start empty")
	}
}
