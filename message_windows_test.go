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

//go:build windows

package winerr

import (
	"strings"
	"testing"
)

// These tests run against the real system message table.

func TestRealTable_SuccessMessage(t *testing.T) {
	got := New(0).Error()
	if got == "" {
		t.Fatal("code 0 must render a non-empty system message")
	}
	if strings.HasPrefix(got, "0x") {
		t.Fatalf("code 0 must not take the hex fallback, got %q", got)
	}
	if strings.TrimSpace(got) != got {
		t.Fatalf("message not trimmed: %q", got)
	}
}

func TestRealTable_KnownCodesRender(t *testing.T) {
	for _, e := range []Error{FileNotFound, AccessDenied, AlreadyExists} {
		got := e.Error()
		if got == "" || strings.HasPrefix(got, "0x") {
			t.Fatalf("code %d rendered as %q, want a system message", e.Code(), got)
		}
	}
}

func TestRealTable_UnknownCodeFallsBack(t *testing.T) {
	if got := New(0xFFFFFFFF).Error(); got != "0xFFFFFFFF" {
		t.Fatalf("unknown code rendered as %q, want %q", got, "0xFFFFFFFF")
	}
}
