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

package sysx

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"

	"dirpx.dev/winerr"
)

func TestRoundTrip(t *testing.T) {
	for _, code := range []uint32{0, 2, 5, 183, 0xFFFFFFFF} {
		e := winerr.New(code)
		got, err := FromError(ToError(e))
		if err != nil {
			t.Fatalf("FromError(ToError(%#x)) unexpected error: %v", code, err)
		}
		if got != e {
			t.Fatalf("round trip of %#x produced %#x", code, got.Code())
		}
	}
}

func TestFromError_WrappedChains(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want winerr.Error
	}{
		{
			"bare errno",
			syscall.Errno(5),
			winerr.AccessDenied,
		},
		{
			"path error",
			&os.PathError{Op: "open", Path: "C:\\missing", Err: syscall.Errno(2)},
			winerr.FileNotFound,
		},
		{
			"syscall error",
			os.NewSyscallError("CreateFileW", syscall.Errno(32)),
			winerr.SharingViolation,
		},
		{
			"fmt wrapped",
			fmt.Errorf("loading config: %w", &os.PathError{Op: "open", Path: "x", Err: syscall.Errno(3)}),
			winerr.PathNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromError(tt.err)
			if err != nil {
				t.Fatalf("FromError() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("FromError() = %#x, want %#x", got.Code(), tt.want.Code())
			}
		})
	}
}

func TestFromError_NoRawCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"nil", nil},
		{"plain error", errors.New("not an os error")},
		{"wrapped plain error", fmt.Errorf("outer: %w", errors.New("inner"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromError(tt.err)
			if !errors.Is(err, ErrNoRawCode) {
				t.Fatalf("FromError() error = %v, want ErrNoRawCode", err)
			}
			if got != 0 {
				t.Fatalf("FromError() on failure must return the zero Error, got %#x", got.Code())
			}
		})
	}
}

func TestFromError_EqualAcrossPaths(t *testing.T) {
	direct := winerr.New(5)
	viaOS, err := FromError(ToError(winerr.New(5)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if direct != viaOS {
		t.Fatal("same raw code from different construction paths must compare equal")
	}

	m := map[winerr.Error]bool{direct: true}
	if !m[viaOS] {
		t.Fatal("same raw code must hash identically")
	}
}
