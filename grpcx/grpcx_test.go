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

package grpcx

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/winerr"
	"dirpx.dev/winerr/mapper"
)

// invoke runs the interceptor around a handler returning err.
func invoke(t *testing.T, itc grpc.UnaryServerInterceptor, err error) error {
	t.Helper()
	handler := func(ctx context.Context, req any) (any, error) {
		if err != nil {
			return nil, err
		}
		return "ok", nil
	}
	_, got := itc(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}, handler)
	return got
}

func TestInterceptor_MapsWin32Error(t *testing.T) {
	itc := UnaryServerInterceptor(mapper.New(), nil)

	err := invoke(t, itc, winerr.FileNotFound)
	if err == nil {
		t.Fatal("expected an error")
	}

	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatal("result is not a gRPC status error")
	}
	if st.Code() != codes.NotFound {
		t.Fatalf("status code = %v, want NotFound", st.Code())
	}
	if st.Message() == "" {
		t.Fatal("status message must carry the rendered text")
	}

	info, ok := ExtractErrorInfo(err)
	if !ok {
		t.Fatal("ErrorInfo detail missing")
	}
	if info.GetDomain() != ErrorDomain {
		t.Fatalf("domain = %q, want %q", info.GetDomain(), ErrorDomain)
	}
	if info.GetReason() != "0x00000002" {
		t.Fatalf("reason = %q, want %q", info.GetReason(), "0x00000002")
	}

	got, ok := CodeFromError(err)
	if !ok || got != winerr.FileNotFound {
		t.Fatalf("CodeFromError = %v/%v, want FileNotFound/true", got, ok)
	}
}

func TestInterceptor_WrappedSystemErrorIsRecognized(t *testing.T) {
	itc := UnaryServerInterceptor(mapper.New(), nil)

	wrapped := fmt.Errorf("opening snapshot: %w", winerr.AccessDenied)
	err := invoke(t, itc, wrapped)

	st, ok := gstatus.FromError(err)
	if !ok || st.Code() != codes.PermissionDenied {
		t.Fatalf("wrapped error mapped to %v, want PermissionDenied", st.Code())
	}
}

func TestInterceptor_ForeignErrorsPassThrough(t *testing.T) {
	itc := UnaryServerInterceptor(mapper.New(), nil)

	foreign := errors.New("not a win32 error")
	if err := invoke(t, itc, foreign); err != foreign {
		t.Fatalf("foreign error not passed through verbatim: %v", err)
	}

	if err := invoke(t, itc, nil); err != nil {
		t.Fatalf("success must pass through, got %v", err)
	}
}

func TestInterceptor_MetaFnAttachesRetryAndCorrelation(t *testing.T) {
	metaFn := func(ctx context.Context, e winerr.Error) Extras {
		return Extras{
			CorrelationID: "req-42",
			RetryAfter:    3 * time.Second,
		}
	}
	itc := UnaryServerInterceptor(mapper.New(), metaFn)

	err := invoke(t, itc, winerr.Timeout)

	info, ok := ExtractErrorInfo(err)
	if !ok {
		t.Fatal("ErrorInfo detail missing")
	}
	if info.GetMetadata()["correlation_id"] != "req-42" {
		t.Fatalf("correlation_id = %q, want %q", info.GetMetadata()["correlation_id"], "req-42")
	}

	st, _ := gstatus.FromError(err)
	var retry *errdetails.RetryInfo
	for _, d := range st.Details() {
		if r, ok := d.(*errdetails.RetryInfo); ok {
			retry = r
		}
	}
	if retry == nil {
		t.Fatal("RetryInfo detail missing")
	}
	if got := retry.GetRetryDelay().AsDuration(); got != 3*time.Second {
		t.Fatalf("retry delay = %v, want 3s", got)
	}
}

func TestCodeFromError_Negative(t *testing.T) {
	if _, ok := CodeFromError(nil); ok {
		t.Fatal("nil error must not yield a code")
	}
	if _, ok := CodeFromError(errors.New("plain")); ok {
		t.Fatal("plain error must not yield a code")
	}
	if _, ok := CodeFromError(gstatus.Error(codes.NotFound, "bare status")); ok {
		t.Fatal("status without win32 detail must not yield a code")
	}
}

func TestToStatus_RoundTripsLargeCodes(t *testing.T) {
	e := winerr.New(0xFFFFFFFF)
	st := ToStatus(e, mapper.New().Status(e), Extras{})

	got, ok := CodeFromError(st.Err())
	if !ok || got != e {
		t.Fatalf("round trip = %#x/%v, want %#x/true", got.Code(), ok, e.Code())
	}
}
