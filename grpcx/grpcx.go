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
	"strconv"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/winerr"
	"dirpx.dev/winerr/apis"
)

// ErrorDomain is the value set on errdetails.ErrorInfo.Domain for statuses
// produced by this package. Clients use it to recognize win32-originated
// details among other ErrorInfo payloads.
const ErrorDomain = "win32"

// codeKey is the ErrorInfo metadata key holding the raw decimal code.
const codeKey = "code"

// Extras holds optional, rich metadata that can be embedded into the status
// details. All fields are optional.
type Extras struct {
	// CorrelationID is a client/server correlation token (request ID,
	// idempotency key).
	CorrelationID string

	// RetryAfter, when positive, attaches an errdetails.RetryInfo hint
	// telling the client how long to back off.
	RetryAfter time.Duration
}

// MetaFn extracts Extras from context and the Win32 error.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, e winerr.Error) Extras

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// errors carrying Win32 codes into gRPC statuses with errdetails payloads.
//
// Errors are recognized through apis.SystemError (walking the wrap chain),
// so both plain winerr.Error values and application error types exposing
// Code() uint32 are handled. Other errors pass through untouched.
//
// The provided apis.Mapper resolves the gRPC status code; the status message
// is the system-rendered text for the code.
//
// The optional MetaFn can be used to extract additional metadata from the
// context and the error. If nil, no extra metadata is attached.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, winerr.Error) Extras { return Extras{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var se apis.SystemError
		if !errors.As(err, &se) {
			// Not ours — return as-is.
			return nil, err
		}

		e := winerr.New(se.Code())
		return nil, ToStatus(e, m.Status(e), metaFn(ctx, e)).Err()
	}
}

// ToStatus builds the gRPC status for a Win32 error from its resolved
// transport status.
//
// The status carries an errdetails.ErrorInfo with Domain set to ErrorDomain,
// Reason set to the canonical hex form, and the raw decimal code (plus any
// correlation id) in Metadata. A positive Extras.RetryAfter additionally
// attaches an errdetails.RetryInfo.
func ToStatus(e winerr.Error, st apis.Status, ex Extras) *gstatus.Status {
	base := gstatus.New(st.GRPC, e.Error())

	info := &errdetails.ErrorInfo{
		Reason:   e.Hex(),
		Domain:   ErrorDomain,
		Metadata: map[string]string{codeKey: strconv.FormatUint(uint64(e.Code()), 10)},
	}
	if ex.CorrelationID != "" {
		info.Metadata["correlation_id"] = ex.CorrelationID
	}

	var with *gstatus.Status
	var err error
	if ex.RetryAfter > 0 {
		retry := &errdetails.RetryInfo{RetryDelay: durationpb.New(ex.RetryAfter)}
		with, err = base.WithDetails(info, retry)
	} else {
		with, err = base.WithDetails(info)
	}
	if err != nil {
		// Details cannot be attached (e.g. an OK status). The plain status
		// still carries the right code and message.
		return base
	}
	return with
}

// ExtractErrorInfo pulls the win32 ErrorInfo detail out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			return info, true
		}
	}
	return nil, false
}

// CodeFromError recovers the original winerr.Error from a gRPC error
// produced by this package. It reports false for errors without a win32
// ErrorInfo detail or with a malformed code entry.
func CodeFromError(err error) (winerr.Error, bool) {
	info, ok := ExtractErrorInfo(err)
	if !ok {
		return 0, false
	}
	code, perr := strconv.ParseUint(info.GetMetadata()[codeKey], 10, 32)
	if perr != nil {
		return 0, false
	}
	return winerr.New(uint32(code)), true
}
