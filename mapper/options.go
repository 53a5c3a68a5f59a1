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
	"google.golang.org/grpc/codes"

	"dirpx.dev/winerr"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the library-level default HTTP status
// for the given error code. This affects the fallback value used when
// no override is registered for the code.
func WithHTTPDefault(e winerr.Error, http int) Option {
	return func(b *builder) { b.httpDefaults[e] = http }
}

// WithGRPCDefault sets or replaces the library-level default gRPC status
// for the given error code. This affects the fallback value used when
// no override is registered for the code.
func WithGRPCDefault(e winerr.Error, grpc codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[e] = int(grpc) }
}

// WithHTTPOverride registers an exact HTTP override for the given code.
// Overrides take precedence over defaults.
func WithHTTPOverride(e winerr.Error, http int) Option {
	return func(b *builder) { b.httpOverride[e] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given code.
// Overrides take precedence over defaults.
func WithGRPCOverride(e winerr.Error, grpc codes.Code) Option {
	return func(b *builder) { b.grpcOverride[e] = int(grpc) }
}

// WithFallback replaces the global fallback statuses used for codes that
// have neither a default nor an override. The library ships with
// 500 / codes.Unknown.
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
