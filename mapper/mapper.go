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
	"fmt"

	"google.golang.org/grpc/codes"

	"dirpx.dev/winerr"
	"dirpx.dev/winerr/apis"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained mapper instance — no shared
// references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, fallback).
//  3. Freeze all maps into immutable copies (fresh allocations).
func New(opts ...Option) apis.Mapper {
	// (0) Start with an empty builder.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Freeze everything into the immutable snapshot.
	return &mapper{
		httpDefaults: freezeHTTP(b.httpDefaults),
		grpcDefaults: freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}
}

// mapper is the immutable snapshot produced by New. Its maps are never
// mutated after construction, which is what makes it safe for concurrent
// reads without locking.
type mapper struct {
	httpDefaults map[winerr.Error]int
	grpcDefaults map[winerr.Error]codes.Code
	httpOverride map[winerr.Error]int
	grpcOverride map[winerr.Error]codes.Code
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus implements apis.Mapper.
func (m *mapper) HTTPStatus(e winerr.Error) int {
	if v, ok := m.httpOverride[e]; ok {
		return v
	}
	if v, ok := m.httpDefaults[e]; ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus implements apis.Mapper.
func (m *mapper) GRPCStatus(e winerr.Error) codes.Code {
	if v, ok := m.grpcOverride[e]; ok {
		return v
	}
	if v, ok := m.grpcDefaults[e]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status implements apis.Mapper.
func (m *mapper) Status(e winerr.Error) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(e),
		GRPC: m.GRPCStatus(e),
	}
}

// Explain implements apis.Mapper. The output names the tier that matched on
// each side, e.g.:
//
//	code 0x00000002: http default 404; grpc default NotFound
func (m *mapper) Explain(e winerr.Error) string {
	httpTier, httpVal := "fallback", m.fallbackHTTP
	if v, ok := m.httpDefaults[e]; ok {
		httpTier, httpVal = "default", v
	}
	if v, ok := m.httpOverride[e]; ok {
		httpTier, httpVal = "override", v
	}

	grpcTier, grpcVal := "fallback", m.fallbackGRPC
	if v, ok := m.grpcDefaults[e]; ok {
		grpcTier, grpcVal = "default", v
	}
	if v, ok := m.grpcOverride[e]; ok {
		grpcTier, grpcVal = "override", v
	}

	return fmt.Sprintf("code %s: http %s %d; grpc %s %s",
		e.Hex(), httpTier, httpVal, grpcTier, grpcVal)
}
