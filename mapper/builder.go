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
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/winerr"
)

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// httpDefaults holds per-code HTTP defaults; seeded from the library
	// table, then adjusted by options.
	httpDefaults map[winerr.Error]int
	// grpcDefaults holds per-code gRPC defaults as ints; converted to
	// codes.Code when freezing the final snapshot.
	grpcDefaults map[winerr.Error]int

	// httpOverride holds exact per-code HTTP overrides (higher than defaults).
	httpOverride map[winerr.Error]int
	// grpcOverride holds exact per-code gRPC overrides as ints; converted in New().
	grpcOverride map[winerr.Error]int

	// global fallbacks used when a code has no rule at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized
// to hold typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		// we size the maps roughly to the number of built-in defaults
		httpDefaults: make(map[winerr.Error]int, len(defaultHTTP)),
		grpcDefaults: make(map[winerr.Error]int, len(defaultGRPC)),

		// overrides are usually few
		httpOverride: make(map[winerr.Error]int),
		grpcOverride: make(map[winerr.Error]int),

		// hard fallbacks if the code was never seen
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Unknown,
	}
}
