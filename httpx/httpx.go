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

package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dirpx.dev/winerr"
	"dirpx.dev/winerr/adapter"
	"dirpx.dev/winerr/apis"
)

// Meta carries extra context that the HTTP layer can add on top of a Win32
// error. All fields are optional and typically come from request context,
// headers, or router-level logic.
type Meta struct {
	Correlation       string
	TraceID           string
	SpanID            string
	RetryAfterSeconds int32
}

// Writer is a thin adapter that knows how to turn a Win32 error into an HTTP
// response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes an apis.ErrorView as JSON and writes it to the response
// writer. The HTTP status is resolved via the Mapper; a positive
// RetryAfterSeconds is mirrored into the Retry-After header.
//
// No redaction or filtering is performed here: the system-rendered message
// is exposed as-is. Higher-level handlers should apply policies if needed.
func (w Writer) Write(rw http.ResponseWriter, e winerr.Error, meta Meta) {
	st := w.Mapper.Status(e)

	view := adapter.ToView(e, st)
	view.Correlation = meta.Correlation
	view.TraceID = meta.TraceID
	view.SpanID = meta.SpanID
	view.RetryAfterSeconds = meta.RetryAfterSeconds

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(st.HTTP)

	// The response is already committed; an encode failure here has nowhere
	// useful to go.
	_ = json.NewEncoder(rw).Encode(view)
}
