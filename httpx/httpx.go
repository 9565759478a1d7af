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

// Package httpx writes errors as plain-text HTTP responses.
//
// The status code comes from an apis.Mapper; the body is the error's Error()
// text. Private causes never reach the client, and neither do public ones:
// Error() of a status.Status renders only its kind and context.
package httpx

import (
	"net/http"
	"strconv"

	"dirpx.dev/status/apis"
	"dirpx.dev/status/mapper"
)

// Writer writes error responses using Mapper.
type Writer struct {
	Mapper apis.Mapper

	// RetryAfter, when set, supplies a Retry-After value in seconds for a
	// given resolved status. Zero means no header.
	RetryAfter func(t apis.Transport) int
}

// Write resolves err and writes it. A nil err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	if v, ok := err.(apis.InternalView); ok {
		err = v.Public()
	}
	t := w.Mapper.Resolve(err)

	h := rw.Header()
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("X-Content-Type-Options", "nosniff")
	if c, _, ok := mapper.Classify(err); ok {
		h.Set("X-Error-Code", c.String())
	}
	if w.RetryAfter != nil {
		if s := w.RetryAfter(t); s > 0 {
			h.Set("Retry-After", strconv.Itoa(s))
		}
	}
	rw.WriteHeader(t.HTTP)
	_, _ = rw.Write([]byte(err.Error() + "\n"))
}
