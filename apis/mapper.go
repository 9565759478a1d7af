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

package apis

import (
	"dirpx.dev/status/code"
	"dirpx.dev/status/reason"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe table from a classification
// (code, optional reason) to transport statuses.
type Mapper interface {
	// HTTPStatus returns the HTTP status for c and r. Rules keyed on the
	// reason take precedence over the per-code default.
	HTTPStatus(c code.Code, r reason.Reason) int

	// GRPCStatus is the gRPC counterpart of HTTPStatus.
	GRPCStatus(c code.Code, r reason.Reason) codes.Code

	// Status resolves both sides in one call.
	Status(c code.Code, r reason.Reason) Transport

	// Resolve reads the classification from err's public chain and resolves
	// it. A nil err yields the zero Transport.
	Resolve(err error) Transport

	// Explain describes which rule matched, one line per transport.
	Explain(c code.Code, r reason.Reason) string
}

// Transport is a resolved pair of transport statuses.
type Transport struct {
	HTTP int        // net/http compatible
	GRPC codes.Code
}

// IsZero reports whether t was resolved from a nil error.
func (t Transport) IsZero() bool { return t == Transport{} }
