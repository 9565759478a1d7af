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
)

// CodedError is an error classified by a machine-readable code such as
// "invalid" or "not_found".
//
// An empty ErrorCode means "not classified"; boundaries should treat it the
// same as an error that does not implement this interface.
type CodedError interface {
	error

	// ErrorCode returns the canonical code, or "".
	ErrorCode() string
}

// ReasonedError refines a code with a dotted reason ("storage.pg.connect").
// The reason may be empty.
type ReasonedError interface {
	error

	ErrorReason() string
}

// CausedError exposes the direct cause of an error, nil when there is none.
//
// Which cause is returned depends on the view: a public status returns only
// its public cause, the internal view returns whichever cause is attached.
type CausedError interface {
	error

	Cause() error
}

// KindCoder is implemented by kinds that carry a code.
type KindCoder interface {
	Code() code.Code
}

// KindReasoner is implemented by kinds that carry a reason.
type KindReasoner interface {
	Reason() reason.Reason
}

// InternalView is implemented by error views that expose private causes.
// Boundaries that must not leak those causes classify Public() instead.
type InternalView interface {
	error

	Public() error
}
