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

package code

// Generic classes.
const (
	// Internal is the catch-all for failures nobody classified.
	Internal Code = "internal"

	// Invalid means an input broke a format or consistency rule.
	Invalid Code = "invalid"

	// Missing means a required value was absent or empty.
	Missing Code = "missing"

	// Unsupported means the operation or value is disabled here.
	Unsupported Code = "unsupported"
)

// Operational classes. Usually transient.
const (
	// Unavailable means a dependency could not be reached.
	Unavailable Code = "unavailable"

	// Timeout means the time budget ran out.
	Timeout Code = "timeout"

	// Canceled means the caller gave up, typically via context cancellation.
	Canceled Code = "canceled"
)

// Resource state classes.
const (
	NotFound           Code = "not_found"
	AlreadyExists      Code = "already_exists"
	Conflict           Code = "conflict"
	PreconditionFailed Code = "precondition_failed"
)

// Access classes.
const (
	// Unauthenticated means the caller identity is unknown.
	Unauthenticated Code = "unauthenticated"

	// PermissionDenied means the caller is known but not allowed.
	PermissionDenied Code = "permission_denied"
)

// Budget classes.
const (
	RateLimited   Code = "rate_limited"
	QuotaExceeded Code = "quota_exceeded"
)

// Known returns every code declared in this package, in declaration order.
func Known() []Code {
	return []Code{
		Internal, Invalid, Missing, Unsupported,
		Unavailable, Timeout, Canceled,
		NotFound, AlreadyExists, Conflict, PreconditionFailed,
		Unauthenticated, PermissionDenied,
		RateLimited, QuotaExceeded,
	}
}
