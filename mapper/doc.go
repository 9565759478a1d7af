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

// Package mapper turns a classification (a code.Code plus an optional
// reason.Reason) into transport statuses for HTTP and gRPC.
//
// # Resolution
//
// For each transport a Mapper tries, in order:
//
//  1. an exact override for the code;
//  2. the most specific reason-prefix rule for the code;
//  3. the per-code default;
//  4. the fallback (500 / codes.Internal unless WithFallback says otherwise).
//
// Prefix rules are segment-aware. "storage.pg" matches "storage.pg.connect"
// but not "storage.pgx"; "*" stands for exactly one segment:
//
//	WithHTTPPrefix(code.Unavailable, "storage.pg", http.StatusServiceUnavailable)
//	WithHTTPPrefix(code.Unavailable, "storage.*.connect", http.StatusBadGateway)
//
// # Resolving errors
//
// Resolve reads the classification straight from an error. It walks the
// public cause chain (errors.Unwrap) and stops at the first apis.CodedError
// with a non-empty code, so a status whose kind carries a code is classified
// by that code and its reason. Private causes are never consulted:
//
//	m, err := mapper.New(mapper.WithHTTPOverride(code.Canceled, 499))
//	if err != nil {
//		return err
//	}
//	t := m.Resolve(err)
//	w.WriteHeader(t.HTTP)
//
// # Diagnostics
//
// Explain returns a short trace of which tier produced each status, and the
// matched pattern for prefix hits.
//
// # Immutability
//
// New copies every input. A Mapper never changes after construction and may
// be shared freely.
package mapper
