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

// Package status reports failures as values that separate what a caller may
// match on from what a person needs to read.
//
// A Status carries three things:
//
//   - a Kind: a small comparable classification ("Failed to read file",
//     code.NotFound, a Coded value) that callers compare with ==;
//   - a Context: diagnostic payload that accumulates as the error travels up
//     (an AdhocContext of key/value lines, or an application type);
//   - at most one Source: the lower-level error that caused it, tagged
//     public or private.
//
// A public source is what Unwrap returns, so errors.Is and errors.As see it.
// A private source is hidden from the standard chain and from Error(); it is
// only reachable through the Internal view:
//
//	st := status.New[ErrorKind, status.NoContext](KindRead).WithInternal(ioErr)
//	st.Unwrap()            // nil
//	st.Internal().Unwrap() // ioErr
//
// Error() never includes a cause. To print the whole story at the edge of a
// program, wrap the error with Terminate, format it with %+v, or hand the
// main function to Main:
//
//	func main() { status.Main(run) }
//
// Builders (WithSource, WithInternal, ContextWith) return a new *Status and
// leave the receiver untouched, so a Status may be shared once built.
package status
