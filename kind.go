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

package status

import "fmt"

// Kind classifies a Status. It must be comparable so callers can match with
// ==, and its String is the stable human description shown by Error().
//
// Kinds are typically small enums:
//
//	type ErrorKind int
//
//	const (
//		KindRead ErrorKind = iota
//		KindParse
//	)
//
//	func (k ErrorKind) String() string { ... }
type Kind interface {
	comparable
	fmt.Stringer
}

// Unkind is an opaque text kind for prototyping. Matching on it compares the
// labels.
type Unkind string

func (u Unkind) String() string { return string(u) }

// FromKind returns a fresh Status of kind with an empty C context.
func FromKind[C Context[C], K Kind](kind K) *Status[K, C] {
	return New[K, C](kind)
}

// ErrKind is FromKind returned as a non-nil error.
func ErrKind[C Context[C], K Kind](kind K) error {
	return New[K, C](kind)
}
