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

// Context is the diagnostic payload of a Status.
//
// The zero value of C must be the empty context. Implementations are values:
// Update and any builder methods return a new C and never share mutable
// storage with the receiver.
type Context[C any] interface {
	fmt.Stringer

	// IsEmpty reports whether there is nothing to display.
	IsEmpty() bool

	// Update folds replacement into the receiver and returns the result.
	// The merge policy belongs to the type, but it must accumulate.
	Update(replacement C) C
}

// NoContext is the context for kinds that say everything on their own.
type NoContext struct{}

func (NoContext) String() string { return "" }

func (NoContext) IsEmpty() bool { return true }

func (c NoContext) Update(NoContext) NoContext { return c }
