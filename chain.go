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

import (
	"errors"
	"iter"
)

// Chain walks an error and the errors it wraps, one Unwrap at a time.
//
// Only single-cause links are followed; an error wrapping several errors
// (Unwrap() []error) ends the chain. A cyclic chain never ends.
type Chain struct {
	next error
}

// NewChain returns a chain whose first element is err. A nil err gives an
// empty chain.
func NewChain(err error) *Chain {
	return &Chain{next: err}
}

// Next returns the current element and advances. Once it reports false it
// keeps doing so.
func (c *Chain) Next() (error, bool) {
	if c == nil || c.next == nil {
		return nil, false
	}
	cur := c.next
	c.next = errors.Unwrap(cur)
	return cur, true
}

// All drains the chain lazily.
func (c *Chain) All() iter.Seq[error] {
	return func(yield func(error) bool) {
		for {
			err, ok := c.Next()
			if !ok || !yield(err) {
				return
			}
		}
	}
}

// Last drains the chain and returns its final element, or nil.
func (c *Chain) Last() error {
	var last error
	for err := range c.All() {
		last = err
	}
	return last
}
