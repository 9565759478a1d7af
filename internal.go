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

import "dirpx.dev/status/apis"

// InternalStatus is the view of a Status that also exposes a private cause.
// It is meant for logs and debugging at trusted boundaries.
type InternalStatus[K Kind, C Context[C]] struct {
	status *Status[K, C]
}

var _ apis.InternalView = (*InternalStatus[Unkind, NoContext])(nil)

func (i *InternalStatus[K, C]) inner() *Status[K, C] {
	if i == nil {
		return nil
	}
	return i.status
}

// Error is the same text as the wrapped Status.
func (i *InternalStatus[K, C]) Error() string { return i.inner().Error() }

// Unwrap returns the cause whether public or private.
func (i *InternalStatus[K, C]) Unwrap() error {
	s := i.inner()
	if s == nil {
		return nil
	}
	return s.source.any()
}

func (i *InternalStatus[K, C]) Cause() error { return i.Unwrap() }

// Sources iterates over the cause of any visibility and what it wraps.
func (i *InternalStatus[K, C]) Sources() *Chain { return NewChain(i.Unwrap()) }

func (i *InternalStatus[K, C]) RootSource() error { return i.Sources().Last() }

func (i *InternalStatus[K, C]) Kind() K { return i.inner().Kind() }

func (i *InternalStatus[K, C]) Context() C { return i.inner().Context() }

// Status returns the public view back.
func (i *InternalStatus[K, C]) Status() *Status[K, C] { return i.inner() }

// Public implements apis.InternalView.
func (i *InternalStatus[K, C]) Public() error { return i.inner().Err() }

func (i *InternalStatus[K, C]) ErrorCode() string { return i.inner().ErrorCode() }

func (i *InternalStatus[K, C]) ErrorReason() string { return i.inner().ErrorReason() }

func (i *InternalStatus[K, C]) kindValue() any { return i.inner().kindValue() }

// sourceVisibility reports how the cause was attached.
func (i *InternalStatus[K, C]) sourceVisibility() visibility {
	s := i.inner()
	if s == nil {
		return noSource
	}
	return s.source.vis
}
