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
	"dirpx.dev/status/apis"
)

// Status is an error made of a Kind, a Context and at most one cause.
// Use it by pointer; a *Status is immutable once returned by a builder.
type Status[K Kind, C Context[C]] struct {
	kind    K
	context C
	source  source
}

// Default is the ad-hoc container: a text kind and key/value context.
type Default = Status[Unkind, AdhocContext]

var (
	_ apis.CodedError    = (*Status[Coded, NoContext])(nil)
	_ apis.ReasonedError = (*Status[Coded, NoContext])(nil)
	_ apis.CausedError   = (*Status[Coded, NoContext])(nil)
)

// New returns a Status of kind with an empty context and no cause.
func New[K Kind, C Context[C]](kind K) *Status[K, C] {
	return &Status[K, C]{kind: kind}
}

// Adhoc returns a Default status labelled with label.
func Adhoc(label string) *Default {
	return New[Unkind, AdhocContext](Unkind(label))
}

func (s *Status[K, C]) clone() *Status[K, C] {
	c := *s
	return &c
}

// WithSource returns a copy of s whose cause is err, visible through Unwrap.
// Any previous cause is replaced. A nil err returns s unchanged.
func (s *Status[K, C]) WithSource(err error) *Status[K, C] {
	if s == nil || err == nil {
		return s
	}
	n := s.clone()
	n.source = publicOf(err)
	return n
}

// WithInternal is like WithSource, but the cause is only reachable through
// the Internal view.
func (s *Status[K, C]) WithInternal(err error) *Status[K, C] {
	if s == nil || err == nil {
		return s
	}
	n := s.clone()
	n.source = privateOf(err)
	return n
}

// Kind returns the classification.
func (s *Status[K, C]) Kind() K {
	if s == nil {
		var zero K
		return zero
	}
	return s.kind
}

// Context returns the current context.
func (s *Status[K, C]) Context() C {
	if s == nil {
		var zero C
		return zero
	}
	return s.context
}

// ContextWith returns a copy of s whose context is f applied to the current
// one.
//
//	st = st.ContextWith(func(c status.AdhocContext) status.AdhocContext {
//		return c.Insert("path", path)
//	})
func (s *Status[K, C]) ContextWith(f func(C) C) *Status[K, C] {
	if s == nil {
		return nil
	}
	n := s.clone()
	n.context = f(s.context)
	return n
}

// UpdateContext merges replacement into the context using C's Update.
func (s *Status[K, C]) UpdateContext(replacement C) *Status[K, C] {
	return s.ContextWith(func(c C) C { return c.Update(replacement) })
}

// Sources iterates over the public cause and what it wraps. It yields
// nothing when the cause is private or absent.
func (s *Status[K, C]) Sources() *Chain {
	return NewChain(s.Unwrap())
}

// RootSource returns the deepest error of Sources, or nil.
func (s *Status[K, C]) RootSource() error {
	return s.Sources().Last()
}

// Internal returns the view of s that also exposes a private cause.
func (s *Status[K, C]) Internal() *InternalStatus[K, C] {
	if s == nil {
		return nil
	}
	return &InternalStatus[K, C]{status: s}
}

// Err returns s as an error, or a true nil for a nil s.
func (s *Status[K, C]) Err() error {
	if s == nil {
		return nil
	}
	return s
}

// Error renders the kind, then the context after a blank line when there is
// one. The cause is not part of it.
func (s *Status[K, C]) Error() string {
	if s == nil {
		return "<nil>"
	}
	msg := s.kind.String()
	if !s.context.IsEmpty() {
		msg += "\n\n" + s.context.String()
	}
	return msg
}

// Unwrap returns the public cause.
func (s *Status[K, C]) Unwrap() error {
	if s == nil {
		return nil
	}
	return s.source.public()
}

// Cause is Unwrap under the apis.CausedError name.
func (s *Status[K, C]) Cause() error { return s.Unwrap() }

// ErrorCode returns the code carried by the kind, or "".
func (s *Status[K, C]) ErrorCode() string {
	if s == nil {
		return ""
	}
	return kindCode(s.kind)
}

// ErrorReason returns the reason carried by the kind, or "".
func (s *Status[K, C]) ErrorReason() string {
	if s == nil {
		return ""
	}
	return kindReason(s.kind)
}

func (s *Status[K, C]) kindValue() any {
	if s == nil {
		return nil
	}
	return s.kind
}
