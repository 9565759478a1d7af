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

	"dirpx.dev/status/apis"
)

// WrapSource classifies err as kind, keeping err as the public cause.
// A nil err stays nil, so the call can wrap a result directly:
//
//	return status.WrapSource[status.NoContext](f.Close(), KindClose)
func WrapSource[C Context[C], K Kind](err error, kind K) error {
	if err == nil {
		return nil
	}
	return New[K, C](kind).WithSource(err)
}

// WrapInternal is WrapSource with a private cause.
func WrapInternal[C Context[C], K Kind](err error, kind K) error {
	if err == nil {
		return nil
	}
	return New[K, C](kind).WithInternal(err)
}

// kinded is implemented by Status and its Internal view.
type kinded interface {
	kindValue() any
}

// KindOf returns the kind of the first status of kind type K on err's
// public chain. Internal views are read through their public side.
func KindOf[K Kind](err error) (K, bool) {
	for err != nil {
		if v, ok := err.(apis.InternalView); ok {
			err = v.Public()
			continue
		}
		if s, ok := err.(kinded); ok {
			if k, ok := s.kindValue().(K); ok {
				return k, true
			}
		}
		err = errors.Unwrap(err)
	}
	var zero K
	return zero, false
}

// HasKind reports whether some status on err's public chain has kind.
func HasKind[K Kind](err error, kind K) bool {
	for err != nil {
		if v, ok := err.(apis.InternalView); ok {
			err = v.Public()
			continue
		}
		if s, ok := err.(kinded); ok {
			if k, ok := s.kindValue().(K); ok && k == kind {
				return true
			}
		}
		err = errors.Unwrap(err)
	}
	return false
}
