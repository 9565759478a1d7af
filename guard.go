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

// Bail returns an ad-hoc error labelled with label.
//
//	if len(lines) == 0 {
//		return status.Bail("empty input")
//	}
func Bail(label string) error {
	return Adhoc(label).Err()
}

// Ensure returns nil when cond holds and Bail(label) otherwise.
func Ensure(cond bool, label string) error {
	if cond {
		return nil
	}
	return Bail(label)
}

// EnsureKind returns nil when cond holds and a fresh Status of kind
// otherwise.
func EnsureKind[C Context[C], K Kind](cond bool, kind K) error {
	if cond {
		return nil
	}
	return ErrKind[C](kind)
}
