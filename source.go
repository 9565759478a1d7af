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

// visibility tags the cause held by a Status.
type visibility uint8

const (
	noSource visibility = iota
	publicSource
	privateSource
)

func (v visibility) String() string {
	switch v {
	case publicSource:
		return "public"
	case privateSource:
		return "private"
	default:
		return "none"
	}
}

// source is the single cause slot of a Status. The zero value is empty.
type source struct {
	err error
	vis visibility
}

func publicOf(err error) source  { return source{err: err, vis: publicSource} }
func privateOf(err error) source { return source{err: err, vis: privateSource} }

// public returns the cause only when it was attached as public.
func (s source) public() error {
	if s.vis == publicSource {
		return s.err
	}
	return nil
}

// any returns the cause whatever its visibility.
func (s source) any() error { return s.err }
