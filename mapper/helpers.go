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

package mapper

import (
	"fmt"

	"dirpx.dev/status/code"
	"dirpx.dev/status/mapper/internal/pattern"
	"dirpx.dev/status/reason"
	"google.golang.org/grpc/codes"
)

// freeze detaches m from the builder, converting values along the way.
// Empty maps become nil.
func freeze[V any](m map[code.Code]int, conv func(int) V) map[code.Code]V {
	if len(m) == 0 {
		return nil
	}
	out := make(map[code.Code]V, len(m))
	for k, v := range m {
		out[k] = conv(v)
	}
	return out
}

func asInt(v int) int { return v }

func asGRPC(v int) codes.Code { return codes.Code(v) }

// compile builds one pattern set per code. transport names the side in
// error messages.
func compile[V any](transport string, rules map[code.Code][]prefixRule, conv func(int) V) (map[code.Code]*pattern.Set[V], error) {
	out := make(map[code.Code]*pattern.Set[V], len(rules))
	for c, rs := range rules {
		if len(rs) == 0 {
			continue
		}
		set := new(pattern.Set[V])
		for _, r := range rs {
			p := reason.Normalize(r.prefix)
			if err := set.Add(p, conv(r.val)); err != nil {
				return nil, fmt.Errorf("mapper: invalid %s reason-prefix %q for code %q: %w", transport, r.prefix, c, err)
			}
		}
		out[c] = set
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
