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
	"fmt"
	"io"
)

// Format implements fmt.Formatter.
//
//	%s, %v  Error()
//	%q      Error(), quoted
//	%+v     the full report: Error() followed by every public cause
func (s *Status[K, C]) Format(f fmt.State, verb rune) {
	format(f, verb, s)
}

// Format is like Status.Format, except that %+v also reports a private
// cause.
func (i *InternalStatus[K, C]) Format(f fmt.State, verb rune) {
	format(f, verb, i)
}

func format(f fmt.State, verb rune, err error) {
	switch verb {
	case 'v':
		if f.Flag('+') || f.Flag('#') {
			_ = WriteReport(f, err)
			return
		}
		_, _ = io.WriteString(f, err.Error())
	case 's':
		_, _ = io.WriteString(f, err.Error())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", err.Error())
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(%s)", verb, err.Error())
	}
}
