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

	"dirpx.dev/status/apis"
	"dirpx.dev/status/code"
	"dirpx.dev/status/reason"
)

// Coded is a Kind made of a code, an optional reason and a fixed message.
// Two Coded values match when all three are equal.
//
//	var ErrNoConfig = status.MustCoded("not_found", "config.read", "config file not found")
type Coded struct {
	code   code.Code
	reason reason.Reason
	msg    string
}

var (
	_ apis.KindCoder    = Coded{}
	_ apis.KindReasoner = Coded{}
)

// NewCoded normalizes and validates c and r. msg may be empty, in which case
// the code doubles as the message.
func NewCoded(c, r, msg string) (Coded, error) {
	pc, err := code.Parse(c)
	if err != nil {
		return Coded{}, fmt.Errorf("status: coded kind %q: %w", c, err)
	}
	pr, err := reason.Parse(r)
	if err != nil {
		return Coded{}, fmt.Errorf("status: coded kind %q reason %q: %w", c, r, err)
	}
	return Coded{code: pc, reason: pr, msg: msg}, nil
}

// MustCoded is like NewCoded but panics on invalid input.
func MustCoded(c, r, msg string) Coded {
	k, err := NewCoded(c, r, msg)
	if err != nil {
		panic(err)
	}
	return k
}

func (k Coded) Code() code.Code { return k.code }

func (k Coded) Reason() reason.Reason { return k.reason }

func (k Coded) String() string {
	if k.msg == "" {
		return k.code.String()
	}
	return k.msg
}

// kindCode extracts a code from kinds that carry one.
func kindCode(k any) string {
	switch v := k.(type) {
	case apis.KindCoder:
		return v.Code().String()
	case code.Code:
		return v.String()
	}
	return ""
}

func kindReason(k any) string {
	if v, ok := k.(apis.KindReasoner); ok {
		return v.Reason().String()
	}
	return ""
}
