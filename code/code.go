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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is a validated classification code.
//
// It is a distinct type so that raw user input never flows into a kind
// without passing through Parse.
type Code string

// Length bounds of a canonical code.
const (
	MinLength = 3
	MaxLength = 64
)

// pattern must stay in sync with MinLength / MaxLength: one leading letter
// followed by 2..63 letters, digits or underscores.
const pattern = `^[a-z][a-z0-9_]{2,63}$`

var re = regexp.MustCompile(pattern)

// ErrInvalid is returned when a value cannot be parsed or validated as a code.
var ErrInvalid = errors.New("status: invalid code")

var (
	_ encoding.TextMarshaler   = Code("")
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the "no code" value.
const Empty Code = ""

// Parse normalizes s and validates the result.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if !re.MatchString(s) {
		return Empty, ErrInvalid
	}
	return Code(s), nil
}

// MustParse is like Parse but panics on error. Meant for package-level vars.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize trims surrounding space, lowercases and turns '-' into '_'.
// The result is not guaranteed to be valid.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "-", "_")
}

// Validate reports whether c is canonical. Empty is invalid.
func Validate(c Code) error {
	if !re.MatchString(string(c)) {
		return ErrInvalid
	}
	return nil
}

// IsEmpty reports whether c is the "no code" value.
func (c Code) IsEmpty() bool { return c == Empty }

func (c Code) String() string { return string(c) }

// MarshalText refuses to emit a non-canonical code.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText normalizes and validates text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
