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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason is a validated, dot-separated refinement such as "storage.pg.connect".
type Reason string

// Length bounds of a non-empty reason.
const (
	MinLength = 3
	MaxLength = 128
)

// MaxSegments is the deepest reason accepted.
const MaxSegments = 4

// Each segment starts with a lowercase letter; 1..MaxSegments segments.
const pattern = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var re = regexp.MustCompile(pattern)

var (
	// ErrInvalidFormat is returned when a reason does not match the dotted
	// segment grammar.
	ErrInvalidFormat = errors.New("status: invalid reason format")
	// ErrInvalidLength is returned when a reason is shorter than MinLength or
	// longer than MaxLength.
	ErrInvalidLength = errors.New("status: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = Reason("")
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty is the "no reason" value.
const Empty Reason = ""

// Normalize trims, lowercases, turns '/' into '.' and '-' into '_'.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	return strings.ReplaceAll(s, "-", "_")
}

// Parse normalizes and validates s. The empty string parses to Empty.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse is like Parse but panics on error and on an empty result.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("status: empty reason in MustParse")
	}
	return r
}

// Validate reports whether r is canonical. Empty is valid.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

func (r Reason) String() string { return string(r) }

// IsEmpty reports whether r is the "no reason" value.
func (r Reason) IsEmpty() bool { return r == Empty }

// Segments splits r on '.'. Empty yields nil.
func (r Reason) Segments() []string {
	if r == Empty {
		return nil
	}
	return strings.Split(string(r), ".")
}

// HasPrefix reports whether p names r itself or one of its ancestors,
// segment-wise: "storage.pg" is a prefix of "storage.pg.connect" but not of
// "storage.pgx".
func (r Reason) HasPrefix(p Reason) bool {
	if p == Empty {
		return true
	}
	if !strings.HasPrefix(string(r), string(p)) {
		return false
	}
	return len(r) == len(p) || r[len(p)] == '.'
}

// MarshalText emits the empty reason as an empty slice.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrInvalidLength
	}
	if !re.MatchString(s) {
		return ErrInvalidFormat
	}
	return nil
}
