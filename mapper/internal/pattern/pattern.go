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

// Package pattern compiles dotted reason prefixes ("storage.pg",
// "auth.*.verify") and picks the most specific one matching a reason.
//
// A pattern matches a reason when each of its segments equals the reason's
// segment at the same position, "*" standing for any single segment. Among
// matching patterns the one with more segments wins; on equal depth, a
// literal beats "*" at the first position where the two differ.
package pattern

import (
	"errors"
	"slices"
	"strings"
)

// Wildcard matches exactly one segment.
const Wildcard = "*"

// ErrInvalid is returned by Add for an empty pattern, an empty or malformed
// segment, or a pattern made only of wildcards.
var ErrInvalid = errors.New("pattern: invalid prefix")

type rule[T any] struct {
	segs []string
	raw  string
	val  T
}

// Set is an ordered collection of patterns. The zero value is empty and
// ready to use. A Set is not safe for concurrent Add; once built it may be
// matched from many goroutines.
type Set[T any] struct {
	rules []rule[T] // kept in precedence order
}

// Add compiles p and associates it with val. Adding a pattern already in the
// set replaces its value.
func (s *Set[T]) Add(p string, val T) error {
	segs, err := compile(p)
	if err != nil {
		return err
	}
	i, found := slices.BinarySearchFunc(s.rules, segs, func(r rule[T], segs []string) int {
		return compare(r.segs, segs)
	})
	if found {
		s.rules[i].val = val
		return nil
	}
	s.rules = slices.Insert(s.rules, i, rule[T]{segs: segs, raw: p, val: val})
	return nil
}

// Len returns the number of distinct patterns.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// Match returns the value and source text of the most specific pattern
// matching reason. Matching stops at the first malformed segment of reason,
// so "storage.pg.Bad" is matched as "storage.pg".
func (s *Set[T]) Match(reason string) (val T, pat string, ok bool) {
	if s == nil || len(s.rules) == 0 {
		return val, "", false
	}
	segs := split(reason)
	for _, r := range s.rules {
		if matches(r.segs, segs) {
			return r.val, r.raw, true
		}
	}
	return val, "", false
}

func compile(p string) ([]string, error) {
	if p == "" {
		return nil, ErrInvalid
	}
	segs := strings.Split(p, ".")
	literal := false
	for _, seg := range segs {
		if seg == Wildcard {
			continue
		}
		if !validSegment(seg) {
			return nil, ErrInvalid
		}
		literal = true
	}
	if !literal {
		return nil, ErrInvalid
	}
	return segs, nil
}

// split returns the leading run of well-formed segments of reason.
func split(reason string) []string {
	if reason == "" {
		return nil
	}
	segs := strings.Split(reason, ".")
	for i, seg := range segs {
		if !validSegment(seg) {
			return segs[:i]
		}
	}
	return segs
}

func matches(pat, segs []string) bool {
	if len(pat) > len(segs) {
		return false
	}
	for i, p := range pat {
		if p != Wildcard && p != segs[i] {
			return false
		}
	}
	return true
}

// compare orders patterns by precedence: deeper first, then segment by
// segment with any literal ahead of the wildcard.
func compare(a, b []string) int {
	if len(a) != len(b) {
		return len(b) - len(a)
	}
	for i := range a {
		x, y := a[i], b[i]
		switch {
		case x == y:
			continue
		case x == Wildcard:
			return 1
		case y == Wildcard:
			return -1
		default:
			return strings.Compare(x, y)
		}
	}
	return 0
}

// validSegment reports whether seg matches [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
