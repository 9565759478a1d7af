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

package pattern

import (
	"errors"
	"fmt"
	"testing"
)

func TestMatch_Simple(t *testing.T) {
	var s Set[int]
	must(t, s.Add("storage.pg", 503))
	must(t, s.Add("auth.jwt.verify", 401))
	must(t, s.Add("config.read.yaml.parse", 400))

	tests := []struct {
		reason string
		want   int
		pat    string
		ok     bool
	}{
		{"storage.pg.connect", 503, "storage.pg", true},
		{"storage.pg", 503, "storage.pg", true},
		{"auth.jwt.verify", 401, "auth.jwt.verify", true},
		{"config.read.yaml.parse", 400, "config.read.yaml.parse", true},
		{"storage.pgx", 0, "", false},
		{"storage", 0, "", false},
		{"", 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			v, p, ok := s.Match(tt.reason)
			if ok != tt.ok || v != tt.want || p != tt.pat {
				t.Fatalf("Match(%q) = (%d, %q, %v), want (%d, %q, %v)", tt.reason, v, p, ok, tt.want, tt.pat, tt.ok)
			}
		})
	}
}

func TestMatch_Wildcard(t *testing.T) {
	var s Set[int]
	must(t, s.Add("auth.*.verify", 498))
	must(t, s.Add("auth.jwt.verify", 401))

	if v, p, ok := s.Match("auth.jwt.verify"); !ok || v != 401 || p != "auth.jwt.verify" {
		t.Fatalf("literal must beat wildcard, got (%d, %q, %v)", v, p, ok)
	}
	if v, p, ok := s.Match("auth.saml.verify.token"); !ok || v != 498 || p != "auth.*.verify" {
		t.Fatalf("wildcard match failed: (%d, %q, %v)", v, p, ok)
	}
	if _, _, ok := s.Match("auth.verify"); ok {
		t.Fatalf("wildcard must not match zero segments")
	}
}

func TestMatch_DeeperWildcardBeatsShallowLiteral(t *testing.T) {
	var s Set[int]
	must(t, s.Add("a.*.c", 7))
	must(t, s.Add("a.b", 1))

	if v, p, ok := s.Match("a.b.c"); !ok || v != 7 || p != "a.*.c" {
		t.Fatalf("deeper pattern must win: (%d, %q, %v)", v, p, ok)
	}
	if v, _, _ := s.Match("a.b.d"); v != 1 {
		t.Fatalf("a.b.d should fall back to a.b, got %d", v)
	}
}

func TestMatch_FirstDifferingPositionDecides(t *testing.T) {
	var s Set[string]
	must(t, s.Add("*.pg.*", "wild-first"))
	must(t, s.Add("storage.*.*", "literal-first"))

	if v, _, _ := s.Match("storage.pg.connect"); v != "literal-first" {
		t.Fatalf("got %q, want literal-first", v)
	}
}

func TestMatch_TruncatesAtMalformedSegment(t *testing.T) {
	var s Set[int]
	must(t, s.Add("storage.pg", 1))
	must(t, s.Add("storage.pg.connect", 2))

	if v, _, ok := s.Match("storage.pg.Connect"); !ok || v != 1 {
		t.Fatalf("got (%d, %v), want 1", v, ok)
	}
	if _, _, ok := s.Match("Storage.pg"); ok {
		t.Fatalf("malformed first segment must not match")
	}
	if v, _, _ := s.Match("storage.pg..connect"); v != 1 {
		t.Fatalf("empty segment should truncate, got %d", v)
	}
}

func TestAdd_ReplacesIdentical(t *testing.T) {
	var s Set[int]
	must(t, s.Add("storage.pg", 1))
	must(t, s.Add("storage.pg", 2))
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if v, _, _ := s.Match("storage.pg"); v != 2 {
		t.Fatalf("value not replaced: %d", v)
	}
}

func TestAdd_Invalid(t *testing.T) {
	var s Set[int]
	for _, p := range []string{"", "UPPER.case", "a..b", "*", "*.*", "1abc", "a.b-c"} {
		if err := s.Add(p, 1); !errors.Is(err, ErrInvalid) {
			t.Errorf("Add(%q) = %v, want ErrInvalid", p, err)
		}
	}
	if s.Len() != 0 {
		t.Fatalf("invalid patterns must not be stored")
	}
}

func TestNilSet(t *testing.T) {
	var s *Set[int]
	if s.Len() != 0 {
		t.Fatalf("nil Len")
	}
	if _, _, ok := s.Match("a.b"); ok {
		t.Fatalf("nil set must not match")
	}
}

func BenchmarkMatch(b *testing.B) {
	var s Set[int]
	for i := range 32 {
		_ = s.Add(fmt.Sprintf("svc%d.op", i), i)
	}
	_ = s.Add("storage.*.connect", 503)
	_ = s.Add("storage.pg", 500)
	b.ReportAllocs()
	for b.Loop() {
		_, _, _ = s.Match("storage.pg.connect_timeout")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
