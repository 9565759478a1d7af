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
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/status/apis"
	"dirpx.dev/status/code"
	"dirpx.dev/status/mapper/internal/pattern"
	"dirpx.dev/status/reason"
	"google.golang.org/grpc/codes"
)

// New builds an immutable apis.Mapper.
//
// Options are applied over the package defaults, every reason prefix is
// normalized and compiled, and the result is copied into a snapshot that no
// longer references the options' input. An invalid prefix fails the build
// with an error wrapping pattern.ErrInvalid.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	httpPrefix, err := compile("HTTP", b.httpPrefixes, asInt)
	if err != nil {
		return nil, err
	}
	grpcPrefix, err := compile("gRPC", b.grpcPrefixes, asGRPC)
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults, asInt),
		grpcDefault:  freeze(b.grpcDefaults, asGRPC),
		httpOverride: freeze(b.httpOverride, asInt),
		grpcOverride: freeze(b.grpcOverride, asGRPC),
		httpPrefix:   httpPrefix,
		grpcPrefix:   grpcPrefix,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// ErrInvalidPrefix is the sentinel wrapped by New for a malformed prefix.
var ErrInvalidPrefix = pattern.ErrInvalid

// mapper is safe for concurrent use: nothing is written after New returns.
type mapper struct {
	httpDefault map[code.Code]int
	grpcDefault map[code.Code]codes.Code

	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code

	httpPrefix map[code.Code]*pattern.Set[int]
	grpcPrefix map[code.Code]*pattern.Set[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// source names the tier that produced a status.
type source string

const (
	fromOverride source = "override"
	fromPrefix   source = "prefix"
	fromDefault  source = "default"
	fromFallback source = "fallback"
)

// lookup walks override, prefix, default and fallback in that order.
func lookup[V any](c code.Code, r reason.Reason, override, def map[code.Code]V, prefix map[code.Code]*pattern.Set[V], fallback V) (V, source, string) {
	if v, ok := override[c]; ok {
		return v, fromOverride, ""
	}
	if v, pat, ok := prefix[c].Match(string(r)); ok {
		return v, fromPrefix, pat
	}
	if v, ok := def[c]; ok {
		return v, fromDefault, ""
	}
	return fallback, fromFallback, ""
}

func (m *mapper) http(c code.Code, r reason.Reason) (int, source, string) {
	return lookup(c, r, m.httpOverride, m.httpDefault, m.httpPrefix, m.fallbackHTTP)
}

func (m *mapper) grpc(c code.Code, r reason.Reason) (codes.Code, source, string) {
	return lookup(c, r, m.grpcOverride, m.grpcDefault, m.grpcPrefix, m.fallbackGRPC)
}

// HTTPStatus resolves the HTTP status for c and r.
func (m *mapper) HTTPStatus(c code.Code, r reason.Reason) int {
	v, _, _ := m.http(c, r)
	return v
}

// GRPCStatus resolves the gRPC status for c and r.
func (m *mapper) GRPCStatus(c code.Code, r reason.Reason) codes.Code {
	v, _, _ := m.grpc(c, r)
	return v
}

// Status resolves both transports with the same inputs.
func (m *mapper) Status(c code.Code, r reason.Reason) apis.Transport {
	return apis.Transport{
		HTTP: m.HTTPStatus(c, r),
		GRPC: m.GRPCStatus(c, r),
	}
}

// Resolve classifies err by the first apis.CodedError with a non-empty code
// on its public chain. Internal views are resolved through their public
// side, so a private cause never decides the status. Unclassified errors
// get the fallback.
func (m *mapper) Resolve(err error) apis.Transport {
	if err == nil {
		return apis.Transport{}
	}
	c, r, ok := Classify(err)
	if !ok {
		return apis.Transport{HTTP: m.fallbackHTTP, GRPC: m.fallbackGRPC}
	}
	return m.Status(c, r)
}

// Classify returns the code and reason of the first apis.CodedError with a
// non-empty code on err's public chain, the same error Resolve maps.
func Classify(err error) (code.Code, reason.Reason, bool) {
	for err != nil {
		if v, ok := err.(apis.InternalView); ok {
			err = v.Public()
			continue
		}
		if ce, ok := err.(apis.CodedError); ok && ce.ErrorCode() != "" {
			var r reason.Reason
			if re, ok := err.(apis.ReasonedError); ok {
				r = reason.Reason(re.ErrorReason())
			}
			return code.Code(ce.ErrorCode()), r, true
		}
		err = errors.Unwrap(err)
	}
	return code.Empty, reason.Empty, false
}

// Explain traces how c and r were resolved, one line per transport:
//
//	code="unavailable" reason="storage.pg.connect_timeout"
//	http: source=prefix pattern="storage.pg" -> 503
//	grpc: source=default -> UNAVAILABLE(14)
//
// The format is meant for people, not parsers.
func (m *mapper) Explain(c code.Code, r reason.Reason) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q reason=%q\n", c, r)

	hv, hsrc, hpat := m.http(c, r)
	writeLine(&b, "http", hsrc, hpat, fmt.Sprint(hv))
	b.WriteByte('\n')

	gv, gsrc, gpat := m.grpc(c, r)
	writeLine(&b, "grpc", gsrc, gpat, fmt.Sprintf("%s(%d)", grpcName(gv), int(gv)))
	return b.String()
}

func writeLine(b *strings.Builder, transport string, src source, pat, val string) {
	_, _ = fmt.Fprintf(b, "%s: source=%s", transport, src)
	if src == fromPrefix {
		_, _ = fmt.Fprintf(b, " pattern=%q", pat)
	}
	_, _ = fmt.Fprintf(b, " -> %s", val)
}

// grpcName renders c the way the gRPC wire names it: DEADLINE_EXCEEDED.
func grpcName(c codes.Code) string {
	name := c.String()
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if i > 0 && ch >= 'A' && ch <= 'Z' && name[i-1] >= 'a' && name[i-1] <= 'z' {
			b.WriteByte('_')
		}
		b.WriteByte(ch)
	}
	return strings.ToUpper(b.String())
}
