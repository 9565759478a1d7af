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
	"dirpx.dev/status/code"
	"google.golang.org/grpc/codes"
)

// Option configures a Mapper at build time.
type Option func(*builder)

// WithHTTPDefault sets the HTTP status used for c when neither an override
// nor a prefix rule applies.
func WithHTTPDefault(c code.Code, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// WithGRPCDefault is the gRPC counterpart of WithHTTPDefault.
func WithGRPCDefault(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpc }
}

// WithHTTPOverride pins the HTTP status for c regardless of the reason.
func WithHTTPOverride(c code.Code, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride pins the gRPC status for c regardless of the reason.
func WithGRPCOverride(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPPrefix adds a reason-prefix rule for c. "*" stands for exactly one
// segment; the most specific matching prefix wins.
func WithHTTPPrefix(c code.Code, prefix string, http int) Option {
	return func(b *builder) {
		b.httpPrefixes[c] = append(b.httpPrefixes[c], prefixRule{prefix, http})
	}
}

// WithGRPCPrefix is the gRPC counterpart of WithHTTPPrefix.
func WithGRPCPrefix(c code.Code, prefix string, grpc int) Option {
	return func(b *builder) {
		b.grpcPrefixes[c] = append(b.grpcPrefixes[c], prefixRule{prefix, grpc})
	}
}

// WithFallback replaces the statuses used for unclassified errors and for
// codes without any rule (500 / Internal by default).
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
