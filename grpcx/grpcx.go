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

// Package grpcx turns errors returned by gRPC handlers into gRPC statuses.
//
// The status code comes from an apis.Mapper and the message is the error's
// own Error() text, which for a status.Status never contains a cause. Errors
// that already carry a gRPC status pass through untouched.
package grpcx

import (
	"context"
	"log/slog"

	"dirpx.dev/status/apis"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
)

// LogFn is called with every error the interceptor converts. It receives
// the error as the handler returned it, so a handler returning an internal
// view gets its private causes logged.
type LogFn func(ctx context.Context, method string, err error)

// SlogLogger returns a LogFn that logs at error level through l.
func SlogLogger(l *slog.Logger) LogFn {
	return func(ctx context.Context, method string, err error) {
		l.ErrorContext(ctx, "rpc failed", "method", method, "err", err)
	}
}

// UnaryServerInterceptor converts handler errors with m. A nil logFn
// disables logging.
func UnaryServerInterceptor(m apis.Mapper, logFn LogFn) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if logFn != nil {
			logFn(ctx, info.FullMethod, err)
		}
		return nil, Convert(m, err)
	}
}

type grpcStatuser interface {
	GRPCStatus() *gstatus.Status
}

// Convert maps err to a gRPC status error. An internal view is converted as
// its public side. A nil err stays nil.
func Convert(m apis.Mapper, err error) error {
	if err == nil {
		return nil
	}
	if v, ok := err.(apis.InternalView); ok {
		err = v.Public()
	}
	// Only a status error at the top passes through; one found deeper is a
	// cause and does not override the classification.
	if _, ok := err.(grpcStatuser); ok {
		return err
	}
	t := m.Resolve(err)
	return gstatus.Error(t.GRPC, err.Error())
}
