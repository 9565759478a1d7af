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

package grpcx

import (
	"context"
	"errors"
	"testing"

	"dirpx.dev/status"
	"dirpx.dev/status/code"
	"dirpx.dev/status/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/users.v1.Users/Get"}

func TestUnaryServerInterceptor(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)

	var logged []error
	ic := UnaryServerInterceptor(m, func(_ context.Context, method string, err error) {
		assert.Equal(t, info.FullMethod, method)
		logged = append(logged, err)
	})

	resp, err := ic(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Empty(t, logged)

	secret := errors.New("select * from users: connection reset")
	failing := status.New[code.Code, status.AdhocContext](code.NotFound).
		UpdateContext(status.Fields("user", "42")).
		WithInternal(secret)

	_, err = ic(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, failing.Internal()
	})
	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "not_found\n\nuser: 42", st.Message())
	assert.NotContains(t, st.Message(), "connection reset")

	require.Len(t, logged, 1)
	assert.ErrorIs(t, logged[0], secret, "the log hook sees the handler's own error")
}

func TestConvert(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)

	assert.NoError(t, Convert(m, nil))

	already := gstatus.Error(codes.Aborted, "retry")
	assert.Same(t, already, Convert(m, already))

	st, _ := gstatus.FromError(Convert(m, errors.New("boom")))
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "boom", st.Message())
}

func TestConvert_CauseDoesNotOverrideClassification(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)

	denied := gstatus.Error(codes.PermissionDenied, "db role app_ro lacks SELECT on secrets")
	st := status.New[code.Code, status.NoContext](code.NotFound)

	tests := []struct {
		name string
		err  error
	}{
		{"private cause via internal view", st.WithInternal(denied).Internal()},
		{"private cause", st.WithInternal(denied)},
		{"public cause", st.WithSource(denied)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := gstatus.FromError(Convert(m, tt.err))
			require.True(t, ok)
			assert.Equal(t, codes.NotFound, got.Code())
			assert.Equal(t, "not_found", got.Message())
		})
	}
}
