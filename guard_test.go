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
	"errors"
	"fmt"
	"io"
	"testing"

	"dirpx.dev/status/code"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBail(t *testing.T) {
	err := Bail("file is empty")
	require.Error(t, err)
	assert.Equal(t, "file is empty", err.Error())

	k, ok := KindOf[Unkind](err)
	require.True(t, ok)
	assert.Equal(t, Unkind("file is empty"), k)
}

func TestEnsure(t *testing.T) {
	assert.NoError(t, Ensure(true, "never"))
	err := Ensure(false, "need at least 3 lines")
	require.Error(t, err)
	assert.Equal(t, "need at least 3 lines", err.Error())
}

func TestEnsureKind(t *testing.T) {
	assert.NoError(t, EnsureKind[NoContext](true, kindEmpty))

	err := EnsureKind[NoContext](false, kindEmpty)
	require.Error(t, err)
	assert.True(t, HasKind(err, kindEmpty))
	assert.False(t, HasKind(err, kindRead))
}

func TestFromKind_ErrKind(t *testing.T) {
	s := FromKind[AdhocContext](kindParse)
	assert.Equal(t, kindParse, s.Kind())
	assert.True(t, s.Context().IsEmpty())

	err := ErrKind[NoContext](kindParse)
	assert.Equal(t, "Failed to parse file", err.Error())
}

func TestWrapSource(t *testing.T) {
	assert.NoError(t, WrapSource[NoContext](nil, kindRead))

	err := WrapSource[NoContext](io.ErrUnexpectedEOF, kindParse)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, "Failed to parse file", err.Error())
}

func TestWrapInternal(t *testing.T) {
	assert.NoError(t, WrapInternal[NoContext](nil, kindRead))

	err := WrapInternal[NoContext](io.ErrUnexpectedEOF, kindParse)
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.ErrUnexpectedEOF)

	var s *fileStatus
	require.ErrorAs(t, err, &s)
	assert.ErrorIs(t, s.Internal(), io.ErrUnexpectedEOF)
}

func TestKindOf_WalksPublicChain(t *testing.T) {
	inner := newFile(kindEmpty)
	err := fmt.Errorf("loading: %w", Adhoc("outer").WithSource(inner))

	k, ok := KindOf[fileKind](err)
	require.True(t, ok)
	assert.Equal(t, kindEmpty, k)

	u, ok := KindOf[Unkind](err)
	require.True(t, ok)
	assert.Equal(t, Unkind("outer"), u)

	_, ok = KindOf[code.Code](err)
	assert.False(t, ok)
	_, ok = KindOf[fileKind](nil)
	assert.False(t, ok)
}

func TestKindOf_IgnoresPrivateCause(t *testing.T) {
	err := Adhoc("outer").WithInternal(newFile(kindEmpty))

	_, ok := KindOf[fileKind](err)
	assert.False(t, ok)
	_, ok = KindOf[fileKind](err.Internal())
	assert.False(t, ok, "the internal view is read through its public side")
	assert.False(t, HasKind(err.Internal(), kindEmpty))

	u, ok := KindOf[Unkind](err.Internal())
	require.True(t, ok)
	assert.Equal(t, Unkind("outer"), u)
}

func TestHasKind_Sentinel(t *testing.T) {
	errMissing := errors.New("missing")
	err := New[code.Code, NoContext](code.NotFound).WithSource(errMissing)
	assert.True(t, HasKind(err, code.NotFound))
	assert.False(t, HasKind(err, code.Conflict))
	assert.ErrorIs(t, err, errMissing)
}
