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
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logged(t *testing.T, v any) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Error("failed", "err", v)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	group, ok := rec["err"].(map[string]any)
	require.True(t, ok, "err should be logged as a group: %s", buf.String())
	return group
}

func TestStatus_LogValue(t *testing.T) {
	s := New[Coded, AdhocContext](MustCoded("unavailable", "storage.pg.connect", "database unreachable")).
		UpdateContext(Fields("host", "db1", "attempt", 3)).
		WithSource(errors.New("connection refused"))

	got := logged(t, s)
	assert.Equal(t, "database unreachable", got["kind"])
	assert.Equal(t, "unavailable", got["code"])
	assert.Equal(t, "storage.pg.connect", got["reason"])
	assert.Equal(t, map[string]any{"host": "db1", "attempt": float64(3)}, got["context"])
	assert.Equal(t, []any{"connection refused"}, got["causes"])
	assert.NotContains(t, got, "source")
}

func TestStatus_LogValue_HidesPrivateCause(t *testing.T) {
	s := newFile(kindRead).WithInternal(errors.New("open /etc/shadow: permission denied"))

	public := logged(t, s)
	assert.Equal(t, "Failed to read file", public["kind"])
	assert.NotContains(t, public, "causes")
	assert.NotContains(t, public, "context")
	assert.NotContains(t, public, "code")

	internal := logged(t, s.Internal())
	assert.Equal(t, "private", internal["source"])
	assert.Equal(t, []any{"open /etc/shadow: permission denied"}, internal["causes"])
}

type plainContext struct{ note string }

func (c plainContext) String() string { return c.note }

func (c plainContext) IsEmpty() bool { return c.note == "" }

func (c plainContext) Update(r plainContext) plainContext {
	if c.note == "" {
		return r
	}
	return plainContext{c.note + "; " + r.note}
}

func TestStatus_LogValue_StringContext(t *testing.T) {
	s := New[Unkind, plainContext]("custom").UpdateContext(plainContext{"x"})
	got := logged(t, s)
	assert.Equal(t, "x", got["context"])
}

func TestAdhocContext_LogValue(t *testing.T) {
	v := Fields("a", 1, "b", "two").LogValue()
	require.Equal(t, slog.KindGroup, v.Kind())
	attrs := v.Group()
	require.Len(t, attrs, 2)
	assert.Equal(t, "a", attrs[0].Key)
	assert.Equal(t, "b", attrs[1].Key)
}
