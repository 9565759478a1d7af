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
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminate_Nil(t *testing.T) {
	assert.Nil(t, Terminate(nil))
	var term *Terminating
	assert.Equal(t, "<nil>", term.Error())
	assert.Equal(t, "", term.Report())

	var zero Terminating
	assert.Equal(t, "<nil>", zero.Error())
	assert.NoError(t, zero.Unwrap())
	assert.Equal(t, "", zero.Report())
	assert.Equal(t, "<nil>", fmt.Sprintf("%v", &zero))
}

func TestTerminating_Report(t *testing.T) {
	inner := Adhoc("inner")
	outer := Adhoc("outer").WithSource(inner)

	term := Terminate(outer)
	assert.Equal(t, "outer", term.Error())
	assert.Same(t, outer, term.Unwrap())
	assert.Equal(t, "outer\n\nCaused by: inner\n", term.Report())
}

func TestTerminating_ReportWithContextAndDepth(t *testing.T) {
	root := errors.New("permission denied")
	err := Adhoc("load config").
		UpdateContext(Fields("path", "/etc/app.yaml")).
		WithSource(fmt.Errorf("open /etc/app.yaml: %w", root))

	want := "load config\n\npath: /etc/app.yaml\n" +
		"\nCaused by: open /etc/app.yaml: permission denied\n" +
		"\nCaused by: permission denied\n"
	assert.Equal(t, want, Terminate(err).Report())
}

func TestTerminating_PrivateCauseNotReported(t *testing.T) {
	err := newFile(kindRead).WithInternal(errors.New("secret"))
	assert.Equal(t, "Failed to read file\n", Terminate(err).Report())
	assert.Equal(t, "Failed to read file\n\nCaused by: secret\n", Terminate(err.Internal()).Report())
}

func TestTerminating_Format(t *testing.T) {
	term := Terminate(Adhoc("outer").WithSource(errors.New("inner")))

	assert.Equal(t, "outer", fmt.Sprintf("%v", term))
	assert.Equal(t, "outer", fmt.Sprintf("%s", term))
	assert.Equal(t, "outer\n\nCaused by: inner\n", fmt.Sprintf("%+v", term))
	assert.Equal(t, "outer\n\nCaused by: inner\n", fmt.Sprintf("%#v", term))
	assert.Equal(t, `"outer"`, fmt.Sprintf("%q", term))
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, nil))
	assert.Empty(t, buf.String())

	// a Terminating is reported as what it wraps, not as its own cause
	err := Terminate(Adhoc("outer").WithSource(errors.New("inner")))
	require.NoError(t, WriteReport(&buf, err))
	assert.Equal(t, "outer\n\nCaused by: inner\n", buf.String())
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, io.ErrShortWrite
}

func TestWriteReport_StopsOnWriteError(t *testing.T) {
	w := &failingWriter{}
	err := WriteReport(w, Adhoc("outer").WithSource(errors.New("inner")))
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, 1, w.n)
}

func TestMain_ReportsAndExits(t *testing.T) {
	var buf bytes.Buffer
	exitCode := -1
	restore := swapProcess(&buf, func(c int) { exitCode = c })
	defer restore()

	Main(func() error {
		return Adhoc("outer").WithSource(errors.New("inner"))
	})
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "outer\n\nCaused by: inner\n", buf.String())
}

func TestMain_Success(t *testing.T) {
	var buf bytes.Buffer
	called := false
	restore := swapProcess(&buf, func(int) { called = true })
	defer restore()

	Main(func() error { return nil })
	assert.False(t, called)
	assert.Empty(t, buf.String())
}

func swapProcess(w io.Writer, fn func(int)) func() {
	oldStderr, oldExit := stderr, exit
	stderr, exit = w, fn
	return func() { stderr, exit = oldStderr, oldExit }
}
