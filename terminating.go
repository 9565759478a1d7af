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
	"os"
	"strings"
)

// Terminating wraps an error on its way out of a program so that printing it
// shows the whole cause chain:
//
//	Failed to read file
//
//	Caused by: open config.yaml: no such file or directory
type Terminating struct {
	err error
}

// Terminate wraps err. A nil err yields nil.
func Terminate(err error) *Terminating {
	if err == nil {
		return nil
	}
	return &Terminating{err: err}
}

// Error is the wrapped error's own message, without causes.
func (t *Terminating) Error() string {
	if t == nil || t.err == nil {
		return "<nil>"
	}
	return t.err.Error()
}

func (t *Terminating) Unwrap() error {
	if t == nil {
		return nil
	}
	return t.err
}

// Report renders the wrapped error followed by one "Caused by" block per
// cause.
func (t *Terminating) Report() string {
	var b strings.Builder
	_ = WriteReport(&b, t.Unwrap())
	return b.String()
}

// Format writes the report for %+v and %#v, and Error() otherwise.
func (t *Terminating) Format(f fmt.State, verb rune) {
	if verb == 'v' && (f.Flag('+') || f.Flag('#')) {
		_, _ = io.WriteString(f, t.Report())
		return
	}
	format(f, verb, t)
}

// WriteReport writes err's message and then, for each error it wraps, a
// blank line and "Caused by: " with that error's message. A Terminating is
// reported as the error it wraps. Nothing is written for a nil err.
func WriteReport(w io.Writer, err error) error {
	if t, ok := err.(*Terminating); ok {
		err = t.Unwrap()
	}
	if err == nil {
		return nil
	}
	rw := &reportWriter{w: w}
	rw.print(err.Error(), "\n")
	for cause := range NewChain(errors.Unwrap(err)).All() {
		rw.print("\nCaused by: ", cause.Error(), "\n")
	}
	return rw.err
}

// reportWriter keeps the first write error and drops later writes.
type reportWriter struct {
	w   io.Writer
	err error
}

func (r *reportWriter) print(parts ...string) {
	for _, p := range parts {
		if r.err != nil {
			return
		}
		_, r.err = io.WriteString(r.w, p)
	}
}

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Main runs run and, when it fails, writes the report to stderr and exits
// with status 1.
//
//	func main() { status.Main(run) }
func Main(run func() error) {
	if err := run(); err != nil {
		_ = WriteReport(stderr, err)
		exit(1)
	}
}
