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

package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"dirpx.dev/status"
	"github.com/spf13/cobra"
)

type entry struct {
	key, value string
}

func newReadCmd(a *app) *cobra.Command {
	var minLines int

	cmd := &cobra.Command{
		Use:   "read <path>",
		Short: "Read a key=value file",
		Long: `Read a file of key=value lines. Blank lines and lines starting with '#'
are skipped. The command fails when the file cannot be read, has fewer
than --min-lines entries, or contains a malformed line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			a.log.Debug("reading", "path", path, "min_lines", minLines)

			entries, st := readEntries(path, minLines)
			if st != nil {
				return a.fail("read failed", st)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, okLine(fmt.Sprintf("%s: %d entries", path, len(entries))))
			for _, e := range entries {
				fmt.Fprintf(out, "  %s %s %s\n", keyText(e.key), dim(iconArrow), e.value)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&minLines, "min-lines", 1, "Minimum number of entries")

	return cmd
}

// readEntries keeps the io error private: callers learn that the read
// failed and for which path, operators see why through the internal view.
func readEntries(path string, minLines int) ([]entry, *demoStatus) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newStatus(KindRead).
			UpdateContext(status.Fields("path", path)).
			WithInternal(err)
	}

	entries, err := parseEntries(data)
	if err != nil {
		var le *lineError
		st := newStatus(KindParse).UpdateContext(status.Fields("path", path))
		if errors.As(err, &le) {
			st = st.UpdateContext(status.Fields("line", le.line))
		}
		return nil, st.WithSource(err)
	}

	if len(entries) < minLines {
		return nil, newStatus(KindEmpty).
			UpdateContext(status.Fields("path", path, "entries", len(entries), "min_lines", minLines))
	}
	return entries, nil
}

type lineError struct {
	line int
	text string
}

func (e *lineError) Error() string {
	return fmt.Sprintf("line %d: expected key=value, got %q", e.line, e.text)
}

var errEmptyKey = errors.New("empty key")

func parseEntries(data []byte) ([]entry, error) {
	var entries []entry
	sc := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, found := strings.Cut(line, "=")
		if !found {
			return nil, &lineError{line: n, text: line}
		}
		k = strings.TrimSpace(k)
		if k == "" {
			return nil, fmt.Errorf("%w: %w", &lineError{line: n, text: line}, errEmptyKey)
		}
		entries = append(entries, entry{key: k, value: strings.TrimSpace(v)})
	}
	return entries, sc.Err()
}
