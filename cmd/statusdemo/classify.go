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
	"fmt"

	"dirpx.dev/status"
	"dirpx.dev/status/code"
	"dirpx.dev/status/reason"
	"github.com/spf13/cobra"
)

func newClassifyCmd(a *app) *cobra.Command {
	var rawCode, rawReason string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Show how a code and reason map to HTTP and gRPC statuses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := code.Parse(rawCode)
			if err != nil {
				return a.fail("classify failed", newStatus(KindUsage).
					UpdateContext(status.Fields("flag", "code", "value", rawCode)).
					WithSource(err))
			}
			r, err := reason.Parse(rawReason)
			if err != nil {
				return a.fail("classify failed", newStatus(KindUsage).
					UpdateContext(status.Fields("flag", "reason", "value", rawReason)).
					WithSource(err))
			}

			out := cmd.OutOrStdout()
			heading := c.String()
			if !r.IsEmpty() {
				heading += " " + r.String()
			}
			fmt.Fprintln(out, title(heading))
			fmt.Fprintln(out, a.mapper.Explain(c, r))
			return nil
		},
	}

	cmd.Flags().StringVar(&rawCode, "code", "", "Error code, e.g. not_found")
	cmd.Flags().StringVar(&rawReason, "reason", "", "Optional dotted reason, e.g. storage.pg.connect")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}
