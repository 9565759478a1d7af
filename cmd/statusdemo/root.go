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
	"log/slog"
	"net/http"

	"dirpx.dev/status/apis"
	"dirpx.dev/status/code"
	"dirpx.dev/status/mapper"
	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand, filled in before they run.
type app struct {
	debug     bool
	logLevel  string
	logFormat string

	log    *slog.Logger
	mapper apis.Mapper
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "statusdemo",
		Short:         "Read key=value files and report failures with status errors",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Report private causes too")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "Log format (text, json)")

	cmd.AddCommand(newReadCmd(a))
	cmd.AddCommand(newClassifyCmd(a))

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := parseLogConfig(a.logLevel, a.logFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = newLogger(cfg)

	// a malformed file is understood but unprocessable
	a.mapper, err = mapper.New(
		mapper.WithHTTPPrefix(code.Invalid, "file.parse", http.StatusUnprocessableEntity),
	)
	return err
}

// fail logs err and returns the view of it the process should report.
func (a *app) fail(msg string, st *demoStatus) error {
	t := a.mapper.Resolve(st)
	if a.debug {
		a.log.Error(msg, "err", st.Internal(), "http", t.HTTP, "grpc", t.GRPC.String())
		return st.Internal()
	}
	a.log.Error(msg, "err", st, "http", t.HTTP, "grpc", t.GRPC.String())
	return st
}
