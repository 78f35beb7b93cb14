/*
Copyright 2024 The pzhf Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command pzhf is the canonical Huffman stream compressor's front end. It
// accepts both a Cobra subcommand tree (pzhf compress|decompress) and the
// bare positional form `pzhf <source> <destination> <mode>`, so scripts
// written against the plain positional contract keep working.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mofkat/pzhf"
	"github.com/mofkat/pzhf/container"
	"github.com/mofkat/pzhf/entropy"
	"github.com/mofkat/pzhf/internal/log"
)

var (
	level string
	force bool
)

// exitError carries the process exit code alongside the error message a
// failed run should report, using error wrapping around the Err* exit
// codes defined in Definitions.go.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withExit(code int, err error) error {
	return &exitError{code: code, err: err}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "pzhf:", ee.Error())
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "pzhf:", err)
		os.Exit(pzhf.ErrUsage)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pzhf <source> <destination> <mode>",
		Short:         "pzhf streams bytes through a canonical Huffman codec",
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPositional,
	}
	root.PersistentFlags().StringVar(&level, "level", "info", "log level: debug|info|warn|error")
	root.PersistentFlags().BoolVar(&force, "force", false, "overwrite destination if it already exists")
	root.AddCommand(newCompressCmd(), newDecompressCmd())
	return root
}

func runPositional(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return cmd.Help()
	}
	switch mode := args[2]; mode {
	case "c":
		return runCompress(args[0], args[1])
	case "d":
		return runDecompress(args[0], args[1])
	default:
		return withExit(pzhf.ErrUsage, fmt.Errorf("unknown mode %q (want c or d)", mode))
	}
}

func newCompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compress <source> <destination>",
		Short: "Compress source into destination",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(args[0], args[1])
		},
	}
}

func newDecompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompress <source> <destination>",
		Short: "Decompress source into destination",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompress(args[0], args[1])
		},
	}
}

func runCompress(source, destination string) error {
	logger := log.New(os.Stderr, level)

	src, err := os.Open(source)
	if err != nil {
		return withExit(pzhf.ErrOpenFile, err)
	}
	defer src.Close()

	dst, err := createDestination(destination)
	if err != nil {
		return err
	}
	defer dst.Close()

	logger.ProcessEvent(pzhf.NewEvent(pzhf.EvtCompressionStart, 0, time.Time{}))
	n, err := container.Compress(dst, src)
	if err != nil {
		return withExit(exitCodeFor(err), err)
	}
	logger.ProcessEvent(pzhf.NewEvent(pzhf.EvtCompressionEnd, n, time.Time{}))
	return nil
}

func runDecompress(source, destination string) error {
	logger := log.New(os.Stderr, level)

	src, err := os.Open(source)
	if err != nil {
		return withExit(pzhf.ErrOpenFile, err)
	}
	defer src.Close()

	dst, err := createDestination(destination)
	if err != nil {
		return err
	}
	defer dst.Close()

	logger.ProcessEvent(pzhf.NewEvent(pzhf.EvtDecompressionStart, 0, time.Time{}))
	n, err := container.Decompress(dst, src)
	if err != nil {
		return withExit(exitCodeFor(err), err)
	}
	logger.ProcessEvent(pzhf.NewEvent(pzhf.EvtDecompressionEnd, n, time.Time{}))
	return nil
}

func createDestination(destination string) (*os.File, error) {
	if !force {
		if _, err := os.Stat(destination); err == nil {
			return nil, withExit(pzhf.ErrOverwriteFile,
				fmt.Errorf("%s already exists (use --force to overwrite)", destination))
		}
	}
	dst, err := os.Create(destination)
	if err != nil {
		return nil, withExit(pzhf.ErrCreateFile, err)
	}
	return dst, nil
}

// exitCodeFor maps the container/entropy error taxonomy onto a CLI exit
// code.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, container.ErrInvalidMagic):
		return pzhf.ErrInvalidMagic
	case errors.Is(err, container.ErrTruncatedHeader):
		return pzhf.ErrTruncatedHeader
	case errors.Is(err, container.ErrMalformedHeader):
		return pzhf.ErrMalformedHeader
	case errors.Is(err, container.ErrCorruptPayload):
		return pzhf.ErrCorruptPayload
	case errors.Is(err, entropy.ErrInvalidCode):
		return pzhf.ErrInvalidCode
	default:
		return pzhf.ErrIO
	}
}
