// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/wavelink-rtc/wavelink/lib/codec"
	"github.com/wavelink-rtc/wavelink/signal"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the inspection and returns the process exit code. It
// takes its streams as parameters so tests can drive it directly.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("wavelink-inspect", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	hexInput := flags.Bool("hex", false, "treat stdin as hex text instead of binary")
	raw := flags.Bool("raw", false, "treat stdin as a bare CBOR item, not a frame envelope")
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "wavelink-inspect: takes no positional arguments, got %q\n", flags.Arg(0))
		return 2
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "wavelink-inspect: reading stdin: %v\n", err)
		return 1
	}
	if *hexInput {
		data, err = hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
		if err != nil {
			fmt.Fprintf(stderr, "wavelink-inspect: decoding hex input: %v\n", err)
			return 1
		}
	}
	if len(data) == 0 {
		fmt.Fprintln(stderr, "wavelink-inspect: empty input: expected CBOR data on stdin")
		return 1
	}

	if *raw {
		if err := inspectRaw(data, stdout); err != nil {
			fmt.Fprintf(stderr, "wavelink-inspect: %v\n", err)
			return 1
		}
		return 0
	}
	if err := inspectFrame(data, stdout); err != nil {
		fmt.Fprintf(stderr, "wavelink-inspect: %v\n", err)
		return 1
	}
	return 0
}

// inspectRaw prints a bare CBOR item in diagnostic notation.
func inspectRaw(data []byte, w io.Writer) error {
	diag, err := codec.Diagnose(data)
	if err != nil {
		return fmt.Errorf("diagnosing CBOR: %w", err)
	}
	fmt.Fprintln(w, diag)
	return nil
}

// inspectFrame decodes a frame envelope and prints its parts.
func inspectFrame(data []byte, w io.Writer) error {
	frame, err := signal.DecodeFrame(data)
	if err != nil {
		return err
	}

	kind, err := frame.MessageKind()
	if err != nil {
		return err
	}
	family := "server"
	if kind.Client() {
		family = "client"
	}
	fmt.Fprintf(w, "kind: %s (code %d, %s)\n", kind.Name(), kind.Code(), family)

	if meta := frame.Chunk; meta != nil {
		fmt.Fprintf(w, "chunk: parent=%s index=%d total=%d", meta.Parent, meta.Index, meta.Total)
		if meta.Compression != "" {
			fmt.Fprintf(w, " compression=%s", meta.Compression)
		}
		if len(meta.Checksum) > 0 {
			fmt.Fprintf(w, " checksum=%x", meta.Checksum)
		}
		fmt.Fprintln(w)
	}

	if len(frame.Payload) == 0 {
		fmt.Fprintln(w, "payload: (empty)")
		return nil
	}
	diag, err := codec.Diagnose(frame.Payload)
	if err != nil {
		return fmt.Errorf("diagnosing payload: %w", err)
	}
	fmt.Fprintf(w, "payload: %s\n", diag)
	return nil
}
