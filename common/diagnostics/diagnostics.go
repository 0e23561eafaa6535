// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package diagnostics instruments CLI commands with optional performance
// diagnostics: a pprof server, CPU profiling, and execution tracing, each
// enabled by a dedicated flag.
package diagnostics

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/urfave/cli/v2"
)

// Flags groups the flags controlling the diagnostics of a wrapped action.
// ServerPort must be an integer flag selecting the pprof server port (0
// disables the server), CpuProfile and Trace are string flags naming the
// target files (empty disables the respective recording).
type Flags struct {
	ServerPort *cli.IntFlag
	CpuProfile *cli.StringFlag
	Trace      *cli.StringFlag
}

// WrapAction wraps a CLI action such that the diagnostics selected through
// the given flags are active for the duration of the action.
func WrapAction(action cli.ActionFunc, flags Flags) cli.ActionFunc {
	return func(context *cli.Context) error {
		startServer(context.Int(flags.ServerPort.Names()[0]))

		if file := strings.TrimSpace(context.String(flags.CpuProfile.Names()[0])); file != "" {
			if err := startCpuProfiler(file); err != nil {
				return err
			}
			defer pprof.StopCPUProfile()
		}

		if file := strings.TrimSpace(context.String(flags.Trace.Names()[0])); file != "" {
			if err := startTracer(file); err != nil {
				return err
			}
			defer trace.Stop()
		}

		return action(context)
	}
}

func startServer(port int) {
	if port <= 0 || port >= (1<<16) {
		return
	}
	fmt.Printf("Starting diagnostic server at port http://localhost:%d\n", port)
	fmt.Printf("(see https://pkg.go.dev/net/http/pprof#hdr-Usage_examples for usage examples)\n")
	go func() {
		addr := fmt.Sprintf("localhost:%d", port)
		log.Println(http.ListenAndServe(addr, nil))
	}()
	runtime.SetBlockProfileRate(1)
	runtime.SetMutexProfileFraction(1)
}

func startCpuProfiler(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %s", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("could not start CPU profile: %s", err)
	}
	return nil
}

func startTracer(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %v", err)
	}
	if err := trace.Start(f); err != nil {
		return fmt.Errorf("failed to start trace: %v", err)
	}
	return nil
}
