// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package diagnostics offers optional performance diagnostics for cli based
// tools: CPU profiling, execution tracing, and a pprof server, all controlled
// by flags of the wrapped command.
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

// WrapAction wraps a cli action such that performance diagnostics are started
// before and stopped after the action, as requested by the given flags.
// The portFlag must be an integer flag; a valid port starts a pprof server on
// it. The cpuProfileFlag and traceFlag are string flags naming the target
// files for a CPU profile and an execution trace; an empty value disables the
// respective recording.
func WrapAction(action cli.ActionFunc, portFlag *cli.IntFlag, cpuProfileFlag, traceFlag *cli.StringFlag) cli.ActionFunc {
	return func(context *cli.Context) error {
		startPprofServer(context.Int(portFlag.Names()[0]))

		if file := strings.TrimSpace(context.String(cpuProfileFlag.Names()[0])); file != "" {
			if err := startCpuProfiler(file); err != nil {
				return err
			}
			defer pprof.StopCPUProfile()
		}

		if file := strings.TrimSpace(context.String(traceFlag.Names()[0])); file != "" {
			if err := startTracer(file); err != nil {
				return err
			}
			defer trace.Stop()
		}

		return action(context)
	}
}

func startPprofServer(port int) {
	if port <= 0 || port >= (1<<16) {
		return
	}
	fmt.Printf("Starting diagnostic server at http://localhost:%d/debug/pprof/\n", port)
	fmt.Printf("Block and mutex sampling rate is set to 100%% for diagnostics, which may impact overall performance\n")
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
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("could not start CPU profile: %w", err)
	}
	return nil
}

func startTracer(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	if err := trace.Start(f); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	return nil
}
