// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/hanssell-the-fox/go-optionals/optional"
	"github.com/hanssell-the-fox/go-optionals/result"
	"github.com/pbnjay/memory"
	"github.com/urfave/cli/v2"
)

var StressTestCmd = cli.Command{
	Action: withDiagnostics(stressTest),
	Name:   "stress-test",
	Usage:  "run randomized container operation sequences and validate lifecycle invariants",
	Flags: []cli.Flag{
		&numOpsFlag,
		&seedFlag,
		&reportPeriodFlag,
	},
}

var (
	numOpsFlag = cli.IntFlag{
		Name:  "num-ops",
		Usage: "number of randomized operations to run",
		Value: 10_000_000,
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed for the operation sequence, 0 derives one from the clock",
		Value: 0,
	}
	reportPeriodFlag = cli.DurationFlag{
		Name:  "report-period",
		Usage: "period of progress and memory reports",
		Value: 5 * time.Second,
	}
)

func stressTest(context *cli.Context) error {
	numOps := context.Int(numOpsFlag.Name)
	if numOps <= 0 {
		numOps = 10_000_000
	}
	seed := context.Int64(seedFlag.Name)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	reportPeriod := context.Duration(reportPeriodFlag.Name)

	fmt.Printf("Running %d operations with seed %d ...\n", numOps, seed)
	rnd := rand.New(rand.NewSource(seed))

	start := time.Now()
	lastReport := start
	for i := 0; i < numOps; i++ {
		if err := runRandomSequence(rnd); err != nil {
			return fmt.Errorf("op %d: %w", i, err)
		}
		if time.Since(lastReport) >= reportPeriod {
			lastReport = time.Now()
			reportProgress(i, numOps, start)
		}
	}

	rate := float64(numOps) / time.Since(start).Seconds()
	fmt.Printf("Completed %d operations in %v (%.0f ops/s)\n", numOps, time.Since(start).Round(time.Millisecond), rate)
	return nil
}

// runRandomSequence runs one randomly selected container scenario and checks
// its lifecycle invariants.
func runRandomSequence(rnd *rand.Rand) error {
	payload := rnd.Int()
	switch rnd.Intn(5) {
	case 0: // take-once on an optional
		value := optional.Some(payload)
		got, err := value.Take()
		if err != nil || got != payload {
			return fmt.Errorf("first take failed: %v", err)
		}
		if _, err := value.Take(); !errors.Is(err, optional.ErrEmptyAccess) {
			return fmt.Errorf("second take did not fail: %v", err)
		}
	case 1: // map must not consume the original
		value := optional.Some(payload)
		mapped := value.Map(func(n int) int { return n + 1 })
		if !value.IsPresent() || mapped.UnwrapOr(0) != payload+1 {
			return fmt.Errorf("map consumed the original or lost the value")
		}
	case 2: // take-once on a result, both channels drained
		res := result.Ok[int, string](payload)
		if _, err := res.TakeValue(); err != nil {
			return fmt.Errorf("take on ok failed: %v", err)
		}
		if _, err := res.TakeCause(); !errors.Is(err, result.ErrInvalidState) {
			return fmt.Errorf("drained cause readable")
		}
	case 3: // wrong-channel access preserves state
		res := result.Err[int, string]("fault")
		if _, err := res.TakeValue(); !errors.Is(err, result.ErrInvalidState) {
			return fmt.Errorf("value taken from failed result")
		}
		if !res.IsErr() {
			return fmt.Errorf("failed take changed state")
		}
	default: // capture bridges panics verbatim
		res := result.Capture(func() int { panic(payload) })
		cause, err := res.TakeCause()
		if err != nil || cause != payload {
			return fmt.Errorf("capture lost the fault: %v", err)
		}
	}
	return nil
}

func reportProgress(done, total int, start time.Time) {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	rate := float64(done) / time.Since(start).Seconds()
	fmt.Printf("%d/%d ops, %.0f ops/s, heap %d KiB, free system memory %d MiB\n",
		done, total, rate, stats.HeapAlloc/1024, memory.FreeMemory()/(1024*1024))
}
