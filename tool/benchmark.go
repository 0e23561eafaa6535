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
	"fmt"
	"time"

	"github.com/hanssell-the-fox/go-optionals/optional"
	"github.com/hanssell-the-fox/go-optionals/result"
	"github.com/urfave/cli/v2"
)

var BenchmarkCmd = cli.Command{
	Action: withDiagnostics(benchmark),
	Name:   "benchmark",
	Usage:  "measure the throughput of the container operations",
	Flags: []cli.Flag{
		&numIterationsFlag,
	},
}

var numIterationsFlag = cli.IntFlag{
	Name:  "num-iterations",
	Usage: "number of iterations per measured operation",
	Value: 10_000_000,
}

func benchmark(context *cli.Context) error {
	iterations := context.Int(numIterationsFlag.Name)
	if iterations <= 0 {
		iterations = 10_000_000
	}

	sink := 0
	measure("optional Some+Take", iterations, func(i int) {
		value := optional.Some(i)
		got, _ := value.Take()
		sink += got
	})
	measure("optional Map", iterations, func(i int) {
		sink += optional.Some(i).Map(func(n int) int { return n + 1 }).UnwrapOr(0)
	})
	measure("optional Match", iterations, func(i int) {
		sink += optional.Match(optional.Some(i),
			func(n int) int { return n },
			func() int { return 0 },
		)
	})
	measure("result Ok+TakeValue", iterations, func(i int) {
		res := result.Ok[int, error](i)
		got, _ := res.TakeValue()
		sink += got
	})
	measure("result Capture", iterations, func(i int) {
		res := result.Capture(func() int { return i })
		sink += res.UnwrapOr(0)
	})
	fmt.Printf("checksum: %d\n", sink) // keeps the measured loops observable
	return nil
}

func measure(name string, iterations int, op func(i int)) {
	start := time.Now()
	for i := 0; i < iterations; i++ {
		op(i)
	}
	elapsed := time.Since(start)
	perOp := elapsed / time.Duration(iterations)
	fmt.Printf("%-22s %12d ops in %8v, %v/op\n", name, iterations, elapsed.Round(time.Millisecond), perOp)
}
