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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestStressTest_BasicRun(t *testing.T) {
	app := &cli.App{
		Commands: []*cli.Command{&StressTestCmd},
	}
	err := app.Run([]string{
		"optbench",
		"stress-test",
		"--num-ops=1000",
		"--seed=1",
	})
	require.NoError(t, err, "stress-test should run without error for minimal input")
}

func TestBenchmark_BasicRun(t *testing.T) {
	app := &cli.App{
		Commands: []*cli.Command{&BenchmarkCmd},
	}
	err := app.Run([]string{
		"optbench",
		"benchmark",
		"--num-iterations=1000",
	})
	require.NoError(t, err, "benchmark should run without error for minimal input")
}

func TestRunRandomSequence_AllScenariosPass(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		require.NoError(t, runRandomSequence(rnd))
	}
}
