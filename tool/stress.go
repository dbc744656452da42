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
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/pbnjay/memory"
	"github.com/urfave/cli/v2"

	"github.com/0xsoniclabs/collections/collection"
	"github.com/0xsoniclabs/collections/common/diagnostics"
)

var (
	numOpsFlag = cli.IntFlag{
		Name:  "num-ops",
		Usage: "the number of random list operations to perform",
		Value: 1_000_000,
	}
	seedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "the seed for the random workload, 0 derives one from the current time",
		Value: 0,
	}
	reportIntervalFlag = cli.IntFlag{
		Name:  "report-interval",
		Usage: "the number of operations between progress reports",
		Value: 100_000,
	}
)

// StressTestCmd runs a randomized workload against an ArrayList and
// continuously cross-checks its content against a plain-slice reference.
var StressTestCmd = cli.Command{
	Action: diagnostics.WrapAction(stressTest, &diagnosticPortFlag, &cpuProfileFlag, &traceFlag),
	Name:   "stress-test",
	Usage:  "randomly exercises an ArrayList and verifies it against a reference implementation",
	Flags: []cli.Flag{
		&numOpsFlag,
		&seedFlag,
		&reportIntervalFlag,
	},
}

type opKind int

const (
	opAppend opKind = iota
	opInsert
	opSet
	opRemoveAt
	opRemoveValue
	numOpKinds
)

// operation is one step of the stress workload. The positional kinds carry a
// target index, opRemoveValue and opAppend only a value.
type operation struct {
	kind  opKind
	index int
	value int64
}

// apply performs the operation on the given list. Workload generation keeps
// all indexes within the contract of the respective operation, so any error
// indicates a defect in the list.
func (o operation) apply(list collection.List[int64]) error {
	switch o.kind {
	case opAppend:
		list.Add(o.value)
		return nil
	case opInsert:
		return list.AddAt(o.index, o.value)
	case opSet:
		_, err := list.Set(o.index, o.value)
		return err
	case opRemoveAt:
		_, err := list.RemoveAt(o.index)
		return err
	}
	return fmt.Errorf("unsupported operation kind %d", o.kind)
}

// randomOperation draws the next workload step for a list of the given size.
// Kinds requiring an occupied position degrade to an append while the list is
// empty; insert positions may intentionally exceed the size to cover the
// clamp-to-append behavior.
func randomOperation(rng *rand.Rand, size int) operation {
	kind := opKind(rng.IntN(int(numOpKinds)))
	op := operation{kind: kind, value: rng.Int64N(1024)}
	switch kind {
	case opInsert:
		op.index = rng.IntN(size + 2)
	case opSet, opRemoveAt:
		if size == 0 {
			return operation{kind: opAppend, value: op.value}
		}
		op.index = rng.IntN(size)
	case opRemoveValue:
		if size == 0 {
			return operation{kind: opAppend, value: op.value}
		}
	}
	return op
}

// applyToReference mirrors the operation on the plain-slice reference.
func applyToReference(reference []int64, op operation) []int64 {
	switch op.kind {
	case opAppend:
		return append(reference, op.value)
	case opInsert:
		index := min(op.index, len(reference))
		reference = append(reference, 0)
		copy(reference[index+1:], reference[index:])
		reference[index] = op.value
		return reference
	case opSet:
		reference[op.index] = op.value
		return reference
	case opRemoveAt:
		return append(reference[:op.index], reference[op.index+1:]...)
	case opRemoveValue:
		for i, value := range reference {
			if value == op.value {
				return append(reference[:i], reference[i+1:]...)
			}
		}
		return reference
	}
	return reference
}

// verify checks that the list and the reference hold the same elements in the
// same order, reading the list both positionally and through its iterator.
func verify(list *collection.ArrayList[int64], reference []int64) error {
	if got, want := list.Size(), len(reference); got != want {
		return fmt.Errorf("size mismatch: list %d, reference %d", got, want)
	}
	if got, want := list.Capacity(), list.Size(); got < want {
		return fmt.Errorf("capacity %d below size %d", got, want)
	}
	for i, want := range reference {
		got, err := list.Get(i)
		if err != nil {
			return fmt.Errorf("failed to read position %d: %w", i, err)
		}
		if got != want {
			return fmt.Errorf("position %d: list %d, reference %d", i, got, want)
		}
	}
	i := 0
	for element := range list.All() {
		if element != reference[i] {
			return fmt.Errorf("iteration step %d: list %d, reference %d", i, element, reference[i])
		}
		i++
	}
	if i != len(reference) {
		return fmt.Errorf("iteration produced %d elements, expected %d", i, len(reference))
	}
	return nil
}

func stressTest(context *cli.Context) error {
	numOps := context.Int(numOpsFlag.Name)
	reportInterval := context.Int(reportIntervalFlag.Name)
	if reportInterval <= 0 {
		reportInterval = 1
	}
	seed := context.Uint64(seedFlag.Name)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	fmt.Printf("Running %d operations with seed %d ...\n", numOps, seed)

	list := collection.New[int64]()
	reference := []int64{}

	start := time.Now()
	for i := 0; i < numOps; i++ {
		op := randomOperation(rng, list.Size())

		if op.kind == opRemoveValue {
			// remove-by-value is not part of the List interface
			removed := collection.RemoveValue(list, op.value)
			if value, ok := removed.Get(); ok && value != op.value {
				return fmt.Errorf("removed %d, expected %d", value, op.value)
			}
		} else if err := op.apply(list); err != nil {
			return fmt.Errorf("operation %d failed: %w", i, err)
		}
		reference = applyToReference(reference, op)

		if rng.IntN(1024) == 0 {
			if err := verify(list, reference); err != nil {
				return fmt.Errorf("verification failed after %d operations with seed %d: %w", i+1, seed, err)
			}
		}

		if (i+1)%reportInterval == 0 {
			printReport(i+1, numOps, start, list)
		}
	}

	if err := verify(list, reference); err != nil {
		return fmt.Errorf("final verification failed with seed %d: %w", seed, err)
	}
	fmt.Printf("All %d operations verified, final size %d, capacity %d, total time %v\n",
		numOps, list.Size(), list.Capacity(), time.Since(start).Round(time.Millisecond))
	return nil
}

func printReport(done, total int, start time.Time, list *collection.ArrayList[int64]) {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	rate := float64(done) / time.Since(start).Seconds()
	fmt.Printf("%d/%d ops, %.0f ops/s, size %d, capacity %d, heap %d MiB, system memory %d/%d MiB free\n",
		done, total, rate, list.Size(), list.Capacity(),
		stats.HeapAlloc>>20, memory.FreeMemory()>>20, memory.TotalMemory()>>20)
}
