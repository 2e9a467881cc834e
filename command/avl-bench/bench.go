// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
)

// result - statistics for one or more rounds
type result struct {
	Added      int
	Duplicates int
	Removed    int
	Misses     int
	Remaining  int
	Height     int
	AddTime    time.Duration
	RemoveTime time.Duration
}

func (r result) String() string {
	return fmt.Sprintf("added: %8d  duplicates: %6d  removed: %8d  misses: %6d  remaining: %8d  height: %3d (limit %3d)  add: %v  remove: %v",
		r.Added, r.Duplicates, r.Removed, r.Misses, r.Remaining, r.Height, heightLimit(r.Remaining), r.AddTime, r.RemoveTime)
}

type benchmark struct {
	log    *logger.L
	random *rand.Rand
	verify bool
	total  result
}

func newBenchmark(log *logger.L, seed int64, verify bool) *benchmark {
	return &benchmark{
		log:    log,
		random: rand.New(rand.NewSource(seed)),
		verify: verify,
	}
}

// round - fill a fresh tree with random keys then remove some of them
//
// keys are drawn from a range four times the count so some adds and
// removes miss
func (b *benchmark) round(count int, deleteCount int) (result, error) {

	keySpace := 4 * count
	r := result{}
	tree := avl.New[int]()

	start := time.Now()
	for i := 0; i < count; i += 1 {
		key := b.random.Intn(keySpace)
		if tree.Add(key) {
			r.Added += 1
		} else {
			r.Duplicates += 1
		}
		if b.verify {
			if err := tree.Check(); nil != err {
				b.log.Errorf("add: %d  error: %s", key, err)
				return r, fmt.Errorf("add: %d: %w", key, err)
			}
		}
	}
	r.AddTime = time.Since(start)

	start = time.Now()
	for i := 0; i < deleteCount; i += 1 {
		key := b.random.Intn(keySpace)
		if _, ok := tree.Remove(key); ok {
			r.Removed += 1
		} else {
			r.Misses += 1
		}
		if b.verify {
			if err := tree.Check(); nil != err {
				b.log.Errorf("remove: %d  error: %s", key, err)
				return r, fmt.Errorf("remove: %d: %w", key, err)
			}
		}
	}
	r.RemoveTime = time.Since(start)

	r.Remaining = tree.Count()
	r.Height = tree.Height()
	if r.Height > heightLimit(r.Remaining) {
		b.log.Warnf("height: %d  exceeds limit: %d  for: %d keys", r.Height, heightLimit(r.Remaining), r.Remaining)
	}
	b.log.Debugf("round: %+v", r)

	b.total.Added += r.Added
	b.total.Duplicates += r.Duplicates
	b.total.Removed += r.Removed
	b.total.Misses += r.Misses
	b.total.Remaining += r.Remaining
	b.total.Height = max(b.total.Height, r.Height)
	b.total.AddTime += r.AddTime
	b.total.RemoveTime += r.RemoveTime

	return r, nil
}

// totals - sum of all rounds, height is the largest seen
func (b *benchmark) totals() result {
	return b.total
}

// heightLimit - worst case AVL height for n keys
//
//	h < 1.4405 log2(n + 2) - 0.3277
func heightLimit(n int) int {
	return int(1.4405*math.Log2(float64(n+2)) - 0.3277)
}
