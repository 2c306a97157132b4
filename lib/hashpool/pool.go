// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hashpool

import (
	"context"
	"sync"

	"github.com/bureau-foundation/digest/lib/binhash"
)

// HashFunc hashes the input named by path and reports how many bytes
// were read for it.
type HashFunc func(path string) (digest binhash.Digest, size int64, err error)

// Result is the outcome for one input.
type Result struct {
	Path   string
	Digest binhash.Digest
	Size   int64
	Err    error
}

// Pool runs a HashFunc over many inputs.
type Pool struct {
	// Workers is the number of concurrent hashes. Values below one
	// mean one.
	Workers int

	// Hash is called once per input, from multiple goroutines.
	Hash HashFunc
}

// Run hashes every path and returns results in the order of paths.
// Inputs not yet started when ctx is cancelled get ctx.Err() as their
// error.
func (p *Pool) Run(ctx context.Context, paths []string) []Result {
	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results
	}

	workers := p.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	indexes := make(chan int)
	var group sync.WaitGroup
	for worker := 0; worker < workers; worker++ {
		group.Add(1)
		go func() {
			defer group.Done()
			for index := range indexes {
				results[index] = p.hashOne(ctx, paths[index])
			}
		}()
	}

	for index := range paths {
		indexes <- index
	}
	close(indexes)
	group.Wait()

	return results
}

func (p *Pool) hashOne(ctx context.Context, path string) Result {
	if err := ctx.Err(); err != nil {
		return Result{Path: path, Err: err}
	}
	digest, size, err := p.Hash(path)
	return Result{Path: path, Digest: digest, Size: size, Err: err}
}
