//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"context"
	"encoding/hex"
	"log"
	"time"

	"github.com/markkurossi/md5/env"
	"golang.org/x/sync/errgroup"
)

// Result holds the digest of one input of a batch.
type Result struct {
	Input   Input
	Digest  string
	Size    uint64
	Elapsed time.Duration
}

// HashAll computes the digests of all inputs. Each input is hashed
// with its own state and up to config.GetWorkers() inputs are hashed
// concurrently. The results are in the input order. The first error
// cancels the remaining computations and is returned without results.
func HashAll(ctx context.Context, inputs []Input, config *env.Config) (
	[]Result, error) {

	results := make([]Result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(config.GetWorkers())

	for idx, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			digest, size, err := hash(in, config)
			if err != nil {
				return err
			}
			results[idx] = Result{
				Input:   in,
				Digest:  hex.EncodeToString(digest[:]),
				Size:    size,
				Elapsed: time.Since(start),
			}
			if config != nil && config.Verbose {
				log.Printf("hashed %s: %d bytes in %s", in, size,
					results[idx].Elapsed)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
