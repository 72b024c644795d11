//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the digest tools.
package env

import (
	"runtime"
)

// DefaultEncoding is the text encoding used for string inputs when
// Config does not name one.
const DefaultEncoding = "utf-8"

// Config defines the global configuration for hash computations. The
// zero value is valid and selects the defaults. Config must not be
// modified after being passed to a hash operation. It is safe for
// concurrent use as the hash operations do not modify it.
type Config struct {
	// Encoding names the text encoding of string inputs. Any WHATWG
	// encoding label is accepted.
	Encoding string

	// Workers limits the number of concurrent hash computations in
	// batch operations.
	Workers int

	// Verbose enables progress output.
	Verbose bool
}

// GetEncoding returns the text encoding for string inputs.
func (config *Config) GetEncoding() string {
	if config != nil && len(config.Encoding) > 0 {
		return config.Encoding
	}
	return DefaultEncoding
}

// GetWorkers returns the maximum number of concurrent hash
// computations.
func (config *Config) GetWorkers() int {
	if config != nil && config.Workers > 0 {
		return config.Workers
	}
	return runtime.NumCPU()
}
