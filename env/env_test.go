//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"runtime"
	"testing"
)

func TestDefaults(t *testing.T) {
	for _, config := range []*Config{nil, {}} {
		if enc := config.GetEncoding(); enc != DefaultEncoding {
			t.Errorf("GetEncoding: got %q, expected %q", enc, DefaultEncoding)
		}
		if w := config.GetWorkers(); w != runtime.NumCPU() {
			t.Errorf("GetWorkers: got %d, expected %d", w, runtime.NumCPU())
		}
	}
}

func TestOverrides(t *testing.T) {
	config := &Config{
		Encoding: "windows-1252",
		Workers:  3,
	}
	if enc := config.GetEncoding(); enc != "windows-1252" {
		t.Errorf("GetEncoding: got %q", enc)
	}
	if w := config.GetWorkers(); w != 3 {
		t.Errorf("GetWorkers: got %d", w)
	}
}
