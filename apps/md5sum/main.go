//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/markkurossi/md5/env"
	"github.com/markkurossi/md5/md5"
	"github.com/markkurossi/md5/selftest"
	"github.com/markkurossi/md5/timing"
)

const (
	colorGreen = "\033[92m"
	colorRed   = "\033[91m"
	colorReset = "\033[0m"
)

var errUsage = errors.New("no input")

type options struct {
	file    string
	text    string
	textSet bool
	files   []string
	save    string
	test    bool
	vectors string
	timing  bool
	color   bool
	config  env.Config
}

func main() {
	fFile := flag.String("f", "", "hash `file`")
	fText := flag.String("m", "", "hash `text`")
	fSave := flag.String("s", "", "save digest to `file`")
	fTest := flag.Bool("t", false, "run self-test")
	fEncoding := flag.String("e", env.DefaultEncoding, "text `encoding`")
	fVectors := flag.String("vectors", "",
		"load self-test vectors from TOML `file`")
	fWorkers := flag.Int("j", 0, "number of concurrent `workers`")
	fTiming := flag.Bool("timing", false, "print timing report")
	fVerbose := flag.Bool("v", false, "verbose output")
	fNoColor := flag.Bool("no-color", false, "disable colored output")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: md5sum [options] [file...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetFlags(0)

	opts := &options{
		file:    *fFile,
		text:    *fText,
		files:   flag.Args(),
		save:    *fSave,
		test:    *fTest,
		vectors: *fVectors,
		timing:  *fTiming,
		color:   !*fNoColor,
		config: env.Config{
			Encoding: *fEncoding,
			Workers:  *fWorkers,
			Verbose:  *fVerbose,
		},
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "m" {
			opts.textSet = true
		}
	})

	passed, err := run(opts, os.Stdout)
	if err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
			os.Exit(2)
		}
		log.Fatal(err)
	}
	if !passed {
		os.Exit(1)
	}
}

func run(opts *options, out io.Writer) (bool, error) {
	if len(opts.file) > 0 && opts.textSet {
		return false, errors.New("options -f and -m are mutually exclusive")
	}

	var inputs []md5.Input
	if len(opts.file) > 0 {
		inputs = append(inputs, md5.File(opts.file))
	}
	if opts.textSet {
		inputs = append(inputs, md5.Text(opts.text))
	}
	for _, file := range opts.files {
		inputs = append(inputs, md5.File(file))
	}
	if len(inputs) == 0 && !opts.test {
		return false, errUsage
	}
	if len(opts.save) > 0 && len(inputs) != 1 {
		return false, errors.New("option -s requires exactly one input")
	}

	if len(inputs) > 0 {
		if err := hashInputs(opts, inputs, out); err != nil {
			return false, err
		}
	}
	if opts.test {
		return selfTest(opts, out)
	}
	return true, nil
}

func hashInputs(opts *options, inputs []md5.Input, out io.Writer) error {
	t := timing.NewTiming()

	results, err := md5.HashAll(context.Background(), inputs, &opts.config)
	if err != nil {
		return err
	}
	t.Stop()

	for _, result := range results {
		digest := colorize(opts, colorGreen, result.Digest)
		if len(results) == 1 {
			fmt.Fprintln(out, digest)
		} else {
			fmt.Fprintf(out, "%s  %s\n", digest, result.Input)
		}
		t.Sample(result.Input.String(), result.Elapsed, result.Size)
	}

	if len(opts.save) > 0 {
		err = os.WriteFile(opts.save, []byte(results[0].Digest), 0644)
		if err != nil {
			return err
		}
		if opts.config.Verbose {
			log.Printf("saved digest to %s", opts.save)
		}
	}
	if opts.timing {
		t.Print(out)
	}
	return nil
}

func selfTest(opts *options, out io.Writer) (bool, error) {
	var vectors []selftest.Vector
	var err error

	if len(opts.vectors) > 0 {
		vectors, err = selftest.LoadFile(opts.vectors)
	} else {
		vectors, err = selftest.Default()
	}
	if err != nil {
		return false, err
	}

	outcomes := selftest.Run(vectors, &opts.config)
	passed := selftest.Report(out, outcomes)

	if passed {
		fmt.Fprintln(out, colorize(opts, colorGreen,
			fmt.Sprintf("self-test passed: %d vectors", len(outcomes))))
	} else {
		fmt.Fprintln(out, colorize(opts, colorRed, "self-test failed"))
	}
	return passed, nil
}

func colorize(opts *options, color, s string) string {
	if !opts.color {
		return s
	}
	return color + s + colorReset
}
