//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunText(t *testing.T) {
	var out bytes.Buffer
	passed, err := run(&options{
		text:    "abc",
		textSet: true,
	}, &out)
	if err != nil || !passed {
		t.Fatalf("run: %v, %v", passed, err)
	}
	if s := out.String(); s != "900150983cd24fb0d6963f7d28e17f72\n" {
		t.Errorf("run: got %q", s)
	}
}

func TestRunEmptyText(t *testing.T) {
	var out bytes.Buffer
	_, err := run(&options{
		textSet: true,
	}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if s := out.String(); s != "d41d8cd98f00b204e9800998ecf8427e\n" {
		t.Errorf("run: got %q", s)
	}
}

func TestRunFileSave(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	save := filepath.Join(dir, "digest.txt")
	if err := os.WriteFile(input, []byte("message digest"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	_, err := run(&options{
		file:  input,
		save:  save,
		color: true,
	}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "f96b697d7cb7938d525a2f31aaf161d0"
	if !strings.Contains(out.String(), colorGreen+want) {
		t.Errorf("run: got %q", out.String())
	}
	data, err := os.ReadFile(save)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != want {
		t.Errorf("saved digest: got %q, expected %q", data, want)
	}
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	os.WriteFile(a, []byte("a"), 0644)
	os.WriteFile(b, []byte("abc"), 0644)

	var out bytes.Buffer
	_, err := run(&options{
		files:  []string{a, b},
		timing: true,
	}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	s := out.String()
	for _, line := range []string{
		"0cc175b9c0f1b6a831c399e269772661  " + a + "\n",
		"900150983cd24fb0d6963f7d28e17f72  " + b + "\n",
		"Total",
	} {
		if !strings.Contains(s, line) {
			t.Errorf("output does not contain %q:\n%s", line, s)
		}
	}
}

func TestRunErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	tests := []struct {
		name string
		opts *options
	}{
		{"both", &options{file: "x", text: "y", textSet: true}},
		{"save", &options{files: []string{"a", "b"}, save: "out"}},
		{"missing", &options{file: missing}},
	}
	for _, test := range tests {
		var out bytes.Buffer
		_, err := run(test.opts, &out)
		if err == nil {
			t.Errorf("%s: run succeeded", test.name)
		}
		if out.Len() != 0 {
			t.Errorf("%s: unexpected output %q", test.name, out.String())
		}
	}

	_, err := run(&options{}, &bytes.Buffer{})
	if !errors.Is(err, errUsage) {
		t.Errorf("run without input: got %v, expected %v", err, errUsage)
	}
}

func TestRunSelfTest(t *testing.T) {
	var out bytes.Buffer
	passed, err := run(&options{test: true}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !passed {
		t.Errorf("self-test failed:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "self-test passed: 7 vectors") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestRunSelfTestFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.toml")
	data := "[[vector]]\ninput = \"abc\"\ndigest = \"" +
		strings.Repeat("0", 32) + "\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	passed, err := run(&options{test: true, vectors: path}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if passed {
		t.Errorf("self-test passed with wrong digest")
	}
	if !strings.Contains(out.String(), "self-test failed") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
