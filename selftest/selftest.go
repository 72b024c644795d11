//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package selftest verifies the MD5 implementation against a table of
// reference vectors.
package selftest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/markkurossi/md5/env"
	"github.com/markkurossi/md5/md5"
	"github.com/pelletier/go-toml/v2"
)

//go:embed vectors.toml
var defaultVectors []byte

// Vector defines a text input and its expected MD5 digest.
type Vector struct {
	Input  string `toml:"input"`
	Digest string `toml:"digest" validate:"digest"`
}

type table struct {
	Vectors []Vector `toml:"vector" validate:"required,dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("digest", validateDigest); err != nil {
		panic(err)
	}
}

// validateDigest accepts 32 lowercase hex digits.
func validateDigest(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 2*md5.Size {
		return false
	}
	for _, r := range s {
		if !('0' <= r && r <= '9' || 'a' <= r && r <= 'f') {
			return false
		}
	}
	return true
}

// Default returns the built-in reference vectors.
func Default() ([]Vector, error) {
	return Load(bytes.NewReader(defaultVectors))
}

// LoadFile loads reference vectors from the TOML file path.
func LoadFile(path string) ([]Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vectors, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vectors, nil
}

// Load loads reference vectors from TOML data. The expected digests
// are matched case-insensitively and surrounding whitespace is
// ignored.
func Load(r io.Reader) ([]Vector, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var t table
	if err := toml.Unmarshal(data, &t); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%d:%d: %s", row, col, derr.Error())
		}
		return nil, err
	}
	for i := range t.Vectors {
		t.Vectors[i].Digest = strings.ToLower(strings.TrimSpace(t.Vectors[i].Digest))
	}
	if err := validate.Struct(&t); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			switch fe.Tag() {
			case "required":
				return nil, errors.New("no vectors defined")
			case "digest":
				return nil, fmt.Errorf("%s: invalid digest %q: expected %d hex digits",
					fe.Namespace(), fe.Value(), 2*md5.Size)
			default:
				return nil, fmt.Errorf("%s: validation failed: %s",
					fe.Namespace(), fe.Tag())
			}
		}
		return nil, err
	}
	return t.Vectors, nil
}

// Outcome holds the result of one reference vector.
type Outcome struct {
	Vector   Vector
	Computed string
	Passed   bool
	Err      error
}

// Run computes the digests of the vector inputs and compares them
// against the expected digests.
func Run(vectors []Vector, config *env.Config) []Outcome {
	var outcomes []Outcome

	for _, v := range vectors {
		computed, err := md5.Hash(md5.Text(v.Input), config)
		outcomes = append(outcomes, Outcome{
			Vector:   v,
			Computed: computed,
			Passed:   err == nil && computed == v.Digest,
			Err:      err,
		})
	}
	return outcomes
}

// Passed tests if all outcomes passed.
func Passed(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if !o.Passed {
			return false
		}
	}
	return true
}
