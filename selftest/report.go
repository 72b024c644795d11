//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package selftest

import (
	"fmt"
	"io"
	"strconv"

	"github.com/markkurossi/tabulate"
)

const maxLabel = 24

// Report prints the outcomes as a table to w and returns true if all
// outcomes passed.
func Report(w io.Writer, outcomes []Outcome) bool {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Input").SetAlign(tabulate.ML)
	tab.Header("Computed").SetAlign(tabulate.ML)
	tab.Header("Expected").SetAlign(tabulate.ML)
	tab.Header("Result").SetAlign(tabulate.ML)

	var failed int
	for _, o := range outcomes {
		row := tab.Row()
		row.Column(label(o.Vector.Input))
		if o.Err != nil {
			row.Column(o.Err.Error()).SetFormat(tabulate.FmtItalic)
		} else {
			row.Column(o.Computed)
		}
		row.Column(o.Vector.Digest)
		if o.Passed {
			row.Column("ok")
		} else {
			row.Column("FAIL").SetFormat(tabulate.FmtBold)
			failed++
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d vectors", len(outcomes))).
		SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d failed", failed)).SetFormat(tabulate.FmtBold)
	row.Column("")

	tab.Print(w)

	return failed == 0
}

func label(input string) string {
	if len(input) > maxLabel {
		input = input[:maxLabel] + "..."
	}
	return strconv.Quote(input)
}
