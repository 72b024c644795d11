//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

// Package timing records hash computation samples and renders a
// profiling report.
package timing

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// FileSize implements human readable byte counts.
type FileSize uint64

func (s FileSize) String() string {
	if s > 1000*1000*1000*1000 {
		return fmt.Sprintf("%d TB", s/(1000*1000*1000*1000))
	} else if s > 1000*1000*1000 {
		return fmt.Sprintf("%d GB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%d MB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%d kB", s/1000)
	} else {
		return fmt.Sprintf("%d B", s)
	}
}

// Timing records timing samples and renders a profiling report.
type Timing struct {
	Start   time.Time
	End     time.Time
	Samples []*Sample
}

// Sample contains information about one hash computation.
type Sample struct {
	Label    string
	Duration time.Duration
	Size     FileSize
}

// Rate returns the processing rate of the sample in bytes per second.
func (s *Sample) Rate() FileSize {
	if s.Duration <= 0 {
		return 0
	}
	return FileSize(float64(s.Size) / s.Duration.Seconds())
}

// NewTiming creates a new Timing instance.
func NewTiming() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample adds a timing sample for a computation of size bytes.
func (t *Timing) Sample(label string, d time.Duration, size uint64) *Sample {
	sample := &Sample{
		Label:    label,
		Duration: d,
		Size:     FileSize(size),
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Stop marks the end of the measured operations.
func (t *Timing) Stop() {
	t.End = time.Now()
}

// Print prints the profiling report to w.
func (t *Timing) Print(w io.Writer) {
	if len(t.Samples) == 0 {
		return
	}
	end := t.End
	if end.IsZero() {
		end = time.Now()
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Input").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Size").SetAlign(tabulate.MR)
	tab.Header("Rate").SetAlign(tabulate.MR)

	var total time.Duration
	var size FileSize
	for _, sample := range t.Samples {
		total += sample.Duration
		size += sample.Size
	}

	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)
		row.Column(sample.Duration.String())
		if total > 0 {
			row.Column(fmt.Sprintf("%.2f%%",
				float64(sample.Duration)/float64(total)*100))
		} else {
			row.Column("")
		}
		row.Column(sample.Size.String())
		row.Column(sample.Rate().String() + "/s")
	}

	wall := end.Sub(t.Start)

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(wall.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(size.String()).SetFormat(tabulate.FmtBold)
	if wall > 0 {
		rate := FileSize(float64(size) / wall.Seconds())
		row.Column(rate.String() + "/s").SetFormat(tabulate.FmtBold)
	} else {
		row.Column("").SetFormat(tabulate.FmtBold)
	}

	row = tab.Row()
	row.Column("\u2570\u2574CPU").SetFormat(tabulate.FmtItalic)
	row.Column(total.String()).SetFormat(tabulate.FmtItalic)
	row.Column("")
	row.Column(fmt.Sprintf("%d inputs", len(t.Samples))).
		SetFormat(tabulate.FmtItalic)
	row.Column("")

	tab.Print(w)
}
