// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"

	"github.com/aclements/go-gg/gg"
	"github.com/bioviz/gwasplot/genome"
)

type plotOptions struct {
	title  string
	yLabel string

	// threshold is the y position of the significance line, or
	// nil for no line.
	threshold *float64
}

// Alternating chromosome colors.
var bandColors = []color.Color{
	color.RGBA{0x1b, 0x3a, 0x5c, 0xff},
	color.RGBA{0x7f, 0xa7, 0xd1, 0xff},
}

func plot(l *genome.Layout, opts plotOptions) *gg.Plot {
	p := gg.NewPlot(layoutTable(l))

	band := gg.NewOrdinalScale()
	band.Ranger(gg.NewColorRanger(bandColors))
	p.SetScale("stroke", band)

	// Always show Y=0.
	p.SetScale("y", gg.NewLinearScaler().Include(0))

	p.Add(gg.LayerPoints{X: colX, Y: colY, Color: colBand})

	hasLabels := false
	for _, r := range l.Records {
		if r.Label != "" {
			hasLabels = true
			break
		}
	}
	if hasLabels {
		p.Add(gg.LayerTooltips{X: colX, Y: colY, Label: colLabel})
	}

	if opts.threshold != nil {
		p.Save()
		p.SetData(lineTable(l, *opts.threshold))
		p.Add(gg.LayerLines{X: colX, Y: colY})
		p.Restore()
	}

	// Label each chromosome at its tick, at the bottom of the plot.
	ymin := 0.0
	for _, r := range l.Records {
		if r.Value < ymin {
			ymin = r.Value
		}
	}
	p.Save()
	p.SetData(ticksTable(l, ymin))
	p.Add(gg.LayerTags{X: colX, Y: colY, Label: colGroup})
	p.Restore()

	p.Add(gg.AxisLabel("x", "chromosome"))
	if opts.yLabel != "" {
		p.Add(gg.AxisLabel("y", opts.yLabel))
	}
	return p
}
