// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

// Command zenocat renders a single SVG path argument to a PNG alpha mask.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/dfrg/zeno/geometry"
	"github.com/dfrg/zeno/path"
	"github.com/dfrg/zeno/raster"
	"github.com/dfrg/zeno/stroke"
)

func main() {
	var (
		out        = flag.String("o", "out.png", "output PNG file")
		strokeFlag = flag.Bool("stroke", false, "stroke the path instead of filling it")
		width      = flag.Float64("width", 2, "stroke width, in user units (with -stroke)")
		evenOdd    = flag.Bool("even-odd", false, "use the even-odd fill rule instead of non-zero (without -stroke)")
		subpixel   = flag.Bool("subpixel", false, "render a 3-channel subpixel-antialiased mask instead of 8-bit alpha")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] 'M0 0L100 0L100 100Z'\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *out, *strokeFlag, *evenOdd, *subpixel, float32(*width)); err != nil {
		fmt.Fprintln(os.Stderr, "zenocat:", err)
		os.Exit(1)
	}
}

func run(svg, outPath string, doStroke, evenOdd, subpixel bool, width float32) error {
	data, err := path.ParseSVG(svg)
	if err != nil {
		return err
	}

	var style stroke.Style
	if doStroke {
		style = stroke.StrokeStyle(stroke.Stroke{
			Width:    width,
			Join:     stroke.RoundJoin,
			StartCap: stroke.RoundCap,
			EndCap:   stroke.RoundCap,
		})
	} else if evenOdd {
		style = stroke.FillStyle(stroke.EvenOdd)
	} else {
		style = stroke.FillStyle(stroke.NonZero)
	}

	mask := raster.NewMask(data).Style(style)
	if subpixel {
		mask = mask.Format(raster.Subpixel)
	}
	buf, placement := mask.Render()

	img, err := toImage(buf, placement, subpixel)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func toImage(buf []byte, placement geometry.Placement, subpixel bool) (image.Image, error) {
	w, h := int(placement.Width), int(placement.Height)
	if subpixel {
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for i := 0; i < w*h; i++ {
			img.Pix[4*i+0] = buf[4*i+0]
			img.Pix[4*i+1] = buf[4*i+1]
			img.Pix[4*i+2] = buf[4*i+2]
			img.Pix[4*i+3] = 255
		}
		return img, nil
	}

	img := image.NewAlpha(image.Rect(0, 0, w, h))
	copy(img.Pix, buf)
	return img, nil
}
