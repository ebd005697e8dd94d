// SPDX-License-Identifier: EPL-2.0

// Package waveform turns mono samples into a raster picture of their envelope.
//
// The work is split in two pure stages:
//
//	summaries, _ := waveform.Reduce(samples, width, waveform.Precise)
//	img, _ := waveform.Rasterize(summaries, width, height, waveform.DefaultPalette)
//
// Reduce collapses the samples into one Summary (min, max, RMS) per pixel
// column. Precise scans every sample; Approximate looks at no more than
// ApproximatePoints samples per column, which keeps long files cheap.
//
// Rasterize paints each column from the row of its maximum down to the row
// of its minimum. Silent columns still get a one pixel mark on the center
// row, so a flat signal shows up as a thin line.
//
// Neither stage keeps state between calls, so independent renders can run
// concurrently.
package waveform
