// SPDX-License-Identifier: EPL-2.0

// Package encoder writes rendered images to disk.
//
// Formats are looked up by name in a Registry. NewDefaultRegistry knows
// png, jpeg/jpg and gif from the standard library and bmp and tiff/tif
// from golang.org/x/image.
//
//	reg := encoder.NewDefaultRegistry()
//	err := reg.WriteFile("out.png", "", img) // format taken from the extension
//
// WriteFile goes through a temporary file and a rename, so readers of
// the target path see either the previous file or the complete new one.
package encoder
