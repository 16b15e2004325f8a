// Package raster serializes a lazy sequence of pixels with a 2-D shape.
//
// Netpbm framing (PGM for grayscale, PPM for RGB) is written directly in
// both the binary and ASCII variants. Any pixel sequence can also be
// collected into an image.Image and encoded as PNG, BMP or TIFF.
//
// Pixels are consumed in row order: width pixels make up one row, and
// height rows make up the image.
package raster
