// Package pixel defines the color values produced by a colormap and
// consumed by the raster writers.
//
// Each type is generic over its channel depth ([Channel]) and offers a
// linear per-channel Mix, a fixed-width binary encoding and a decimal text
// encoding. All types also implement image/color.Color.
package pixel
