// Package render draws a classified grid.
//
// ASCII writes one character per tile: box-drawing glyphs for the loop,
// 'I' for inside and 'O' for outside. Image draws each tile as a 3×3
// pixel glyph (pipe arms in the open directions over a background
// coloured by label) and upsamples it with nearest-neighbour scaling, so
// the loop stays crisp at any size. WriteImage encodes PNG, BMP or TIFF.
package render
