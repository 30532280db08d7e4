// Package pix is a CPU-resident pixel image library: rectangular
// buffers of 8-bit color values plus operations to composite, draw,
// resample, and color-reduce them. There is no GPU involvement and no
// floating point in the compositing hot paths.
//
// Two image types share one generic drawing core: Image holds
// truecolor RGBA pixels, Paletted holds 8-bit palette indices. Every
// drawing operation takes an Op value selecting the blend mode, flip
// flags, and optional bounds-check bypass; geometry that falls outside
// the image is silently clipped or dropped, never an error.
//
// Color reduction lives in the quant subpackage (histogramming and
// Heckbert median-cut palette construction) and the dither subpackage
// (nearest-neighbor, ordered, and error-diffusion conversion of
// truecolor images to indexed images).
//
// File formats are not handled here. Image and Paletted implement the
// standard image.Image interface, so the stdlib and golang.org/x/image
// codecs serve as encode/decode collaborators.
package pix
