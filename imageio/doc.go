// Package imageio loads images from a blobstore into feature.Image values.
//
// PNG, JPEG and GIF decoders come from the standard library; BMP, TIFF and
// WebP from golang.org/x/image. Formats are sniffed from content, not from
// the file extension.
package imageio
