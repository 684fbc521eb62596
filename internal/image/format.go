// Package image handles image uploads and retrieval.
package image

import (
	"path/filepath"
	"strings"
)

// Format is the result of content-type detection for an upload.
type Format int

const (
	FormatUnknown Format = iota
	FormatPNG
	FormatJPEG
	FormatGIF
)

// DetectFormat classifies an upload from its declared content type and file
// name. The declared type wins when it names a supported format; otherwise the
// file extension decides. Pure function, no I/O.
func DetectFormat(declaredType, fileName string) Format {
	switch normalizeMediaType(declaredType) {
	case "image/png":
		return FormatPNG
	case "image/jpeg", "image/jpg":
		return FormatJPEG
	case "image/gif":
		return FormatGIF
	}
	return formatFromExtension(fileName)
}

// ContentType returns the MIME type for a detected format, or
// "application/octet-stream" for FormatUnknown.
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatGIF:
		return "image/gif"
	}
	return "application/octet-stream"
}

// ContentTypeFor derives the response content type for a stored file name.
// Unknown extensions fall back to the generic binary type instead of erroring.
func ContentTypeFor(fileName string) string {
	return formatFromExtension(fileName).ContentType()
}

func formatFromExtension(fileName string) Format {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".png":
		return FormatPNG
	case ".jpg", ".jpeg":
		return FormatJPEG
	case ".gif":
		return FormatGIF
	}
	return FormatUnknown
}

// normalizeMediaType strips parameters like "; charset=..." and lowercases.
func normalizeMediaType(declared string) string {
	if i := strings.IndexByte(declared, ';'); i >= 0 {
		declared = declared[:i]
	}
	return strings.ToLower(strings.TrimSpace(declared))
}
