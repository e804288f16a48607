package validation

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// FileKind selects the size cap and accepted formats for an upload field.
type FileKind int

const (
	KindImage FileKind = iota
	KindPDF
	KindVideo
)

// Upload size caps by kind.
const (
	MaxImageSize = 5 << 20   // 5 MB
	MaxPDFSize   = 50 << 20  // 50 MB
	MaxVideoSize = 500 << 20 // 500 MB
)

//nolint:gochecknoglobals // read-only lookup tables shared by every upload check
var (
	imageTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
		"image/gif":  true,
	}
	videoTypes = map[string]bool{
		"video/mp4":  true,
		"video/webm": true,
		"video/ogg":  true,
	}
	imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true}
	videoExts = map[string]bool{".mp4": true, ".webm": true, ".ogv": true, ".ogg": true}
)

// MaxSize returns the byte cap for the kind.
func (k FileKind) MaxSize() int64 {
	switch k {
	case KindPDF:
		return MaxPDFSize
	case KindVideo:
		return MaxVideoSize
	default:
		return MaxImageSize
	}
}

func (k FileKind) label() string {
	switch k {
	case KindPDF:
		return "PDF"
	case KindVideo:
		return "video"
	default:
		return "image"
	}
}

// File checks an uploaded file's declared type and size against the kind's
// constraints before any bytes are sent upstream. Returns an empty string
// when the file is acceptable.
func File(fh *multipart.FileHeader, kind FileKind) string {
	if fh == nil {
		return ""
	}

	if !acceptableType(fh, kind) {
		switch kind {
		case KindPDF:
			return "Only PDF files are accepted."
		case KindVideo:
			return "Only MP4, WebM, or Ogg videos are accepted."
		default:
			return "Only JPEG, PNG, WebP, or GIF images are accepted."
		}
	}

	if maxSize := kind.MaxSize(); fh.Size > maxSize {
		return fmt.Sprintf("The %s is too large. Maximum size is %d MB.", kind.label(), maxSize>>20)
	}

	return ""
}

// acceptableType checks the declared Content-Type, falling back to the file
// extension when the browser sent a generic type.
func acceptableType(fh *multipart.FileHeader, kind FileKind) bool {
	ct := strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type")))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))

	switch kind {
	case KindPDF:
		return ct == "application/pdf" || (genericType(ct) && ext == ".pdf")
	case KindVideo:
		return videoTypes[ct] || (genericType(ct) && videoExts[ext])
	default:
		return imageTypes[ct] || (genericType(ct) && imageExts[ext])
	}
}

func genericType(ct string) bool {
	return ct == "" || ct == "application/octet-stream"
}
