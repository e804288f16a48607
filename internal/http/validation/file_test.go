package validation

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{Filename: name, Header: h, Size: size}
}

func TestFile_Images(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fh   *multipart.FileHeader
		want string
	}{
		{"nil header accepted", nil, ""},
		{"png within cap", fileHeader("banner.png", "image/png", 1 << 20), ""},
		{"jpeg at cap", fileHeader("banner.jpg", "image/jpeg", MaxImageSize), ""},
		{"oversized image", fileHeader("banner.png", "image/png", 8 << 20), "The image is too large. Maximum size is 5 MB."},
		{"wrong type", fileHeader("notes.pdf", "application/pdf", 1 << 20), "Only JPEG, PNG, WebP, or GIF images are accepted."},
		{"svg rejected", fileHeader("logo.svg", "image/svg+xml", 1 << 10), "Only JPEG, PNG, WebP, or GIF images are accepted."},
		{"generic type with image extension", fileHeader("banner.webp", "application/octet-stream", 1 << 20), ""},
		{"generic type with bad extension", fileHeader("banner.exe", "application/octet-stream", 1 << 20), "Only JPEG, PNG, WebP, or GIF images are accepted."},
		{"charset suffix stripped", fileHeader("banner.png", "image/png; charset=binary", 1 << 20), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, File(tt.fh, KindImage))
		})
	}
}

func TestFile_PDFs(t *testing.T) {
	t.Parallel()

	assert.Empty(t, File(fileHeader("chapter.pdf", "application/pdf", 10<<20), KindPDF))
	assert.Empty(t, File(fileHeader("chapter.pdf", "", 10<<20), KindPDF))
	assert.Equal(t, "Only PDF files are accepted.",
		File(fileHeader("chapter.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", 1<<20), KindPDF))
	assert.Equal(t, "The PDF is too large. Maximum size is 50 MB.",
		File(fileHeader("chapter.pdf", "application/pdf", 51<<20), KindPDF))
}

func TestFile_Videos(t *testing.T) {
	t.Parallel()

	assert.Empty(t, File(fileHeader("lesson.mp4", "video/mp4", 100<<20), KindVideo))
	assert.Empty(t, File(fileHeader("lesson.webm", "application/octet-stream", 100<<20), KindVideo))
	assert.Equal(t, "Only MP4, WebM, or Ogg videos are accepted.",
		File(fileHeader("lesson.avi", "video/x-msvideo", 100<<20), KindVideo))
	assert.Equal(t, "The video is too large. Maximum size is 500 MB.",
		File(fileHeader("lesson.mp4", "video/mp4", 501<<20), KindVideo))
}

func TestFileKind_MaxSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(MaxImageSize), KindImage.MaxSize())
	assert.Equal(t, int64(MaxPDFSize), KindPDF.MaxSize())
	assert.Equal(t, int64(MaxVideoSize), KindVideo.MaxSize())
}
