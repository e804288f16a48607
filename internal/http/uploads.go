package httpx

import (
	"net/http"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/http/validation"
)

// maxFormMemory bounds the in-memory portion of multipart parsing; larger
// uploads spill to temp files.
const maxFormMemory = 32 << 20

// parseUpload extracts and validates one optional file field from a parsed
// multipart form. It returns (nil, "") when the field was left empty and
// (nil, message) when the file fails validation, so the caller can surface
// the message as a field error without touching the platform API.
func parseUpload(r *http.Request, field string, kind validation.FileKind) (*apiclient.FileUpload, string) {
	if r.MultipartForm == nil {
		return nil, ""
	}
	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil, ""
	}

	fh := headers[0]
	if fh.Filename == "" && fh.Size == 0 {
		return nil, ""
	}

	if msg := validation.File(fh, kind); msg != "" {
		return nil, msg
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "Unable to read the uploaded file. Please try again."
	}

	return &apiclient.FileUpload{
		FieldName:   field,
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     f,
	}, ""
}
