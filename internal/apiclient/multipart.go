package apiclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"
)

// FileUpload is a file payload attached to a multipart request. Content is
// read exactly once when the request body is built.
type FileUpload struct {
	FieldName   string
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Form accumulates multipart fields and files in insertion order, matching
// how the platform API expects create/update payloads for file-bearing
// entities.
type Form struct {
	fields []formField
	files  []*FileUpload
}

type formField struct {
	name  string
	value string
}

// NewForm creates an empty multipart form builder.
func NewForm() *Form {
	return &Form{}
}

// Set appends a field unconditionally.
func (f *Form) Set(name, value string) *Form {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// SetOptional appends a field only when value is non-empty.
func (f *Form) SetOptional(name, value string) *Form {
	if value != "" {
		f.Set(name, value)
	}
	return f
}

// SetBool appends a boolean field only when the pointer is set.
func (f *Form) SetBool(name string, value *bool) *Form {
	if value != nil {
		f.Set(name, strconv.FormatBool(*value))
	}
	return f
}

// SetInt appends an integer field only when the pointer is set.
func (f *Form) SetInt(name string, value *int) *Form {
	if value != nil {
		f.Set(name, strconv.Itoa(*value))
	}
	return f
}

// SetFloat appends a numeric field only when the pointer is set.
func (f *Form) SetFloat(name string, value *float64) *Form {
	if value != nil {
		f.Set(name, strconv.FormatFloat(*value, 'f', -1, 64))
	}
	return f
}

// AddFile attaches a file part; nil uploads are ignored so callers can pass
// through optional form files unconditionally.
func (f *Form) AddFile(file *FileUpload) *Form {
	if file != nil {
		f.files = append(f.files, file)
	}
	return f
}

// HasFiles reports whether any file part is attached.
func (f *Form) HasFiles() bool {
	return len(f.files) > 0
}

// encode builds the multipart body and returns it with its content type.
func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", field.name, err)
		}
	}

	for _, file := range f.files {
		part, err := w.CreatePart(filePartHeader(file))
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", file.FieldName, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, "", fmt.Errorf("copy file %s: %w", file.FieldName, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// filePartHeader builds the part header carrying the original filename and
// declared content type.
func filePartHeader(file *FileUpload) textproto.MIMEHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
		escapeQuotes(file.FieldName), escapeQuotes(file.FileName)))
	ct := file.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)
	return h
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
