package httpx

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compressedRequest(t *testing.T, handler http.Handler, method, acceptEncoding string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, "/board", nil)
	if acceptEncoding != "" {
		req.Header.Set("Accept-Encoding", acceptEncoding)
	}
	rec := httptest.NewRecorder()
	Compression(CompressionConfig{Level: gzip.DefaultCompression})(handler).ServeHTTP(rec, req)
	resp := rec.Result()
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func pageHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	})
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	gr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer gr.Close()
	body, err := io.ReadAll(gr)
	require.NoError(t, err)
	return string(body)
}

func TestCompression_Negotiation(t *testing.T) {
	t.Parallel()

	page := strings.Repeat("<tr><td>Mathematics</td><td>CBSE</td></tr>", 500)
	handler := pageHandler(page)

	tests := []struct {
		name           string
		acceptEncoding string
		wantGzip       bool
	}{
		{"gzip accepted", "gzip, deflate", true},
		{"gzip listed second", "deflate, gzip", true},
		{"gzip with q value", "gzip;q=0.5", true},
		{"gzip refused via q=0", "gzip;q=0", false},
		{"deflate only", "deflate", false},
		{"no header", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp := compressedRequest(t, handler, http.MethodGet, tt.acceptEncoding)

			if tt.wantGzip {
				assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
				assert.Empty(t, resp.Header.Get("Content-Length"))
				// Caches must key on the negotiated encoding.
				assert.Equal(t, "Accept-Encoding", resp.Header.Get("Vary"))
				assert.Equal(t, page, gunzip(t, resp.Body))
				return
			}
			assert.Empty(t, resp.Header.Get("Content-Encoding"))
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, page, string(body))
		})
	}
}

func TestCompression_ContentTypeFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		contentType string
		wantGzip    bool
	}{
		{"text/html; charset=utf-8", true},
		{"text/css", true},
		{"application/json", true},
		{"application/javascript", true},
		{"image/svg+xml", true},
		{"image/png", false},
		{"application/pdf", false},
		{"video/mp4", false},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			t.Parallel()
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				_, _ = w.Write([]byte("payload"))
			})
			resp := compressedRequest(t, handler, http.MethodGet, "gzip")

			if tt.wantGzip {
				assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
			} else {
				assert.Empty(t, resp.Header.Get("Content-Encoding"))
			}
		})
	}
}

func TestCompression_BodylessStatusesSkipped(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusNoContent, http.StatusNotModified} {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		resp := compressedRequest(t, handler, http.MethodGet, "gzip")

		assert.Equal(t, status, resp.StatusCode)
		assert.Empty(t, resp.Header.Get("Content-Encoding"))
	}
}

func TestCompression_ErrorPagesStillCompressed(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("<h1>Page not found</h1>"))
	})
	resp := compressedRequest(t, handler, http.MethodGet, "gzip")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
	assert.Contains(t, gunzip(t, resp.Body), "Page not found")
}

func TestCompression_HeadRequestSkipped(t *testing.T) {
	t.Parallel()

	resp := compressedRequest(t, pageHandler(""), http.MethodHead, "gzip")
	assert.Empty(t, resp.Header.Get("Content-Encoding"))
}

func TestCompression_PreEncodedResponseUntouched(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Header().Set("Content-Encoding", "br")
		_, _ = w.Write([]byte("already encoded"))
	})
	resp := compressedRequest(t, handler, http.MethodGet, "gzip")

	assert.Equal(t, "br", resp.Header.Get("Content-Encoding"))
}
