// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(nil) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// compressibleTypes are the media types worth compressing. Rendered PNG and
// JPEG symbols are compressed already and are sent as they are.
var compressibleTypes = []string{"application/json", "image/svg+xml", "text/"}

func isCompressible(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	for _, t := range compressibleTypes {
		if strings.HasPrefix(mediaType, t) {
			return true
		}
	}
	return false
}

// withGZip inflates gzip request bodies and compresses JSON, SVG and text
// responses for clients that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := newGzipBody(r.Body)
			if err != nil {
				http.Error(w, "invalid gzip body", http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Add("Vary", "Accept-Encoding")
		gw := &gzipResponseWriter{ResponseWriter: w}
		defer gw.finish()
		next.ServeHTTP(gw, r)
	})
}

// gzipBody returns its reader to the pool on Close.
type gzipBody struct {
	*gzip.Reader
	src io.ReadCloser
}

func newGzipBody(src io.ReadCloser) (*gzipBody, error) {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(src); err != nil {
		gzipReaders.Put(zr)
		return nil, err
	}
	return &gzipBody{Reader: zr, src: src}, nil
}

func (b *gzipBody) Close() error {
	err := b.Reader.Close()
	gzipReaders.Put(b.Reader)
	return errors.Join(err, b.src.Close())
}

// gzipResponseWriter decides on compression when the header is written,
// once the handler has set the content type. gz stays nil for a response
// that passes through.
type gzipResponseWriter struct {
	http.ResponseWriter
	gz          *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	h := w.Header()
	hasBody := statusCode != http.StatusNoContent && statusCode != http.StatusNotModified
	if hasBody && h.Get("Content-Encoding") == "" && isCompressible(h.Get("Content-Type")) {
		w.gz = gzipWriters.Get().(*gzip.Writer)
		w.gz.Reset(w.ResponseWriter)
		h.Set("Content-Encoding", "gzip")
		h.Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(data))
		}
		w.WriteHeader(http.StatusOK)
	}
	if w.gz == nil {
		return w.ResponseWriter.Write(data)
	}
	return w.gz.Write(data)
}

func (w *gzipResponseWriter) finish() {
	if w.gz == nil {
		return
	}
	_ = w.gz.Close()
	gzipWriters.Put(w.gz)
	w.gz = nil
}
