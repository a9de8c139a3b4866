// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Pooled gzip codecs shared across requests. Note payloads are JSON and
// compress well; the import tool sends large snapshots gzipped.
var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip transparently inflates gzipped request bodies and compresses
// responses for clients that advertise gzip support.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			reader := gzipReaders.Get().(*gzip.Reader)
			if err := reader.Reset(r.Body); err != nil {
				gzipReaders.Put(reader)
				http.Error(w, "malformed gzip body", http.StatusBadRequest)
				return
			}
			r.Body = &pooledBody{reader: reader}
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		writer := gzipWriters.Get().(*gzip.Writer)
		writer.Reset(w)

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, writer: writer}, r)

		writer.Close()
		gzipWriters.Put(writer)
	})
}

// pooledBody returns its gzip reader to the pool when the body is closed.
type pooledBody struct {
	reader *gzip.Reader
	closed bool
}

func (b *pooledBody) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *pooledBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	err := b.reader.Close()
	gzipReaders.Put(b.reader)
	return err
}

type gzipResponseWriter struct {
	http.ResponseWriter
	writer *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.writer.Write(data)
}
