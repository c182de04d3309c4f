// Copyright 2026 The arbor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rolling

import (
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compressor compresses an archive file in place, replacing its
// plain-text content with a compressed copy under the same name
// (spec §4.5 step 4: the `.gz`/`.zst` extension already lives in the
// fixed-window pattern).
type Compressor interface {
	Compress(path string) error
}

// GzipCompressor compresses with klauspost/compress/gzip — a
// drop-in, faster implementation of the same format as the standard
// library's compress/gzip, and the compression library the rest of
// the example pack (coffersTech-nanolog's column writer) already
// standardizes on for archive compression.
type GzipCompressor struct{}

// Compress implements Compressor.
func (GzipCompressor) Compress(path string) error {
	return compressInPlace(path, func(w io.Writer) (io.WriteCloser, error) {
		return gzip.NewWriterLevel(w, gzip.DefaultCompression)
	})
}

// ZstdCompressor compresses with klauspost/compress/zstd.
type ZstdCompressor struct{}

// Compress implements Compressor.
func (ZstdCompressor) Compress(path string) error {
	return compressInPlace(path, func(w io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(w)
	})
}

func compressInPlace(path string, newWriter func(io.Writer) (io.WriteCloser, error)) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	tmpPath := path + ".compressing"
	dst, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	cw, err := newWriter(dst)
	if err != nil {
		dst.Close()
		os.Remove(tmpPath)
		return err
	}
	if _, err := io.Copy(cw, src); err != nil {
		cw.Close()
		dst.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := cw.Close(); err != nil {
		dst.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := dst.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}

// CompressorForExtension picks a compressor by the fixed-window
// pattern's file extension, or returns (nil, false) when the pattern
// is plain (no compression).
func CompressorForExtension(pattern string) (Compressor, bool) {
	switch {
	case hasSuffixFold(pattern, ".gz"):
		return GzipCompressor{}, true
	case hasSuffixFold(pattern, ".zst"):
		return ZstdCompressor{}, true
	default:
		return nil, false
	}
}

func hasSuffixFold(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	tail := s[len(s)-len(suffix):]
	for i := range tail {
		a, b := tail[i], suffix[i]
		if a >= 'A' && a <= 'Z' {
			a += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}
