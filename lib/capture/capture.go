// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// Writer writes a zstd-compressed capture file. It implements
// io.WriteCloser; Close flushes the compressed stream before closing
// the file, and a capture is not well-formed until Close returns.
type Writer struct {
	file    *os.File
	encoder *zstd.Encoder
}

// Create opens a capture file at path, truncating any existing file.
func Create(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating capture file: %w", err)
	}
	encoder, err := zstd.NewWriter(file, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("initializing zstd encoder: %w", err)
	}
	return &Writer{file: file, encoder: encoder}, nil
}

func (w *Writer) Write(p []byte) (int, error) {
	return w.encoder.Write(p)
}

// Close flushes the compressed stream and closes the file.
func (w *Writer) Close() error {
	encErr := w.encoder.Close()
	fileErr := w.file.Close()
	if encErr != nil {
		return fmt.Errorf("finishing capture stream: %w", encErr)
	}
	if fileErr != nil {
		return fmt.Errorf("closing capture file: %w", fileErr)
	}
	return nil
}

// ReadFile decompresses an entire capture file into memory.
func ReadFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening capture file: %w", err)
	}
	defer file.Close()

	decoder, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("initializing zstd decoder: %w", err)
	}
	defer decoder.Close()

	data, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("reading capture file: %w", err)
	}
	return data, nil
}
