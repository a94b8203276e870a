// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrNotFile is returned by Describe for directories and other non-regular files.
var ErrNotFile = errors.New("not a regular file")

// File describes one dropped file.
type File struct {
	Path string
	Name string
	Size int64
	Type string // MIME type, e.g. "image/png"
}

// IsImage reports whether the file's MIME type is an image type.
func (f File) IsImage() bool {
	return strings.HasPrefix(f.Type, "image/")
}

// Describe stats path and sniffs its MIME type from the content.
func Describe(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to stat dropped file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return File{}, fmt.Errorf("%s: %w", path, ErrNotFile)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to detect file type: %w", err)
	}

	return File{
		Path: path,
		Name: filepath.Base(path),
		Size: info.Size(),
		Type: mtype.String(),
	}, nil
}

// DescribeAll describes every path, skipping the ones that cannot be read.
// The returned errors are the per-path failures, in input order.
func DescribeAll(paths []string) ([]File, []error) {
	files := make([]File, 0, len(paths))
	var errs []error
	for _, p := range paths {
		f, err := Describe(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		files = append(files, f)
	}
	return files, errs
}
