// Copyright 2025 Naren Yellavula
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

package main

import "io"

// LimitedWriter implements io.Writer with size limiting. Writes past the
// limit are dropped but reported as written, so callers such as
// avl.Tree.WriteTo run to completion.
type LimitedWriter struct {
	w         io.Writer
	limit     int64
	written   int64
	truncated bool
}

// NewLimitedWriter wraps w; a limit <= 0 means no limit
func NewLimitedWriter(w io.Writer, limit int64) *LimitedWriter {
	return &LimitedWriter{w: w, limit: limit}
}

func (lw *LimitedWriter) Write(p []byte) (n int, err error) {
	if lw.limit <= 0 {
		n, err = lw.w.Write(p)
		lw.written += int64(n)
		return n, err
	}

	if lw.written >= lw.limit {
		lw.truncated = true
		return len(p), nil
	}

	remaining := lw.limit - lw.written
	if int64(len(p)) > remaining {
		lw.truncated = true
		n, err = lw.w.Write(p[:remaining])
		lw.written += int64(n)
		return len(p), err
	}

	n, err = lw.w.Write(p)
	lw.written += int64(n)
	return n, err
}

// Truncated reports whether any output was dropped
func (lw *LimitedWriter) Truncated() bool {
	return lw.truncated
}

// Written is the number of bytes passed to the underlying writer
func (lw *LimitedWriter) Written() int64 {
	return lw.written
}
