// Copyright (c) 2025 Confwatch authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

// Package capture runs the diagnostic command against the target
// container and normalizes its output before it is recorded.
package capture

import (
	"context"
	"unicode/utf8"
)

// Result is the raw outcome of a successful capture attempt. A non-zero
// ExitCode means the diagnostic command itself reported a problem; that
// is recorded, not treated as a capture failure.
type Result struct {
	Output   string
	ExitCode int
}

// Source executes the diagnostic command against a target and returns
// its combined output. An error means the attempt itself failed
// (target missing, runtime unreachable) and no snapshot must be made.
type Source interface {
	Capture(ctx context.Context, target string) (Result, error)
}

// TruncatedMarker is appended verbatim to output cut at the size cap.
const TruncatedMarker = "\n\n[TRUNCATED: output exceeded MAX_CHARS]\n"

// Normalize applies the size cap to a capture result. Output longer
// than maxChars bytes is cut at the cap and the truncation marker is
// appended, bounding store memory before the text is recorded. The cut
// backs up to the previous rune boundary so the stored text stays
// valid UTF-8. maxChars < 1 disables the cap.
func Normalize(res Result, maxChars int) Result {
	if maxChars > 0 && len(res.Output) > maxChars {
		cut := maxChars
		for cut > 0 && !utf8.RuneStart(res.Output[cut]) {
			cut--
		}
		res.Output = res.Output[:cut] + TruncatedMarker
	}
	return res
}
