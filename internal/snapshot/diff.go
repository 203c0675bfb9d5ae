// Copyright (c) 2025 Confwatch authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package snapshot

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// diffContext is the number of unchanged lines shown around each hunk.
const diffContext = 3

// Unified renders a line-level unified diff between two snapshots.
// Identical texts yield an empty string (zero hunks). Output is
// deterministic for a given pair of inputs.
func Unified(left, right Snapshot) (string, error) {
	return UnifiedText(left.Text, right.Text,
		fmt.Sprintf("snapshot-%d", left.ID),
		fmt.Sprintf("snapshot-%d", right.ID))
}

// UnifiedText diffs two raw texts under the given side labels. Texts
// are split on single "\n" delimiters; no other normalization happens.
func UnifiedText(a, b, fromLabel, toLabel string) (string, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: fromLabel,
		ToFile:   toLabel,
		Context:  diffContext,
	}
	out, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", fmt.Errorf("render unified diff: %w", err)
	}
	return out, nil
}

// DiffPair resolves two snapshots by id in the store and diffs them.
// A nil id selects the default side: left defaults to the previous
// snapshot, right to the current one.
func (s *Store) DiffPair(left, right *int64) (string, error) {
	if left == nil || right == nil {
		prev, cur, err := s.LastTwo()
		if err != nil {
			return "", err
		}
		return Unified(prev, cur)
	}
	if s.Len() < 2 {
		return "", ErrNotEnoughHistory
	}
	l, ok := s.Find(*left)
	if !ok {
		return "", fmt.Errorf("left %d: %w", *left, ErrNotFound)
	}
	r, ok := s.Find(*right)
	if !ok {
		return "", fmt.Errorf("right %d: %w", *right, ErrNotFound)
	}
	return Unified(l, r)
}
