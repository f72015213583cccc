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

package avl_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/cybrota/keytree/avl"
)

func TestPrint(t *testing.T) {
	testCases := []struct {
		name     string
		insert   [][2]string
		expected string
	}{
		{
			name:     "empty",
			expected: "Empty Tree\n",
		},
		{
			name:     "single",
			insert:   [][2]string{{"7", "seven"}},
			expected: "7 , seven\n",
		},
		{
			name:     "rebalanced",
			insert:   [][2]string{{"10", "ten"}, {"20", "twenty"}, {"30", "thirty"}},
			expected: "\t30 , thirty\n20 , twenty\n\t10 , ten\n",
		},
		{
			name:   "three levels",
			insert: [][2]string{{"2", "b"}, {"1", "a"}, {"3", "c"}, {"4", "d"}},
			expected: "\t\t4 , d\n" +
				"\t3 , c\n" +
				"2 , b\n" +
				"\t1 , a\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := avl.New()
			for _, kv := range tc.insert {
				key := 0
				for _, c := range kv[0] {
					key = key*10 + int(c-'0')
				}
				tree.Insert(key, kv[1])
			}

			var b strings.Builder
			n, err := tree.WriteTo(&b)
			if err != nil {
				t.Fatalf("write: %v", err)
			}
			if b.String() != tc.expected {
				t.Errorf("rendering:\n%q\nexpected:\n%q", b.String(), tc.expected)
			}
			if n != int64(len(tc.expected)) {
				t.Errorf("bytes written: %d  expected: %d", n, len(tc.expected))
			}
			if tree.String() != tc.expected {
				t.Errorf("String(): %q", tree.String())
			}
		})
	}
}

type failingWriter struct {
	after int
}

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errWrite
	}
	w.after -= 1
	return len(p), nil
}

func TestPrintWriteError(t *testing.T) {
	tree := build(t, 1, 2, 3, 4, 5)

	_, err := tree.WriteTo(&failingWriter{after: 2})
	if !errors.Is(err, errWrite) {
		t.Fatalf("error: %v  expected: %v", err, errWrite)
	}
}
