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

import "testing"

func TestDetectTerminalMode(t *testing.T) {
	tests := []struct {
		name      string
		colorfgbg string
		theme     string
		expected  TerminalMode
	}{
		{"dark background", "15;0", "", TerminalModeDark},
		{"light background", "0;15", "", TerminalModeLight},
		{"theme variable", "", "Solarized Light", TerminalModeLight},
		{"nothing set", "", "", TerminalModeDark},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("COLORFGBG", tc.colorfgbg)
			t.Setenv("TERM_THEME", tc.theme)
			t.Setenv("THEME", "")
			if got := detectTerminalMode(); got != tc.expected {
				t.Errorf("detectTerminalMode() = %v; want %v", got, tc.expected)
			}
		})
	}
}
