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

package loaders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLoader(t *testing.T) {
	input := `# key value pairs
10 ten
20,twenty
30	thirty three

-5 minus five
40
`
	entries, err := (&TextLoader{}).Load(strings.NewReader(input))
	require.NoError(t, err)

	expected := []Entry{
		{Key: 10, Value: "ten"},
		{Key: 20, Value: "twenty"},
		{Key: 30, Value: "thirty three"},
		{Key: -5, Value: "minus five"},
		{Key: 40, Value: ""},
	}
	assert.Equal(t, expected, entries)
}

func TestTextLoaderRejectsBadKey(t *testing.T) {
	input := "1 one\n\ntwo 2\n"
	_, err := (&TextLoader{}).Load(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"two"`)
}

func TestYAMLLoader(t *testing.T) {
	input := `
entries:
  - key: 3
    value: three
  - key: 1
    value: "one, quoted"
`
	entries, err := (&YAMLLoader{}).Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Key: 3, Value: "three"}, {Key: 1, Value: "one, quoted"}}, entries)

	entries, err = (&YAMLLoader{}).Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = (&YAMLLoader{}).Load(strings.NewReader("entries: [key: 1"))
	assert.Error(t, err)
}

func TestZshHistoryLoader(t *testing.T) {
	input := `: 1673291850:0;ls -la
: 1673291860:2;git commit -m "x; y"
plain command without metadata
: notanumber:0;echo skipped
: 1673291870:0;
: 1673291880:0;make test
`
	entries, err := (&ZshHistoryLoader{}).Load(strings.NewReader(input))
	require.NoError(t, err)

	expected := []Entry{
		{Key: 1673291850, Value: "ls -la"},
		{Key: 1673291860, Value: `git commit -m "x; y"`},
		{Key: 1673291880, Value: "make test"},
	}
	assert.Equal(t, expected, entries)
}

func TestBashHistoryLoader(t *testing.T) {
	input := `#1700000000
ls
untimed command
#1700000100
cd /tmp
#garbage
echo skipped
#1700000200
`
	entries, err := (&BashHistoryLoader{}).Load(strings.NewReader(input))
	require.NoError(t, err)

	expected := []Entry{
		{Key: 1700000000, Value: "ls"},
		{Key: 1700000100, Value: "cd /tmp"},
	}
	assert.Equal(t, expected, entries)
}

func TestDetectShell(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")
	assert.Equal(t, "zsh", DetectShell())

	t.Setenv("SHELL", "")
	assert.Equal(t, "bash", DetectShell())
}

func TestDefaultHistoryPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Setenv("SHELL", "/bin/zsh")
	path, err := DefaultHistoryPath()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".zsh_history"))

	t.Setenv("SHELL", "/bin/fish")
	_, err = DefaultHistoryPath()
	assert.Error(t, err)
}
