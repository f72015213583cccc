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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderManagerSelect(t *testing.T) {
	manager := NewLoaderManager()

	tests := []struct {
		path     string
		expected string
	}{
		{"/home/me/.zsh_history", "zsh"},
		{"/home/me/.bash_history", "bash"},
		{"data/entries.yaml", "yaml"},
		{"data/entries.YML", "yaml"},
		{"data/entries.txt", "text"},
		{"entries", "text"},
	}

	for _, tc := range tests {
		loader, err := manager.Select(tc.path)
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.expected, loader.Name(), tc.path)
	}
}

func TestLoaderManagerPriorityOrder(t *testing.T) {
	manager := NewLoaderManager()

	previous := -1
	for _, loader := range manager.Loaders() {
		assert.GreaterOrEqual(t, loader.Priority(), previous)
		previous = loader.Priority()
	}
	assert.Len(t, manager.Loaders(), 4)
}

func TestLoaderManagerLookup(t *testing.T) {
	manager := NewLoaderManager()

	loader, err := manager.Lookup("bash")
	require.NoError(t, err)
	assert.Equal(t, "bash", loader.Name())

	_, err = manager.Lookup("csv")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestLoaderManagerSelectWithoutFallback(t *testing.T) {
	manager := &LoaderManager{}
	manager.RegisterLoader(&YAMLLoader{})

	_, err := manager.Select("entries.txt")
	assert.True(t, errors.Is(err, ErrNoLoader))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	manager := NewLoaderManager()

	textPath := filepath.Join(dir, "entries.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("2 two\n1 one\n"), 0644))

	entries, err := manager.LoadFile(textPath)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Key: 2, Value: "two"}, {Key: 1, Value: "one"}}, entries)

	// forcing a format overrides the file name
	historyPath := filepath.Join(dir, "history.txt")
	require.NoError(t, os.WriteFile(historyPath, []byte(": 100:0;ls\n"), 0644))

	entries, err = manager.LoadFileAs(historyPath, "zsh")
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Key: 100, Value: "ls"}}, entries)

	_, err = manager.LoadFile(historyPath)
	assert.Error(t, err, "text loader must reject history lines")

	_, err = manager.LoadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
