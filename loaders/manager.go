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
	"fmt"
	"os"
	"sort"
)

// LoaderManager picks a loader for each source file
type LoaderManager struct {
	loaders []Loader
}

// NewLoaderManager creates a manager with all the built in loaders
func NewLoaderManager() *LoaderManager {
	manager := &LoaderManager{}

	manager.RegisterLoader(&ZshHistoryLoader{})
	manager.RegisterLoader(&BashHistoryLoader{})
	manager.RegisterLoader(&YAMLLoader{})
	manager.RegisterLoader(&TextLoader{})

	return manager
}

// RegisterLoader registers a new loader, keeping them in priority order
func (lm *LoaderManager) RegisterLoader(loader Loader) {
	lm.loaders = append(lm.loaders, loader)
	sort.SliceStable(lm.loaders, func(i, j int) bool {
		return lm.loaders[i].Priority() < lm.loaders[j].Priority()
	})
}

// Loaders returns the registered loaders in priority order
func (lm *LoaderManager) Loaders() []Loader {
	return lm.loaders
}

// Lookup returns the loader registered under name
func (lm *LoaderManager) Lookup(name string) (Loader, error) {
	for _, loader := range lm.loaders {
		if loader.Name() == name {
			return loader, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// Select returns the highest priority loader supporting path
func (lm *LoaderManager) Select(path string) (Loader, error) {
	for _, loader := range lm.loaders {
		if loader.SupportsFile(path) {
			return loader, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", path, ErrNoLoader)
}

// LoadFile reads path with the best loader for it
func (lm *LoaderManager) LoadFile(path string) ([]Entry, error) {
	loader, err := lm.Select(path)
	if err != nil {
		return nil, err
	}
	return loadWith(loader, path)
}

// LoadFileAs reads path with the loader called name
func (lm *LoaderManager) LoadFileAs(path string, name string) ([]Entry, error) {
	loader, err := lm.Lookup(name)
	if err != nil {
		return nil, err
	}
	return loadWith(loader, path)
}

func loadWith(loader Loader, path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("source file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	entries, err := loader.Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s loader: %s: %w", loader.Name(), path, err)
	}
	return entries, nil
}
