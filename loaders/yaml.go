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
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLoader reads documents of the form
//
//	entries:
//	  - key: 1
//	    value: one
type YAMLLoader struct{}

type yamlDocument struct {
	Entries []yamlEntry `yaml:"entries"`
}

type yamlEntry struct {
	Key   int    `yaml:"key"`
	Value string `yaml:"value"`
}

func (yl *YAMLLoader) Name() string {
	return "yaml"
}

func (yl *YAMLLoader) SupportsFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func (yl *YAMLLoader) Priority() int {
	return 3
}

func (yl *YAMLLoader) Load(r io.Reader) ([]Entry, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	entries := make([]Entry, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		entries = append(entries, Entry{Key: e.Key, Value: e.Value})
	}
	return entries, nil
}
