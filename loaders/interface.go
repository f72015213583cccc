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
	"io"
)

var (
	ErrNoLoader      = errors.New("no loader supports the file")
	ErrUnknownFormat = errors.New("unknown format")
)

// Entry is a single key/value pair read from a source
type Entry struct {
	Key   int
	Value string
}

// Loader defines the interface for the different source formats
type Loader interface {
	Name() string
	SupportsFile(path string) bool
	Priority() int // Lower number = higher priority
	Load(r io.Reader) ([]Entry, error)
}
