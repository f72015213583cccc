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

// Package avl implements an AVL balanced binary search tree mapping int
// keys to string values.
//
// Every node keeps a pointer to its parent so that the shape can be walked
// in both directions; the pointer carries no ownership. Inserting a key that
// is already present is rejected rather than overwriting the stored value,
// and there is no delete.
//
// A Tree is not safe for concurrent use. Either confine it to a single
// goroutine or guard it with a mutex.
package avl
