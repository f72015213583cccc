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

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Keytree %s**

An ordered index of integer keys backed by a self-balancing AVL tree.
Load keyed text, YAML or your shell history and query it by key or by range.

Built with Go %s

# 1. Commands
* **stats**: load the sources and show size, height and duplicates rejected
* **find KEY**: print the value stored for KEY
* **range LOW HIGH**: print every value with LOW <= key <= HIGH, in key order
* **print**: draw the tree rotated a quarter turn (largest keys on top)
* **shell**: interactive shell (insert, find, range, snapshot, restore, check)
* **dashboard**: nodes per depth as a bar chart
* **settings**: show or create ~/.keytree.yaml

# 2. Sources
* Text files with one "KEY VALUE" or "KEY,VALUE" pair per line
* YAML files with an "entries" list of key/value pairs
* Zsh and Bash history (keys are Unix timestamps)

Range bounds can be integers or dates such as 2025-01-31.
Existing keys are never overwritten: the first occurrence wins.

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
