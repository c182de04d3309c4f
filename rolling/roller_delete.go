// Copyright 2026 The arbor Authors
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

package rolling

import "os"

// DeleteRoller simply removes the active file on rotation; the
// appender recreates it empty on the next write (spec §4.5).
type DeleteRoller struct{}

// NewDeleteRoller builds a DeleteRoller.
func NewDeleteRoller() *DeleteRoller { return &DeleteRoller{} }

// Rotate implements Roller.
func (d *DeleteRoller) Rotate(activePath string) error {
	if err := os.Remove(activePath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
