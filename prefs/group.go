// This file is part of fbotrack.
//
// fbotrack is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// fbotrack is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with fbotrack.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Group is a collection of preferences, each with a unique key.
type Group struct {
	entries map[string]Pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]Pref),
	}
}

// Add a preference to the group. Adding a key that already exists is an
// error.
func (grp *Group) Add(key string, p Pref) error {
	if _, ok := grp.entries[key]; ok {
		return fmt.Errorf("prefs: key already in group: %s", key)
	}
	grp.entries[key] = p
	return nil
}

// SetFromCommandLine sets the value of every preference in the group that has
// a value in the top group of the command line stack.
func (grp *Group) SetFromCommandLine() error {
	for key, p := range grp.entries {
		if ok, v := GetCommandLinePref(key); ok {
			err := p.Set(v)
			if err != nil {
				return fmt.Errorf("prefs: %s: %w", key, err)
			}
		}
	}
	return nil
}

// Reset every preference in the group.
func (grp *Group) Reset() error {
	for key, p := range grp.entries {
		err := p.Reset()
		if err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
	}
	return nil
}

// String returns the group as a prefs string, sorted by key.
func (grp *Group) String() string {
	keys := make([]string, 0, len(grp.entries))
	for key := range grp.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s::%s; ", key, grp.entries[key]))
	}
	return strings.TrimSuffix(s.String(), "; ")
}
