// This file is part of Gopher84.
//
// Gopher84 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher84 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher84.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher84/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the head of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separator between key and value in the preferences file.
const separator = " :: "

// Sentinal errors returned by the Disk type.
const (
	NoPrefsFile  = "prefs: file does not exist (%s)"
	InvalidFile  = "prefs: not a valid prefs file (%s)"
	DuplicateKey = "prefs: key already added to disk (%s)"
	Load         = "prefs: load: %v"
	Save         = "prefs: save: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// values taken from the command line stack when the entry was added.
	// these take priority over values loaded from the file
	cmdline map[string]Value
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
		cmdline: make(map[string]Value),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is the name used in the preferences file.
//
// If a value for the key exists on the current command line stack then it is
// applied immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(Load, err)
		}
		dsk.cmdline[key] = v
	}

	return nil
}

// Reset all values added to the disk to their default value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the file that do not
// belong to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	entries, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return curated.Errorf(Save, err)
	}

	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(Save, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, entries[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(Save, err)
	}

	return nil
}

// Load preference values from disk. If strict is true then an entry in the
// file that does not belong to this Disk is an error.
func (dsk *Disk) Load(strict bool) error {
	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range entries {
		p, ok := dsk.entries[k]
		if !ok {
			if strict {
				return curated.Errorf(Load, fmt.Sprintf("unknown key (%s)", k))
			}
			continue
		}
		if _, ok := dsk.cmdline[k]; ok {
			continue
		}
		if err := p.Set(v); err != nil {
			return curated.Errorf(Load, err)
		}
	}

	return nil
}

// read every key/value pair in the file, regardless of whether it belongs to
// this Disk instance.
func (dsk *Disk) read() (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return entries, curated.Errorf(Load, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return entries, curated.Errorf(InvalidFile, dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), separator, 2)
		if len(kv) != 2 {
			continue
		}
		entries[strings.TrimSpace(kv[0])] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return entries, curated.Errorf(Load, err)
	}

	return entries, nil
}
