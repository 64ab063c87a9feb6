/*
   Copyright The containerd Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package highk

import (
	"slices"
	"strings"

	"github.com/spf13/afero"
)

const fdDirectory = "/proc/self/fd"

// FIXME: the directory listing itself shows up as an open file (resolved as /proc/<pid>/fd), along
// with inodes held by the runtime.
//
//nolint:gochecknoglobals
var ignored = []string{
	"/proc/",
	"anon_inode:",
}

// SnapshotOpenFiles returns the sorted list of files currently opened by the process, as resolved
// from /proc/self/fd. This only works on linux.
func SnapshotOpenFiles(fs afero.Fs) ([]string, error) {
	entries, err := afero.ReadDir(fs, fdDirectory)
	if err != nil {
		return nil, err
	}

	reader, canReadLinks := fs.(afero.LinkReader)
	files := make([]string, 0, len(entries))

	for _, entry := range entries {
		target := entry.Name()

		if canReadLinks {
			if resolved, err := reader.ReadlinkIfPossible(fdDirectory + "/" + entry.Name()); err == nil {
				target = resolved
			}
		}

		files = append(files, target)
	}

	slices.Sort(files)

	return files, nil
}

// TrackOpenFiles snapshots the files currently opened, and returns a function listing the difference
// (see Diff) with a later snapshot.
// If either snapshot fails, an error is returned instead: a partial listing would report every open
// file as a leak.
func TrackOpenFiles(fs afero.Fs) (func() ([]string, error), error) {
	before, err := SnapshotOpenFiles(fs)
	if err != nil {
		return nil, err
	}

	return func() ([]string, error) {
		after, err := SnapshotOpenFiles(fs)
		if err != nil {
			return nil, err
		}

		return Diff(before, after), nil
	}, nil
}

// Diff returns the files that are only found in one of the two snapshots, prefixed with "-" (only
// in before) or "+" (only in after).
func Diff(before, after []string) []string {
	loss := map[string]int{}
	for _, file := range before {
		loss[file]++
	}

	gain := []string{}

	for _, file := range after {
		if loss[file] > 0 {
			loss[file]--
		} else {
			gain = append(gain, file)
		}
	}

	diff := []string{}

	for _, file := range before {
		if loss[file] > 0 && !isIgnored(file) {
			loss[file]--

			diff = append(diff, "- "+file)
		}
	}

	for _, file := range gain {
		if !isIgnored(file) {
			diff = append(diff, "+ "+file)
		}
	}

	return diff
}

func isIgnored(file string) bool {
	for _, prefix := range ignored {
		if strings.HasPrefix(file, prefix) {
			return true
		}
	}

	return false
}
