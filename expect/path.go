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

package expect

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/containerd/nerdctl/mod/fluent"
	"github.com/containerd/nerdctl/mod/fluent/harness"
)

// PathAssertion provides assertions on filesystem paths.
// Paths are resolved on the OS filesystem, unless another one is provided with On.
type PathAssertion struct {
	*fluent.Assertion[string]

	fs afero.Fs
}

// Path extends an assertion over a path.
func Path(assertion *fluent.Assertion[string]) *PathAssertion {
	return &PathAssertion{
		Assertion: assertion,
		fs:        afero.NewOsFs(),
	}
}

// ThatPath starts an assertion chain over a path.
func ThatPath(t harness.T, subject *string) *PathAssertion {
	return Path(fluent.That(t, subject))
}

// On sets the filesystem the path is resolved on.
func (a *PathAssertion) On(fs afero.Fs) *PathAssertion {
	a.fs = fs

	return a
}

// Named sets the name of the subject.
func (a *PathAssertion) Named(name string) *PathAssertion {
	a.Assertion.Named(name)

	return a
}

// WithLocation sets the location of the assertion.
func (a *PathAssertion) WithLocation(location string) *PathAssertion {
	a.Assertion.WithLocation(location)

	return a
}

// Exists asserts that something exists at the path.
func (a *PathAssertion) Exists() {
	a.T().Helper()

	if exists, err := afero.Exists(a.fs, *a.Subject()); err != nil || !exists {
		a.fail("to exist", "a non-existent path")
	}
}

// DoesNotExist asserts that nothing exists at the path.
func (a *PathAssertion) DoesNotExist() {
	a.T().Helper()

	if exists, err := afero.Exists(a.fs, *a.Subject()); err == nil && exists {
		a.fail("to not exist", "a resolvable path")
	}
}

// IsAFile asserts that the path points to a regular file.
func (a *PathAssertion) IsAFile() {
	a.T().Helper()

	if info, err := a.fs.Stat(*a.Subject()); err != nil || !info.Mode().IsRegular() {
		a.fail("to be a file", "not a resolvable file")
	}
}

// IsADirectory asserts that the path points to a directory.
func (a *PathAssertion) IsADirectory() {
	a.T().Helper()

	if isDir, err := afero.IsDir(a.fs, *a.Subject()); err != nil || !isDir {
		a.fail("to be a directory", "not a resolvable directory")
	}
}

// HasFileName asserts that the last element of the path is name.
// The filesystem is not looked at.
func (a *PathAssertion) HasFileName(name string) {
	a.T().Helper()

	expected := "path with file name of <" + name + ">"
	subject := filepath.Clean(*a.Subject())

	base := filepath.Base(subject)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		fluent.FailureFrom(a).
			WithExpected(expected).
			WithActual("a non-resolvable path " + fluent.Render(*a.Subject())).
			Fail()

		return
	}

	if base != name {
		fluent.FailureFrom(a).
			WithExpected(expected).
			WithActual("<" + base + ">").
			Fail()
	}
}

func (a *PathAssertion) fail(expected, actual string) {
	a.T().Helper()

	fluent.FailureFrom(a).
		WithExpected("path of " + fluent.Render(*a.Subject()) + " " + expected).
		WithActual(actual).
		Fail()
}
