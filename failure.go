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

package fluent

import (
	"errors"

	"github.com/containerd/nerdctl/mod/fluent/harness"
	"github.com/containerd/nerdctl/mod/fluent/internal/formatter"
	"github.com/containerd/nerdctl/mod/fluent/internal/logger"
)

// ErrInvalidAssertion is raised (as a panic) when Fail is called before both the expected and
// actual texts have been set. This is a bug in the assertion, not a test failure.
var ErrInvalidAssertion = errors.New("invalid assertion")

// Describable is what is needed from an assertion to render its failures.
// An empty string means the corresponding part is absent.
type Describable interface {
	SubjectName() string
	Location() string
	Description() string
}

// Reporter is a Describable that also knows where to report failures.
type Reporter interface {
	Describable
	T() harness.T
}

// Failure accumulates the details of a failed check, then reports it.
type Failure struct {
	reporter    Reporter
	expected    string
	actual      string
	hasExpected bool
	hasActual   bool
}

// FailureFrom starts a new failure for the assertion.
func FailureFrom(reporter Reporter) *Failure {
	return &Failure{
		reporter: reporter,
	}
}

// WithExpected sets what the assertion expected, eg: "string starting with <\"H\">".
func (f *Failure) WithExpected(expected string) *Failure {
	f.expected = expected
	f.hasExpected = true

	return f
}

// WithActual sets what the assertion got instead, eg: "<\"ello\">".
func (f *Failure) WithActual(actual string) *Failure {
	f.actual = actual
	f.hasActual = true

	return f
}

// Fail reports the failure. Both expected and actual must have been set.
func (f *Failure) Fail() {
	if !f.hasExpected || !f.hasActual {
		panic(ErrInvalidAssertion)
	}

	f.reporter.T().Helper()

	f.report(formatter.Failure(
		f.reporter.Description(),
		f.reporter.SubjectName(),
		f.expected,
		f.actual,
		f.reporter.Location(),
	))
}

// FailWithMessage reports the failure with a free-form message, ignoring expected and actual.
func (f *Failure) FailWithMessage(message string) {
	f.reporter.T().Helper()

	f.report(formatter.Message(
		f.reporter.Description(),
		f.reporter.SubjectName(),
		message,
		f.reporter.Location(),
	))
}

func (f *Failure) report(message string) {
	t := f.reporter.T()
	t.Helper()

	logger.Failure(f.reporter.Description(), f.reporter.SubjectName(), f.reporter.Location(), "assertion failed")

	t.Log(message)
	t.FailNow()
}
