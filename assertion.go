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
)

// ErrNilSubject is raised (as a panic) when an assertion is created over a nil pointer.
var ErrNilSubject = errors.New("invalid assertion: nil subject")

var _ Reporter = &Assertion[any]{}

// Assertion wraps a pointer to the value under test (the subject), along with optional metadata
// used to render failures: a description, a subject name and a location.
// Assertions are meant to be short-lived: one per chain of checks.
type Assertion[S any] struct {
	t           harness.T
	subject     *S
	subjectName string
	location    string
	description string
}

// That starts an assertion chain over the value pointed to by subject.
// If t is a *Description (see Asserting), possibly wrapped (eg: by harness.WithFailLater), its text
// and location are attached to the assertion. Failures are reported to t.
func That[S any](t harness.T, subject *S) *Assertion[S] {
	if subject == nil {
		panic(ErrNilSubject)
	}

	assertion := &Assertion[S]{
		t:       t,
		subject: subject,
	}

	if description := findDescription(t); description != nil {
		assertion.description = description.text
		assertion.location = description.location
	}

	return assertion
}

func findDescription(t harness.T) *Description {
	for t != nil {
		switch current := t.(type) {
		case *Description:
			return current
		case harness.Wrapper:
			t = current.Unwrap()
		default:
			return nil
		}
	}

	return nil
}

// Project returns a new assertion over a value derived from the subject, keeping the subject name,
// location and description.
// The mapping function should return a pointer into the subject whenever possible (eg: a field), so
// that no copy is made. It must not return nil.
func Project[S, T any](assertion *Assertion[S], mapping func(*S) *T) *Assertion[T] {
	subject := mapping(assertion.subject)
	if subject == nil {
		panic(ErrNilSubject)
	}

	return &Assertion[T]{
		t:           assertion.t,
		subject:     subject,
		subjectName: assertion.subjectName,
		location:    assertion.location,
		description: assertion.description,
	}
}

// Named sets the name of the subject, shown in failure messages as "for subject [name]".
func (a *Assertion[S]) Named(name string) *Assertion[S] {
	a.subjectName = name

	return a
}

// WithLocation sets the location shown at the bottom of failure messages (typically "file:line").
func (a *Assertion[S]) WithLocation(location string) *Assertion[S] {
	a.location = location

	return a
}

// Subject returns the pointer to the value under test. It must not be written through.
func (a *Assertion[S]) Subject() *S {
	return a.subject
}

// SubjectName returns the name of the subject, or the empty string if it was not named.
func (a *Assertion[S]) SubjectName() string {
	return a.subjectName
}

// Location returns the location of the assertion, or the empty string if there is none.
func (a *Assertion[S]) Location() string {
	return a.location
}

// Description returns the description of the assertion, or the empty string if there is none.
func (a *Assertion[S]) Description() string {
	return a.description
}

// T returns where failures are reported.
func (a *Assertion[S]) T() harness.T {
	return a.t
}

// IsEqualTo asserts that the subject is equal to the expected value (see Equal).
func (a *Assertion[S]) IsEqualTo(expected S) {
	a.t.Helper()

	if !Equal(*a.subject, expected) {
		FailureFrom(a).
			WithExpected(Render(expected)).
			WithActual(Render(*a.subject)).
			Fail()
	}
}

// IsNotEqualTo asserts that the subject is not equal to the expected value (see Equal).
func (a *Assertion[S]) IsNotEqualTo(expected S) {
	a.t.Helper()

	if Equal(*a.subject, expected) {
		FailureFrom(a).
			WithExpected(Render(*a.subject) + " to not equal " + Render(expected)).
			WithActual("equal").
			Fail()
	}
}

// Matches asserts that the predicate holds for the subject.
// As the predicate is opaque, the failure only shows the subject value.
func (a *Assertion[S]) Matches(predicate func(*S) bool) {
	a.t.Helper()

	if !predicate(a.subject) {
		FailureFrom(a).FailWithMessage("expectation failed for value " + Render(*a.subject))
	}
}
