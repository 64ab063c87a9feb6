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
	"github.com/containerd/nerdctl/mod/fluent"
	"github.com/containerd/nerdctl/mod/fluent/harness"
)

// SliceAssertion provides assertions on slices.
// Elements are compared with fluent.Equal.
type SliceAssertion[E any] struct {
	*fluent.Assertion[[]E]
}

// Slice extends an assertion over a slice.
func Slice[E any](assertion *fluent.Assertion[[]E]) *SliceAssertion[E] {
	return &SliceAssertion[E]{Assertion: assertion}
}

// ThatSlice starts an assertion chain over a slice.
func ThatSlice[E any](t harness.T, subject *[]E) *SliceAssertion[E] {
	return Slice(fluent.That(t, subject))
}

// Named sets the name of the subject.
func (a *SliceAssertion[E]) Named(name string) *SliceAssertion[E] {
	a.Assertion.Named(name)

	return a
}

// WithLocation sets the location of the assertion.
func (a *SliceAssertion[E]) WithLocation(location string) *SliceAssertion[E] {
	a.Assertion.WithLocation(location)

	return a
}

// HasLength asserts that the subject has exactly length elements.
func (a *SliceAssertion[E]) HasLength(length int) {
	a.T().Helper()

	if actual := len(*a.Subject()); actual != length {
		fluent.FailureFrom(a).
			WithExpected("slice to have length " + fluent.Render(length)).
			WithActual(fluent.Render(actual)).
			Fail()
	}
}

// IsEmpty asserts that the subject has no element.
func (a *SliceAssertion[E]) IsEmpty() {
	a.T().Helper()

	if actual := len(*a.Subject()); actual != 0 {
		fluent.FailureFrom(a).
			WithExpected("an empty slice").
			WithActual("a slice with length " + fluent.Render(actual)).
			Fail()
	}
}

// IsNotEmpty asserts that the subject has at least one element.
func (a *SliceAssertion[E]) IsNotEmpty() {
	a.T().Helper()

	if len(*a.Subject()) == 0 {
		fluent.FailureFrom(a).
			WithExpected("a non-empty slice").
			WithActual("an empty slice").
			Fail()
	}
}

// Contains asserts that at least one element of the subject is equal to expected.
func (a *SliceAssertion[E]) Contains(expected E) {
	a.T().Helper()

	if a.index(expected) == -1 {
		a.fail("slice to contain " + fluent.Render(expected))
	}
}

// DoesNotContain asserts that no element of the subject is equal to unexpected.
func (a *SliceAssertion[E]) DoesNotContain(unexpected E) {
	a.T().Helper()

	if a.index(unexpected) != -1 {
		a.fail("slice to not contain " + fluent.Render(unexpected))
	}
}

// ContainsAllOf asserts that every one of the expected values is found in the subject, in any order.
func (a *SliceAssertion[E]) ContainsAllOf(expected ...E) {
	a.T().Helper()

	for _, item := range expected {
		if a.index(item) == -1 {
			a.fail("slice to contain items " + fluent.Render(expected))

			return
		}
	}
}

// MatchingContains asserts that the matcher holds for at least one element of the subject.
func (a *SliceAssertion[E]) MatchingContains(matcher func(*E) bool) {
	a.T().Helper()

	subject := *a.Subject()
	for index := range subject {
		if matcher(&subject[index]) {
			return
		}
	}

	fluent.FailureFrom(a).FailWithMessage("expectation failed for iterator with values " + fluent.Render(subject))
}

// Element asserts that the subject has an element at index, and returns an assertion over it.
func (a *SliceAssertion[E]) Element(index int) *fluent.Assertion[E] {
	a.T().Helper()

	if length := len(*a.Subject()); index < 0 || index >= length {
		fluent.FailureFrom(a).
			WithExpected("slice with an element at index " + fluent.Render(index)).
			WithActual("a slice with length " + fluent.Render(length)).
			Fail()

		return fluent.Project(a.Assertion, func(*[]E) *E { return new(E) })
	}

	return fluent.Project(a.Assertion, func(subject *[]E) *E { return &(*subject)[index] })
}

func (a *SliceAssertion[E]) index(expected E) int {
	for index, item := range *a.Subject() {
		if fluent.Equal(item, expected) {
			return index
		}
	}

	return -1
}

func (a *SliceAssertion[E]) fail(expected string) {
	a.T().Helper()

	fluent.FailureFrom(a).
		WithExpected(expected).
		WithActual(fluent.Render(*a.Subject())).
		Fail()
}
