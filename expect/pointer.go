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

// PointerAssertion provides assertions on optional values, expressed as pointers.
type PointerAssertion[T any] struct {
	*fluent.Assertion[*T]
}

// Pointer extends an assertion over a pointer.
func Pointer[T any](assertion *fluent.Assertion[*T]) *PointerAssertion[T] {
	return &PointerAssertion[T]{Assertion: assertion}
}

// ThatPointer starts an assertion chain over a pointer.
func ThatPointer[T any](t harness.T, subject **T) *PointerAssertion[T] {
	return Pointer(fluent.That(t, subject))
}

// Named sets the name of the subject.
func (a *PointerAssertion[T]) Named(name string) *PointerAssertion[T] {
	a.Assertion.Named(name)

	return a
}

// WithLocation sets the location of the assertion.
func (a *PointerAssertion[T]) WithLocation(location string) *PointerAssertion[T] {
	a.Assertion.WithLocation(location)

	return a
}

// IsNotNil asserts that the subject is not nil, and returns an assertion over the value it points to.
func (a *PointerAssertion[T]) IsNotNil() *fluent.Assertion[T] {
	a.T().Helper()

	if *a.Subject() == nil {
		fluent.FailureFrom(a).
			WithExpected("a non-nil pointer").
			WithActual("<nil>").
			Fail()

		return fluent.Project(a.Assertion, func(**T) *T { return new(T) })
	}

	return fluent.Project(a.Assertion, func(subject **T) *T { return *subject })
}

// IsNil asserts that the subject is nil.
func (a *PointerAssertion[T]) IsNil() {
	a.T().Helper()

	if pointee := *a.Subject(); pointee != nil {
		fluent.FailureFrom(a).
			WithExpected("a nil pointer").
			WithActual("pointer to " + fluent.Render(*pointee)).
			Fail()
	}
}

// PointsTo asserts that the subject is not nil, and that the value it points to is equal to expected.
func (a *PointerAssertion[T]) PointsTo(expected T) {
	a.T().Helper()

	pointee := *a.Subject()
	if pointee != nil && fluent.Equal(*pointee, expected) {
		return
	}

	actual := "<nil>"
	if pointee != nil {
		actual = "pointer to " + fluent.Render(*pointee)
	}

	fluent.FailureFrom(a).
		WithExpected("pointer to " + fluent.Render(expected)).
		WithActual(actual).
		Fail()
}
