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
	"cmp"

	"github.com/containerd/nerdctl/mod/fluent"
	"github.com/containerd/nerdctl/mod/fluent/harness"
)

// OrderedAssertion provides comparisons for numbers and strings.
// Every check is written as the negation of its success condition, so that NaN never satisfies any.
type OrderedAssertion[T cmp.Ordered] struct {
	*fluent.Assertion[T]
}

// Ordered extends an assertion over an ordered value.
func Ordered[T cmp.Ordered](assertion *fluent.Assertion[T]) *OrderedAssertion[T] {
	return &OrderedAssertion[T]{Assertion: assertion}
}

// ThatOrdered starts an assertion chain over an ordered value.
func ThatOrdered[T cmp.Ordered](t harness.T, subject *T) *OrderedAssertion[T] {
	return Ordered(fluent.That(t, subject))
}

// Named sets the name of the subject.
func (a *OrderedAssertion[T]) Named(name string) *OrderedAssertion[T] {
	a.Assertion.Named(name)

	return a
}

// WithLocation sets the location of the assertion.
func (a *OrderedAssertion[T]) WithLocation(location string) *OrderedAssertion[T] {
	a.Assertion.WithLocation(location)

	return a
}

// IsLessThan asserts that the subject is strictly less than other.
func (a *OrderedAssertion[T]) IsLessThan(other T) {
	a.T().Helper()

	if !(*a.Subject() < other) {
		a.fail("value less than " + fluent.Render(other))
	}
}

// IsLessThanOrEqualTo asserts that the subject is less than or equal to other.
func (a *OrderedAssertion[T]) IsLessThanOrEqualTo(other T) {
	a.T().Helper()

	if !(*a.Subject() <= other) {
		a.fail("value less than or equal to " + fluent.Render(other))
	}
}

// IsGreaterThan asserts that the subject is strictly greater than other.
func (a *OrderedAssertion[T]) IsGreaterThan(other T) {
	a.T().Helper()

	if !(*a.Subject() > other) {
		a.fail("value greater than " + fluent.Render(other))
	}
}

// IsGreaterThanOrEqualTo asserts that the subject is greater than or equal to other.
func (a *OrderedAssertion[T]) IsGreaterThanOrEqualTo(other T) {
	a.T().Helper()

	if !(*a.Subject() >= other) {
		a.fail("value greater than or equal to " + fluent.Render(other))
	}
}

// IsBetween asserts that low <= subject <= high.
func (a *OrderedAssertion[T]) IsBetween(low, high T) {
	a.T().Helper()

	if subject := *a.Subject(); !(low <= subject && subject <= high) {
		a.fail("value between " + fluent.Render(low) + " and " + fluent.Render(high))
	}
}

func (a *OrderedAssertion[T]) fail(expected string) {
	a.T().Helper()

	fluent.FailureFrom(a).
		WithExpected(expected).
		WithActual(fluent.Render(*a.Subject())).
		Fail()
}
