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
	"slices"
	"strings"

	"github.com/containerd/nerdctl/mod/fluent"
	"github.com/containerd/nerdctl/mod/fluent/harness"
)

// MapAssertion provides assertions on maps.
// Values are compared with fluent.Equal. Keys are listed in failure messages in a stable order.
type MapAssertion[K comparable, V any] struct {
	*fluent.Assertion[map[K]V]
}

// Map extends an assertion over a map.
func Map[K comparable, V any](assertion *fluent.Assertion[map[K]V]) *MapAssertion[K, V] {
	return &MapAssertion[K, V]{Assertion: assertion}
}

// ThatMap starts an assertion chain over a map.
func ThatMap[K comparable, V any](t harness.T, subject *map[K]V) *MapAssertion[K, V] {
	return Map(fluent.That(t, subject))
}

// Named sets the name of the subject.
func (a *MapAssertion[K, V]) Named(name string) *MapAssertion[K, V] {
	a.Assertion.Named(name)

	return a
}

// WithLocation sets the location of the assertion.
func (a *MapAssertion[K, V]) WithLocation(location string) *MapAssertion[K, V] {
	a.Assertion.WithLocation(location)

	return a
}

// HasLength asserts that the subject has exactly length entries.
func (a *MapAssertion[K, V]) HasLength(length int) {
	a.T().Helper()

	if actual := len(*a.Subject()); actual != length {
		fluent.FailureFrom(a).
			WithExpected("map to have length " + fluent.Render(length)).
			WithActual(fluent.Render(actual)).
			Fail()
	}
}

// IsEmpty asserts that the subject has no entry.
func (a *MapAssertion[K, V]) IsEmpty() {
	a.T().Helper()

	if actual := len(*a.Subject()); actual != 0 {
		fluent.FailureFrom(a).
			WithExpected("an empty map").
			WithActual("a map with length " + fluent.Render(actual)).
			Fail()
	}
}

// ContainsKey asserts that the subject has the key, and returns an assertion over the associated value.
// Map values are not addressable: the returned assertion is over a copy of the value.
func (a *MapAssertion[K, V]) ContainsKey(key K) *fluent.Assertion[V] {
	a.T().Helper()

	value, ok := (*a.Subject())[key]
	if !ok {
		fluent.FailureFrom(a).
			WithExpected("map to contain key " + fluent.Render(key)).
			WithActual(fluent.Render(a.keys())).
			Fail()
	}

	return fluent.Project(a.Assertion, func(*map[K]V) *V { return &value })
}

// DoesNotContainKey asserts that the subject does not have the key.
func (a *MapAssertion[K, V]) DoesNotContainKey(key K) {
	a.T().Helper()

	if _, ok := (*a.Subject())[key]; ok {
		fluent.FailureFrom(a).
			WithExpected("map to not contain key " + fluent.Render(key)).
			WithActual("present in map").
			Fail()
	}
}

// ContainsEntry asserts that the subject has the key, associated with the value.
func (a *MapAssertion[K, V]) ContainsEntry(key K, value V) {
	a.T().Helper()

	expected := "map containing key " + fluent.Render(key) + " with value " + fluent.Render(value)

	actual, ok := (*a.Subject())[key]
	if !ok {
		fluent.FailureFrom(a).
			WithExpected(expected).
			WithActual("no matching key, keys are " + fluent.Render(a.keys())).
			Fail()

		return
	}

	if !fluent.Equal(actual, value) {
		fluent.FailureFrom(a).
			WithExpected(expected).
			WithActual("key " + fluent.Render(key) + " with value " + fluent.Render(actual) + " instead").
			Fail()
	}
}

// DoesNotContainEntry asserts that the subject does not associate the key with the value.
// The key may be present with another value.
func (a *MapAssertion[K, V]) DoesNotContainEntry(key K, value V) {
	a.T().Helper()

	if actual, ok := (*a.Subject())[key]; ok && fluent.Equal(actual, value) {
		fluent.FailureFrom(a).
			WithExpected("map to not contain key " + fluent.Render(key) + " with value " + fluent.Render(value)).
			WithActual("present in map").
			Fail()
	}
}

// keys returns the keys of the subject, sorted by their rendering.
func (a *MapAssertion[K, V]) keys() []K {
	keys := make([]K, 0, len(*a.Subject()))
	for key := range *a.Subject() {
		keys = append(keys, key)
	}

	slices.SortFunc(keys, func(one, two K) int {
		return strings.Compare(fluent.Render(one), fluent.Render(two))
	})

	return keys
}
