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

// BoolAssertion provides assertions on booleans.
type BoolAssertion struct {
	*fluent.Assertion[bool]
}

// Bool extends an assertion over a boolean.
func Bool(assertion *fluent.Assertion[bool]) *BoolAssertion {
	return &BoolAssertion{Assertion: assertion}
}

// ThatBool starts an assertion chain over a boolean.
func ThatBool(t harness.T, subject *bool) *BoolAssertion {
	return Bool(fluent.That(t, subject))
}

// Named sets the name of the subject.
func (a *BoolAssertion) Named(name string) *BoolAssertion {
	a.Assertion.Named(name)

	return a
}

// WithLocation sets the location of the assertion.
func (a *BoolAssertion) WithLocation(location string) *BoolAssertion {
	a.Assertion.WithLocation(location)

	return a
}

// IsTrue asserts that the subject is true.
func (a *BoolAssertion) IsTrue() {
	a.T().Helper()

	if !*a.Subject() {
		fluent.FailureFrom(a).
			WithExpected("bool to be <true>").
			WithActual("<false>").
			Fail()
	}
}

// IsFalse asserts that the subject is false.
func (a *BoolAssertion) IsFalse() {
	a.T().Helper()

	if *a.Subject() {
		fluent.FailureFrom(a).
			WithExpected("bool to be <false>").
			WithActual("<true>").
			Fail()
	}
}
