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
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/containerd/nerdctl/mod/fluent"
	"github.com/containerd/nerdctl/mod/fluent/harness"
)

// StringAssertion provides assertions on strings.
type StringAssertion struct {
	*fluent.Assertion[string]
}

// String extends an assertion over a string.
func String(assertion *fluent.Assertion[string]) *StringAssertion {
	return &StringAssertion{Assertion: assertion}
}

// ThatString starts an assertion chain over a string.
func ThatString(t harness.T, subject *string) *StringAssertion {
	return String(fluent.That(t, subject))
}

// Named sets the name of the subject.
func (a *StringAssertion) Named(name string) *StringAssertion {
	a.Assertion.Named(name)

	return a
}

// WithLocation sets the location of the assertion.
func (a *StringAssertion) WithLocation(location string) *StringAssertion {
	a.Assertion.WithLocation(location)

	return a
}

// StartsWith asserts that the subject starts with prefix.
func (a *StringAssertion) StartsWith(prefix string) {
	a.T().Helper()

	if !strings.HasPrefix(*a.Subject(), prefix) {
		a.fail("string starting with " + fluent.Render(prefix))
	}
}

// EndsWith asserts that the subject ends with suffix.
func (a *StringAssertion) EndsWith(suffix string) {
	a.T().Helper()

	if !strings.HasSuffix(*a.Subject(), suffix) {
		a.fail("string ending with " + fluent.Render(suffix))
	}
}

// Contains asserts that the subject contains substr.
func (a *StringAssertion) Contains(substr string) {
	a.T().Helper()

	if !strings.Contains(*a.Subject(), substr) {
		a.fail("string containing " + fluent.Render(substr))
	}
}

// DoesNotContain asserts that the subject does not contain substr.
func (a *StringAssertion) DoesNotContain(substr string) {
	a.T().Helper()

	if strings.Contains(*a.Subject(), substr) {
		a.fail("string not containing " + fluent.Render(substr))
	}
}

// MatchesRegexp asserts that the subject matches the regular expression.
func (a *StringAssertion) MatchesRegexp(reg *regexp.Regexp) {
	a.T().Helper()

	if !reg.MatchString(*a.Subject()) {
		a.fail("string matching " + fluent.Render(reg.String()))
	}
}

// IsEmpty asserts that the subject is the empty string.
func (a *StringAssertion) IsEmpty() {
	a.T().Helper()

	if *a.Subject() != "" {
		a.fail("an empty string")
	}
}

// IsNotEmpty asserts that the subject is not the empty string.
func (a *StringAssertion) IsNotEmpty() {
	a.T().Helper()

	if *a.Subject() == "" {
		a.fail("a non-empty string")
	}
}

// HasLength asserts that the subject is made of exactly length runes.
func (a *StringAssertion) HasLength(length int) {
	a.T().Helper()

	if actual := utf8.RuneCountInString(*a.Subject()); actual != length {
		fluent.FailureFrom(a).
			WithExpected("string to have length " + fluent.Render(length)).
			WithActual(fluent.Render(actual)).
			Fail()
	}
}

func (a *StringAssertion) fail(expected string) {
	a.T().Helper()

	fluent.FailureFrom(a).
		WithExpected(expected).
		WithActual(fluent.Render(*a.Subject())).
		Fail()
}
