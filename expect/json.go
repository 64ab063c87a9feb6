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
	"github.com/tidwall/gjson"

	"github.com/containerd/nerdctl/mod/fluent"
	"github.com/containerd/nerdctl/mod/fluent/harness"
)

// JSONAssertion provides assertions on JSON documents held in strings.
// Paths use the gjson syntax (https://github.com/tidwall/gjson/blob/master/SYNTAX.md), eg:
// "Config.Labels.version" or "Mounts.#".
type JSONAssertion struct {
	*fluent.Assertion[string]
}

// JSON extends an assertion over a JSON document.
func JSON(assertion *fluent.Assertion[string]) *JSONAssertion {
	return &JSONAssertion{Assertion: assertion}
}

// ThatJSON starts an assertion chain over a JSON document.
func ThatJSON(t harness.T, subject *string) *JSONAssertion {
	return JSON(fluent.That(t, subject))
}

// Named sets the name of the subject.
func (a *JSONAssertion) Named(name string) *JSONAssertion {
	a.Assertion.Named(name)

	return a
}

// WithLocation sets the location of the assertion.
func (a *JSONAssertion) WithLocation(location string) *JSONAssertion {
	a.Assertion.WithLocation(location)

	return a
}

// IsValid asserts that the subject is a valid JSON document.
func (a *JSONAssertion) IsValid() {
	a.T().Helper()

	if !gjson.Valid(*a.Subject()) {
		fluent.FailureFrom(a).
			WithExpected("a valid JSON document").
			WithActual(fluent.Render(*a.Subject())).
			Fail()
	}
}

// HasPath asserts that the document holds a value at path, and returns an assertion over the
// textual form of that value (strings unquoted, other values as raw JSON).
func (a *JSONAssertion) HasPath(path string) *fluent.Assertion[string] {
	a.T().Helper()

	res := gjson.Get(*a.Subject(), path)
	if !res.Exists() {
		fluent.FailureFrom(a).
			WithExpected("JSON document with a value at path " + fluent.Render(path)).
			WithActual(fluent.Render(*a.Subject())).
			Fail()
	}

	value := res.String()

	return fluent.Project(a.Assertion, func(*string) *string { return &value })
}

// DoesNotHavePath asserts that the document holds no value at path.
func (a *JSONAssertion) DoesNotHavePath(path string) {
	a.T().Helper()

	if res := gjson.Get(*a.Subject(), path); res.Exists() {
		fluent.FailureFrom(a).
			WithExpected("JSON document without a value at path " + fluent.Render(path)).
			WithActual("present with value " + fluent.Render(res.Raw)).
			Fail()
	}
}
