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

// Package fluent provides assertions that read like plain English:
//
//	greeting := "Hello World!"
//	fluent.That(t, &greeting).IsEqualTo("Hello World!")
//
// A failing assertion reports a message naming the expectation and the actual value, optionally
// prefixed by a description and a subject name, and suffixed by a location:
//
//	one := 1
//	fluent.That(fluent.Asserting(t, "test condition"), &one).Named("number one").IsEqualTo(2)
//
// renders as
//
//	test condition:
//	for subject [number one]
//	expected: <2>
//	 but was: <1>
//
// The message is logged on the test, which is then stopped with FailNow.
//
// An Assertion never owns its subject: it is built from a pointer to the value under test, and
// reads through it.
//
// # Writing assertions for other types
//
// Type specific assertions (see the expect package) are written against the exported surface only:
// they read Subject() without modifying it, and on failure describe what they expected and what they
// got with Render, before calling Fail on a Failure built from the assertion:
//
//	if !strings.HasPrefix(*a.Subject(), prefix) {
//		fluent.FailureFrom(a).
//			WithExpected("string starting with " + fluent.Render(prefix)).
//			WithActual(fluent.Render(*a.Subject())).
//			Fail()
//	}
//
// Assertions unwrapping a value (a map entry, a non-nil pointer) return a new Assertion over it,
// built with Project, so that the description, subject name and location carry over.
package fluent
