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
	"errors"

	"github.com/containerd/nerdctl/mod/fluent"
	"github.com/containerd/nerdctl/mod/fluent/harness"
)

// Result holds the outcome of a function returning a value and an error.
type Result[T any] struct {
	Value T
	Err   error
}

// Returning captures the outcome of a call, eg: expect.Returning(number, err).
func Returning[T any](value T, err error) Result[T] {
	return Result[T]{Value: value, Err: err}
}

func (r Result[T]) describe() string {
	if r.Err != nil {
		return "result[error]" + fluent.Render(r.Err)
	}

	return "result[ok]" + fluent.Render(r.Value)
}

// ResultAssertion provides assertions on results.
// A result is ok if its error is nil, regardless of its value.
type ResultAssertion[T any] struct {
	*fluent.Assertion[Result[T]]
}

// ResultOf extends an assertion over a result.
func ResultOf[T any](assertion *fluent.Assertion[Result[T]]) *ResultAssertion[T] {
	return &ResultAssertion[T]{Assertion: assertion}
}

// ThatResult starts an assertion chain over a result.
func ThatResult[T any](t harness.T, subject *Result[T]) *ResultAssertion[T] {
	return ResultOf(fluent.That(t, subject))
}

// Named sets the name of the subject.
func (a *ResultAssertion[T]) Named(name string) *ResultAssertion[T] {
	a.Assertion.Named(name)

	return a
}

// WithLocation sets the location of the assertion.
func (a *ResultAssertion[T]) WithLocation(location string) *ResultAssertion[T] {
	a.Assertion.WithLocation(location)

	return a
}

// IsOk asserts that the subject carries no error, and returns an assertion over its value.
func (a *ResultAssertion[T]) IsOk() *fluent.Assertion[T] {
	a.T().Helper()

	if a.Subject().Err != nil {
		fluent.FailureFrom(a).
			WithExpected("result[ok]").
			WithActual(a.Subject().describe()).
			Fail()

		return fluent.Project(a.Assertion, func(*Result[T]) *T { return new(T) })
	}

	return fluent.Project(a.Assertion, func(subject *Result[T]) *T { return &subject.Value })
}

// IsError asserts that the subject carries an error, and returns an assertion over it.
func (a *ResultAssertion[T]) IsError() *fluent.Assertion[error] {
	a.T().Helper()

	if a.Subject().Err == nil {
		fluent.FailureFrom(a).
			WithExpected("result[error]").
			WithActual(a.Subject().describe()).
			Fail()

		return fluent.Project(a.Assertion, func(*Result[T]) *error { return new(error) })
	}

	return fluent.Project(a.Assertion, func(subject *Result[T]) *error { return &subject.Err })
}

// ContainsValue asserts that the subject carries no error, and that its value is equal to expected.
func (a *ResultAssertion[T]) ContainsValue(expected T) {
	a.T().Helper()

	if a.Subject().Err == nil && fluent.Equal(a.Subject().Value, expected) {
		return
	}

	fluent.FailureFrom(a).
		WithExpected("result[ok] containing " + fluent.Render(expected)).
		WithActual(a.Subject().describe()).
		Fail()
}

// ContainsError asserts that the error carried by the subject matches target, as per errors.Is.
func (a *ResultAssertion[T]) ContainsError(target error) {
	a.T().Helper()

	if a.Subject().Err != nil && errors.Is(a.Subject().Err, target) {
		return
	}

	fluent.FailureFrom(a).
		WithExpected("result[error] matching " + fluent.Render(target)).
		WithActual(a.Subject().describe()).
		Fail()
}
