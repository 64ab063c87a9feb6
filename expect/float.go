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
	"math"

	"golang.org/x/exp/constraints"

	"github.com/containerd/nerdctl/mod/fluent"
	"github.com/containerd/nerdctl/mod/fluent/harness"
)

// FloatAssertion provides assertions on floating point numbers, on top of the ordered ones.
type FloatAssertion[F constraints.Float] struct {
	*OrderedAssertion[F]
}

// Float extends an assertion over a floating point number.
func Float[F constraints.Float](assertion *fluent.Assertion[F]) *FloatAssertion[F] {
	return &FloatAssertion[F]{OrderedAssertion: Ordered(assertion)}
}

// ThatFloat starts an assertion chain over a floating point number.
func ThatFloat[F constraints.Float](t harness.T, subject *F) *FloatAssertion[F] {
	return Float(fluent.That(t, subject))
}

// Named sets the name of the subject.
func (a *FloatAssertion[F]) Named(name string) *FloatAssertion[F] {
	a.Assertion.Named(name)

	return a
}

// WithLocation sets the location of the assertion.
func (a *FloatAssertion[F]) WithLocation(location string) *FloatAssertion[F] {
	a.Assertion.WithLocation(location)

	return a
}

// IsCloseTo asserts that the subject is within tolerance of expected.
func (a *FloatAssertion[F]) IsCloseTo(expected, tolerance F) {
	a.T().Helper()

	if !(math.Abs(float64(*a.Subject()-expected)) <= float64(tolerance)) {
		a.fail("float close to " + fluent.Render(expected) + " (tolerance of " + fluent.Render(tolerance) + ")")
	}
}

// IsNaN asserts that the subject is not a number.
func (a *FloatAssertion[F]) IsNaN() {
	a.T().Helper()

	if !math.IsNaN(float64(*a.Subject())) {
		a.fail("<NaN>")
	}
}

// IsNotNaN asserts that the subject is a number.
func (a *FloatAssertion[F]) IsNotNaN() {
	a.T().Helper()

	if math.IsNaN(float64(*a.Subject())) {
		a.fail("a number")
	}
}
