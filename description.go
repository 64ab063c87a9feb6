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

package fluent

import (
	"github.com/containerd/nerdctl/mod/fluent/harness"
)

var _ harness.T = &Description{}

// Description holds a human-readable description (and optionally a location), waiting to be
// attached to a subject.
// It satisfies harness.T, so that it can be handed to That, or to any type-specific constructor
// accepting a harness.T.
type Description struct {
	harness.T

	text     string
	location string
}

// Asserting starts describing an assertion.
//
//	fluent.That(fluent.Asserting(t, "the config is loaded"), &loaded).IsEqualTo(true)
func Asserting(t harness.T, text string) *Description {
	return &Description{
		T:    t,
		text: text,
	}
}

// WithLocation sets the location of the future assertion.
func (d *Description) WithLocation(location string) *Description {
	d.location = location

	return d
}

// Attach produces an assertion over subject, carrying the description text and location.
// The Description is not meant to be used again afterwards.
func Attach[S any](description *Description, subject *S) *Assertion[S] {
	if subject == nil {
		panic(ErrNilSubject)
	}

	return &Assertion[S]{
		t:           description.T,
		subject:     subject,
		location:    description.location,
		description: description.text,
	}
}
