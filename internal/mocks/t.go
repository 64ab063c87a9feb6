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

//nolint:forcetypeassert
//revive:disable:exported,package-comments
package mocks

// FIXME: type asserts...

import (
	"github.com/containerd/nerdctl/mod/fluent/harness"
	"github.com/containerd/nerdctl/mod/fluent/internal/mimicry"
)

type T interface {
	harness.T
	mimicry.Consumer
}

var _ T = &MockT{}

type (
	THelperIn  struct{}
	THelperOut struct{}

	TFailIn  struct{}
	TFailOut struct{}

	TFailNowIn  struct{}
	TFailNowOut struct{}

	TLogIn  []any
	TLogOut struct{}
)

type MockT struct {
	mimicry.Core
}

func (m *MockT) Helper() {
	if handler := m.Retrieve(); handler != nil {
		handler.(mimicry.Function[THelperIn, THelperOut])(THelperIn{})
	}
}

func (m *MockT) FailNow() {
	if handler := m.Retrieve(); handler != nil {
		handler.(mimicry.Function[TFailNowIn, TFailNowOut])(TFailNowIn{})
	}
}

func (m *MockT) Fail() {
	if handler := m.Retrieve(); handler != nil {
		handler.(mimicry.Function[TFailIn, TFailOut])(TFailIn{})
	}
}

func (m *MockT) Log(args ...any) {
	if handler := m.Retrieve(args...); handler != nil {
		handler.(mimicry.Function[TLogIn, TLogOut])(args)
	}
}

// Messages returns the first argument of every call to Log, in order.
func (m *MockT) Messages() []string {
	calls := m.Report(harness.T.Log)
	messages := make([]string, 0, len(calls))

	for _, call := range calls {
		if len(call.Args) > 0 {
			messages = append(messages, call.Args[0].(string))
		}
	}

	return messages
}

// LastMessage returns the first argument of the latest call to Log, or the empty string.
func (m *MockT) LastMessage() string {
	messages := m.Messages()
	if len(messages) == 0 {
		return ""
	}

	return messages[len(messages)-1]
}
