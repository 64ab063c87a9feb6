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

package harness

import (
	"github.com/rs/zerolog"

	"github.com/containerd/nerdctl/mod/fluent/internal/logger"
)

// Wrapper is implemented by a T decorating another one.
type Wrapper interface {
	Unwrap() T
}

type failLater struct {
	T
}

// Unwrap returns the decorated T.
func (f *failLater) Unwrap() T {
	return f.T
}

// FailNow is downgraded to Fail.
func (f *failLater) FailNow() {
	f.Helper()
	f.Fail()
}

// WithFailLater wraps a T so that failing assertions mark the test as failed but let it carry on.
// This is safe to use in go routines, where FailNow must not be called.
// Note that an assertion unwrapping a value (eg: a map key) that failed this way will hand back an
// assertion over a zero value, which will likely fail further down the chain as well.
// Wrapping a description (fluent.Asserting) keeps it: assertions built over the result still carry
// its text and location.
func WithFailLater(t T) T {
	return &failLater{T: t}
}

// SetLogger installs the logger used to trace assertion failures (at debug level).
// By default, nothing is logged.
func SetLogger(log zerolog.Logger) {
	logger.Set(log)
}
