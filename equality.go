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
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/containerd/nerdctl/mod/fluent/internal/formatter"
)

//nolint:gochecknoglobals
var equalOptions = []cmp.Option{
	// Unexported fields take part in the comparison: two values are equal if they hold the same data.
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// Equal reports whether two values are equal: deeply, including unexported fields.
// Types with an Equal method (eg: time.Time) are compared with it. Errors are values like any other:
// a wrapped error is not equal to the error it wraps (see expect.ResultAssertion.ContainsError for
// errors.Is matching).
func Equal(actual, expected any) bool {
	return cmp.Equal(actual, expected, equalOptions...)
}

// Render formats a value for a failure message, between angle brackets: <1>, <"Hello">, ...
func Render(value any) string {
	return formatter.Value(value)
}
