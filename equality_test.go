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

//revive:disable:add-constant
package fluent_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/containerd/nerdctl/mod/fluent"
	"github.com/containerd/nerdctl/mod/fluent/harness"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	//nolint:err113 // Fine, this is a test
	sentinel := errors.New("sentinel")
	now := time.Now()

	assert.Assert(t, fluent.Equal(1, 1))
	assert.Assert(t, !fluent.Equal(1, 2))
	assert.Assert(t, fluent.Equal(map[string][]int{"a": {1}}, map[string][]int{"a": {1}}))
	assert.Assert(t, fluent.Equal(holder{value: 1}, holder{value: 1}))
	assert.Assert(t, !fluent.Equal(holder{value: 1}, holder{value: 2}))
	//nolint:err113 // Fine, this is a test
	assert.Assert(t, fluent.Equal(errors.New("boom"), errors.New("boom")))
	assert.Assert(t, !fluent.Equal(fmt.Errorf("wrapped: %w", sentinel), sentinel))
	assert.Assert(t, !fluent.Equal(sentinel, fmt.Errorf("wrapped: %w", sentinel)))
	assert.Assert(t, fluent.Equal(now, now.UTC()))
}

func TestWrappedErrorIsNotEqual(t *testing.T) {
	t.Parallel()

	//nolint:err113 // Fine, this is a test
	sentinel := errors.New("sentinel")
	wrapped := fmt.Errorf("wrapped: %w", sentinel)

	message := failureOf(func(t harness.T) {
		fluent.That(t, &wrapped).IsEqualTo(sentinel)
	})

	assert.Equal(t, message, "\n\texpected: <\"sentinel\">\n\t but was: <\"wrapped: sentinel\">\n")

	fluent.That(t, &wrapped).IsNotEqualTo(sentinel)
}

func TestRender(t *testing.T) {
	t.Parallel()

	//nolint:err113 // Fine, this is a test
	sentinel := errors.New("sentinel")

	testCases := []struct {
		value    any
		expected string
	}{
		{1, "<1>"},
		{"Hello", "<\"Hello\">"},
		{true, "<true>"},
		{0.5, "<0.5>"},
		{[]int{1, 2, 3}, "<[]int{1,2,3}>"},
		{nil, "<nil>"},
		{sentinel, "<\"sentinel\">"},
	}

	for _, testCase := range testCases {
		assert.Equal(t, fluent.Render(testCase.value), testCase.expected)
	}
}
