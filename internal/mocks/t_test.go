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

package mocks_test

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/containerd/nerdctl/mod/fluent/harness"
	"github.com/containerd/nerdctl/mod/fluent/internal/mimicry"
	"github.com/containerd/nerdctl/mod/fluent/internal/mocks"
)

func TestMockTRecordsCalls(t *testing.T) {
	t.Parallel()

	mockT := &mocks.MockT{}

	mockT.Helper()
	mockT.Log("one")
	mockT.Log("two", 2)
	mockT.FailNow()

	assert.Equal(t, len(mockT.Report(harness.T.Helper)), 1)
	assert.Equal(t, len(mockT.Report(harness.T.FailNow)), 1)
	assert.Equal(t, len(mockT.Report(harness.T.Fail)), 0)
	assert.DeepEqual(t, mockT.Messages(), []string{"one", "two"})
	assert.Equal(t, mockT.LastMessage(), "two")

	call := mockT.Report(harness.T.Log)[1]
	assert.DeepEqual(t, call.Args, []any{"two", 2})
	assert.Assert(t, len(call.Frames) > 0)
	assert.Assert(t, strings.Contains(call.String(), "TestMockTRecordsCalls"), call.String())

	mockT.Reset()

	assert.Equal(t, len(mockT.Report(harness.T.Log)), 0)
	assert.Equal(t, mockT.LastMessage(), "")
}

func TestMockTHandler(t *testing.T) {
	t.Parallel()

	mockT := &mocks.MockT{}
	stopped := 0

	mockT.Register(harness.T.FailNow, mimicry.Function[mocks.TFailNowIn, mocks.TFailNowOut](
		func(mocks.TFailNowIn) mocks.TFailNowOut {
			stopped++

			return mocks.TFailNowOut{}
		},
	))

	mockT.FailNow()
	mockT.Fail()
	mockT.FailNow()

	assert.Equal(t, stopped, 2)
}
