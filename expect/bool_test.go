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

package expect_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/containerd/nerdctl/mod/fluent/expect"
	"github.com/containerd/nerdctl/mod/fluent/internal/mocks"
)

func TestBool(t *testing.T) {
	t.Parallel()

	yes, no := true, false

	expect.ThatBool(t, &yes).IsTrue()
	expect.ThatBool(t, &no).IsFalse()

	mockT := &mocks.MockT{}

	expect.ThatBool(mockT, &no).Named("flag").IsTrue()
	assert.Equal(t, mockT.LastMessage(), "\n\tfor subject [flag]\n\texpected: bool to be <true>\n\t but was: <false>\n")

	expect.ThatBool(mockT, &yes).IsFalse()
	assert.Equal(t, mockT.LastMessage(), "\n\texpected: bool to be <false>\n\t but was: <true>\n")

	assert.Equal(t, failures(mockT), 2)
}
