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
package expect_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/containerd/nerdctl/mod/fluent/expect"
	"github.com/containerd/nerdctl/mod/fluent/internal/mocks"
)

func TestMapPass(t *testing.T) {
	t.Parallel()

	ages := map[string]int{"alice": 30, "bob": 25}
	empty := map[string]int{}

	expect.ThatMap(t, &ages).HasLength(2)
	expect.ThatMap(t, &ages).ContainsKey("alice").IsEqualTo(30)
	expect.ThatMap(t, &ages).DoesNotContainKey("carol")
	expect.ThatMap(t, &ages).ContainsEntry("bob", 25)
	expect.ThatMap(t, &ages).DoesNotContainEntry("bob", 26)
	expect.ThatMap(t, &ages).DoesNotContainEntry("carol", 25)
	expect.ThatMap(t, &empty).IsEmpty()

	emails := map[string]string{"admin": "root@example.com"}
	expect.String(expect.ThatMap(t, &emails).Named("emails").ContainsKey("admin")).EndsWith("@example.com")
}

func TestMapFailures(t *testing.T) {
	t.Parallel()

	mockT := &mocks.MockT{}
	ages := map[string]int{"bob": 25, "alice": 30}

	testCases := []struct {
		check    func()
		expected string
	}{
		{
			func() { expect.ThatMap(mockT, &ages).HasLength(3) },
			"\n\texpected: map to have length <3>\n\t but was: <2>\n",
		},
		{
			func() { expect.ThatMap(mockT, &ages).IsEmpty() },
			"\n\texpected: an empty map\n\t but was: a map with length <2>\n",
		},
		{
			func() { expect.ThatMap(mockT, &ages).ContainsKey("carol") },
			"\n\texpected: map to contain key <\"carol\">\n\t but was: <[]string{\"alice\",\"bob\"}>\n",
		},
		{
			func() { expect.ThatMap(mockT, &ages).DoesNotContainKey("bob") },
			"\n\texpected: map to not contain key <\"bob\">\n\t but was: present in map\n",
		},
		{
			func() { expect.ThatMap(mockT, &ages).ContainsEntry("bob", 26) },
			"\n\texpected: map containing key <\"bob\"> with value <26>\n\t but was: key <\"bob\"> with value <25> instead\n",
		},
		{
			func() { expect.ThatMap(mockT, &ages).ContainsEntry("carol", 26) },
			"\n\texpected: map containing key <\"carol\"> with value <26>\n" +
				"\t but was: no matching key, keys are <[]string{\"alice\",\"bob\"}>\n",
		},
		{
			func() { expect.ThatMap(mockT, &ages).DoesNotContainEntry("alice", 30) },
			"\n\texpected: map to not contain key <\"alice\"> with value <30>\n\t but was: present in map\n",
		},
	}

	for index, testCase := range testCases {
		testCase.check()

		assert.Equal(t, failures(mockT), index+1)
		assert.Equal(t, mockT.LastMessage(), testCase.expected)
	}
}

func TestMapContainsKeyAfterFailure(t *testing.T) {
	t.Parallel()

	mockT := &mocks.MockT{}
	ages := map[string]int{}

	value := expect.ThatMap(mockT, &ages).WithLocation("ages.go:7").ContainsKey("nobody")

	assert.Equal(t, *value.Subject(), 0)
	assert.Equal(t, value.Location(), "ages.go:7")
	assert.Equal(t, failures(mockT), 1)
}
