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
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/containerd/nerdctl/mod/fluent/expect"
	"github.com/containerd/nerdctl/mod/fluent/internal/mocks"
)

func TestResultPass(t *testing.T) {
	t.Parallel()

	number, err := strconv.Atoi("42")
	parsed := expect.Returning(number, err)
	expect.ThatResult(t, &parsed).IsOk().IsEqualTo(42)
	expect.ThatResult(t, &parsed).ContainsValue(42)

	failed := expect.Returning(0, fmt.Errorf("reading config: %w", fs.ErrNotExist))
	expect.ThatResult(t, &failed).IsError().Matches(func(err *error) bool { return errors.Is(*err, fs.ErrNotExist) })
	expect.ThatResult(t, &failed).IsError().IsNotEqualTo(fs.ErrNotExist)
	expect.ThatResult(t, &failed).ContainsError(fs.ErrNotExist)
}

func TestResultFailures(t *testing.T) {
	t.Parallel()

	mockT := &mocks.MockT{}

	ok := expect.Returning("value", nil)
	//nolint:err113 // Fine, this is a test
	failed := expect.Returning("", errors.New("boom"))

	value := expect.ThatResult(mockT, &failed).IsOk()
	assert.Equal(t, mockT.LastMessage(), "\n\texpected: result[ok]\n\t but was: result[error]<\"boom\">\n")
	assert.Equal(t, *value.Subject(), "")

	carried := expect.ThatResult(mockT, &ok).IsError()
	assert.Equal(t, mockT.LastMessage(), "\n\texpected: result[error]\n\t but was: result[ok]<\"value\">\n")
	assert.NilError(t, *carried.Subject())

	expect.ThatResult(mockT, &ok).ContainsValue("other")
	assert.Equal(t, mockT.LastMessage(),
		"\n\texpected: result[ok] containing <\"other\">\n\t but was: result[ok]<\"value\">\n")

	expect.ThatResult(mockT, &failed).ContainsValue("")
	assert.Equal(t, mockT.LastMessage(),
		"\n\texpected: result[ok] containing <\"\">\n\t but was: result[error]<\"boom\">\n")

	expect.ThatResult(mockT, &failed).ContainsError(fs.ErrNotExist)
	assert.Equal(t, mockT.LastMessage(),
		"\n\texpected: result[error] matching <\"file does not exist\">\n\t but was: result[error]<\"boom\">\n")

	expect.ThatResult(mockT, &ok).ContainsError(fs.ErrNotExist)
	assert.Equal(t, mockT.LastMessage(),
		"\n\texpected: result[error] matching <\"file does not exist\">\n\t but was: result[ok]<\"value\">\n")

	assert.Equal(t, failures(mockT), 6)
}
