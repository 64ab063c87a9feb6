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

package highk

import (
	"go.uber.org/goleak"
)

// FindGoRoutines returns an error describing the go routines still running, other than the
// calling one and the ones started by the go runtime or the test framework.
//
//nolint:wrapcheck
func FindGoRoutines() error {
	return goleak.Find()
}
