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

// Package harness defines what fluent assertions need from a test runner, and provides a couple of
// alternative implementations of it.
package harness

// T is what fluent needs from a testing implementation (*testing.T obviously satisfies it).
//
// Expert note: testing.TB cannot be used instead, as the go authors made it impossible to implement
// (by declaring a private method on it).
// Interfaces are defined by the consumer here, which keeps the surface to mock down to what is
// actually called: a failing assertion logs its message, then calls FailNow.
type T interface {
	Helper()
	FailNow()
	Fail()
	Log(args ...any)
}
