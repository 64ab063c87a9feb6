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

// Package expect extends fluent assertions with checks specific to the type of the subject.
//
// Every constructor comes in two flavors: one taking an existing assertion (eg: String), to carry
// on a chain, and a shortcut starting a new one (eg: ThatString).
//
//	expect.ThatString(t, &greeting).Named("greeting").StartsWith("Hello")
//	expect.String(expect.ThatMap(t, &users).ContainsKey("admin")).EndsWith("@example.com")
//
// Checks that unwrap a value (map keys, slice elements, non-nil pointers, results) return a
// *fluent.Assertion over that value.
package expect
