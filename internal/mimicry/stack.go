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

package mimicry

import (
	"fmt"
	"strings"
	"time"
)

// Call is used to store information about a call to a function of the mocked struct: arguments,
// time, and frames.
type Call struct {
	Time   time.Time
	Args   []any
	Frames []*Frame
}

// String returns a short, multi-line summary of the call, innermost frame first.
func (c *Call) String() string {
	output := []string{fmt.Sprintf("%s %v", c.Time.Format(time.RFC3339), c.Args)}
	for _, frame := range c.Frames {
		output = append(output, "\t"+frame.String())
	}

	return strings.Join(output, "\n")
}

// A Frame stores information about a call code-path: file, line number and function name.
type Frame struct {
	File     string
	Function string
	Line     int
}

// String returns "file:line function".
func (f *Frame) String() string {
	return fmt.Sprintf("%s:%d %s", f.File, f.Line, f.Function)
}

func isStd(in string) bool {
	return !strings.Contains(in, "/")
}
