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

package harness

import (
	"fmt"
	"strings"
	"sync"
)

var _ T = &Panicker{}

// AssertionError is the panic payload raised by a Panicker when an assertion fails.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return e.Message
}

// Panicker is a T raising failures as panics instead of reporting them to a test runner.
// This is useful outside of `go test` (examples, fuzz corpus tooling, custom runners), or to recover
// and inspect a failure message.
// Whatever was logged since the last FailNow becomes the message of the AssertionError.
type Panicker struct {
	mu     sync.Mutex
	logged []string
	failed bool
}

// Panicking returns a new Panicker.
func Panicking() *Panicker {
	return &Panicker{}
}

// Helper is a no-op.
func (p *Panicker) Helper() {}

// Log records the message, formatted the same way testing.T.Log does.
func (p *Panicker) Log(args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.logged = append(p.logged, strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

// Fail marks the Panicker as failed, without raising.
func (p *Panicker) Fail() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.failed = true
}

// FailNow raises an *AssertionError carrying everything logged so far.
func (p *Panicker) FailNow() {
	p.mu.Lock()
	message := strings.Join(p.logged, "\n")
	p.logged = nil
	p.failed = true
	p.mu.Unlock()

	panic(&AssertionError{Message: message})
}

// Failed reports whether Fail or FailNow has been called.
func (p *Panicker) Failed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.failed
}
