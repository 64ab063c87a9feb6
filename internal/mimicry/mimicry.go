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
	"reflect"
	"runtime"
	"strings"
	"sync"
	"time"
)

const callStackMaxDepth = 5

var _ Mocked = &Core{}

// Mocked is the interface representing a fully-mocking struct (both for Designer and Consumer).
type Mocked interface {
	Consumer
	Designer
}

// Function is a generics for any mockable function.
type Function[IN any, OUT any] = func(IN) OUT

// Consumer is the mock interface exposed to mock users.
// It defines a handful of methods to register a custom handler, get and reset calls reports.
type Consumer interface {
	Register(fun, handler any)
	Report(fun any) []*Call
	Reset()
}

// Designer is the mock interface that mock creators can use to write function boilerplate.
type Designer interface {
	Retrieve(args ...any) any
}

// Core is a concrete implementation that any mock struct can embed to satisfy Mocked.
// It is safe to use concurrently.
type Core struct {
	mu              sync.Mutex
	mockedFunctions map[string]any
	callsList       map[string][]*Call
}

// Reset does reset the call records for all functions. Registered handlers are kept.
func (mi *Core) Reset() {
	mi.mu.Lock()
	defer mi.mu.Unlock()

	mi.callsList = make(map[string][]*Call)
}

// Report returns all Calls made to the referenced function, in order.
func (mi *Core) Report(fun any) []*Call {
	mi.mu.Lock()
	defer mi.mu.Unlock()

	return append([]*Call{}, mi.callsList[getFunID(fun)]...)
}

// Retrieve records a call to the mocked function currently executing, and returns the custom
// handler registered for that function if there is one.
func (mi *Core) Retrieve(args ...any) any {
	pc := make([]uintptr, callStackMaxDepth)
	//nolint:mnd // Skip runtime.Callers and Retrieve itself.
	n := runtime.Callers(2, pc)
	callersFrames := runtime.CallersFrames(pc[:n])
	// This is the frame of the mock method calling Retrieve: keep its short name only.
	frame, _ := callersFrames.Next()
	fid := shortName(frame.Function)

	frames := []*Frame{}

	for range callStackMaxDepth {
		var more bool

		frame, more = callersFrames.Next()
		if frame.Function == "" || isStd(frame.Function) {
			break
		}

		frames = append(frames, &Frame{
			File:     frame.File,
			Function: frame.Function,
			Line:     frame.Line,
		})

		if !more {
			break
		}
	}

	mi.mu.Lock()
	defer mi.mu.Unlock()

	if mi.callsList == nil {
		mi.callsList = make(map[string][]*Call)
	}

	mi.callsList[fid] = append(mi.callsList[fid], &Call{
		Time:   time.Now(),
		Args:   args,
		Frames: frames,
	})

	return mi.mockedFunctions[fid]
}

// Register does declare an explicit handler for that function.
func (mi *Core) Register(fun, handler any) {
	mi.mu.Lock()
	defer mi.mu.Unlock()

	if mi.mockedFunctions == nil {
		mi.mockedFunctions = make(map[string]any)
	}

	mi.mockedFunctions[getFunID(fun)] = handler
}

func getFunID(fun any) string {
	// Only the method name is kept, so that harness.T.FailNow and (*MockT).FailNow are the same.
	return shortName(runtime.FuncForPC(reflect.ValueOf(fun).Pointer()).Name())
}

func shortName(function string) string {
	seg := strings.Split(strings.TrimSuffix(function, "-fm"), ".")

	return seg[len(seg)-1]
}
