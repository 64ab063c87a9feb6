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

// Package logger holds the (debugging only) logger of the library.
// The failure message handed to the test runner is always self-sufficient: nothing here is ever
// required to understand a failure.
package logger

import (
	"sync"

	"github.com/rs/zerolog"
)

//nolint:gochecknoglobals
var (
	mu      sync.RWMutex
	current = zerolog.Nop()
)

// Set replaces the library logger.
func Set(log zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()

	current = log.With().Str("library", "fluent").Logger()
}

// Get returns the library logger.
func Get() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	log := current

	return &log
}

// Failure traces a failed assertion. Empty fields are omitted.
func Failure(description, subject, location, message string) {
	event := Get().Debug()

	if description != "" {
		event = event.Str("description", description)
	}

	if subject != "" {
		event = event.Str("subject", subject)
	}

	if location != "" {
		event = event.Str("location", location)
	}

	event.Msg(message)
}
