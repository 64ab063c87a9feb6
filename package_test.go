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

package fluent_test

import (
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/containerd/nerdctl/mod/fluent/harness"
	"github.com/containerd/nerdctl/mod/fluent/internal/highk"
)

func TestMain(m *testing.M) {
	// Prep exit code
	exitCode := 0
	defer func() { os.Exit(exitCode) }()

	// Configure logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch os.Getenv("LOG_LEVEL") {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	harness.SetLogger(log.Logger)

	var leakedFiles func() ([]string, error)

	if os.Getenv("EXPERIMENTAL_HIGHK_FD") != "" {
		var err error
		if leakedFiles, err = highk.TrackOpenFiles(afero.NewOsFs()); err != nil {
			log.Warn().Err(err).Msg("Cannot snapshot open files, skipping file descriptors leak check")
		}
	}

	exitCode = m.Run()

	if exitCode != 0 {
		return
	}

	if leakedFiles != nil {
		diff, err := leakedFiles()
		if err != nil {
			log.Warn().Err(err).Msg("Cannot snapshot open files, skipping file descriptors leak check")
		} else if len(diff) != 0 {
			log.Error().Strs("files", diff).Msg("Leaking file descriptors")

			exitCode = 1
		}
	}

	if err := highk.FindGoRoutines(); err != nil {
		log.Error().Err(err).Msg("Leaking go routines")

		exitCode = 1
	}
}

// failureOf runs the assertion against a panicking harness, and returns the failure message, or
// the empty string if the assertion passed.
func failureOf(assertion func(t harness.T)) (message string) {
	defer func() {
		if rec := recover(); rec != nil {
			var failure *harness.AssertionError

			err, ok := rec.(error)
			if !ok || !errors.As(err, &failure) {
				panic(rec)
			}

			message = failure.Message
		}
	}()

	assertion(harness.Panicking())

	return ""
}
