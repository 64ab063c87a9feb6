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

// Package formatter renders failure messages and the values they carry.
package formatter

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/sanity-io/litter"
	"golang.org/x/text/width"
)

// MaxValueWidth is the display width beyond which a rendered value gets abbreviated.
const MaxValueWidth = 1000

//nolint:gochecknoglobals
var dumper = litter.Options{
	Compact:           true,
	StripPackageNames: true,
	FormatTime:        true,
	Separator:         " ",
}

// Failure renders the message of a failed assertion carrying an expected / actual pair.
// Empty description, subjectName and location are left out entirely.
func Failure(description, subjectName, expected, actual, location string) string {
	return Message(description, subjectName, "expected: "+expected+"\n\t but was: "+actual, location)
}

// Message renders the message of a failed assertion around a free-form text.
func Message(description, subjectName, message, location string) string {
	var builder strings.Builder

	if description != "" {
		builder.WriteString("\n\t" + description + ":")
	}

	if subjectName != "" {
		builder.WriteString("\n\tfor subject [" + subjectName + "]")
	}

	builder.WriteString("\n\t" + message)

	if location != "" {
		builder.WriteString("\n\n\tat location: " + location)
	}

	builder.WriteString("\n")

	return builder.String()
}

// Value renders any value between angle brackets, eg: <1>, <"Hello">, <[]int{1,2}>.
func Value(value any) string {
	return "<" + Debug(value) + ">"
}

// Debug renders any value in a compact, go-like syntax.
// Strings are quoted, errors are shown as their quoted message.
func Debug(value any) string {
	if value == nil {
		return "nil"
	}

	if err, ok := value.(error); ok {
		ref := reflect.ValueOf(err)
		if ref.Kind() == reflect.Pointer && ref.IsNil() {
			return "nil"
		}

		return Abbreviate(strconv.Quote(err.Error()), MaxValueWidth)
	}

	return Abbreviate(dumper.Sdump(value), MaxValueWidth)
}

// Abbreviate cuts a string that is wider than maxWidth, accounting for characters display width,
// and tells how much was left out.
func Abbreviate(s string, maxWidth int) string {
	size := 0
	cut := -1

	for index, r := range s {
		size += runeWidth(r)

		if cut == -1 && size > maxWidth {
			cut = index
		}
	}

	if cut == -1 {
		return s
	}

	kept := 0
	for _, r := range s[:cut] {
		kept += runeWidth(r)
	}

	return s[:cut] + fmt.Sprintf("... (%d more columns)", size-kept)
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	case width.EastAsianAmbiguous, width.Neutral, width.EastAsianHalfwidth, width.EastAsianNarrow:
		return 1
	default:
		return 1
	}
}
