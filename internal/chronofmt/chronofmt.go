// Copyright 2026 The arbor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package chronofmt converts the small subset of chrono/strftime-style
// format directives this project accepts (spec §4.1 date directive,
// §6 path interpolation's $TIME{fmt}) into Go's reference-time layout
// strings. It is shared by the pattern encoder and the file appender's
// path interpolator so the two directive grammars never drift apart.
package chronofmt

import (
	"fmt"
	"strings"
)

// ToGoLayout converts format into a time.Format layout string.
// Unrecognized `%x` sequences are left as literal text: callers that
// need strict validation reject the result at config-build time
// instead of here.
func ToGoLayout(format string) string {
	var b strings.Builder
	r := []rune(format)
	for i := 0; i < len(r); i++ {
		if r[i] != '%' || i == len(r)-1 {
			b.WriteRune(r[i])
			continue
		}
		i++
		switch r[i] {
		case 'Y':
			b.WriteString("2006")
		case 'y':
			b.WriteString("06")
		case 'm':
			b.WriteString("01")
		case 'd':
			b.WriteString("02")
		case 'H':
			b.WriteString("15")
		case 'M':
			b.WriteString("04")
		case 'S':
			b.WriteString("05")
		case 'a':
			b.WriteString("Mon")
		case 'A':
			b.WriteString("Monday")
		case 'b':
			b.WriteString("Jan")
		case 'B':
			b.WriteString("January")
		case 'z':
			b.WriteString("-0700")
		case 'Z':
			b.WriteString("MST")
		case '%':
			b.WriteByte('%')
		case '.':
			// %.3f / %.6f / %.9f fractional seconds
			if i+1 < len(r) && r[i+1] >= '1' && r[i+1] <= '9' && i+2 < len(r) && r[i+2] == 'f' {
				switch r[i+1] {
				case '3':
					b.WriteString(".000")
				case '6':
					b.WriteString(".000000")
				case '9':
					b.WriteString(".000000000")
				default:
					b.WriteString(".000")
				}
				i += 2
			} else {
				b.WriteString("%.")
			}
		default:
			b.WriteByte('%')
			b.WriteRune(r[i])
		}
	}
	return b.String()
}

// DefaultLayout is ISO-8601 with nanosecond-precision seconds and a
// UTC offset, used
// when a date directive carries no explicit format argument.
const DefaultLayout = "2006-01-02T15:04:05.000000000-07:00"

// Validate reports whether format uses only recognized %-directives.
// ToGoLayout passes unrecognized directives through as literal text so
// rendering is always total; Validate exists for the one caller that
// wants to reject an invalid format up front, at config build time
// (spec §4.7: "$TIME{} format that chrono rejects"), rather than
// silently emitting the literal "%q" into every rolled file name.
func Validate(format string) error {
	r := []rune(format)
	for i := 0; i < len(r); i++ {
		if r[i] != '%' || i == len(r)-1 {
			continue
		}
		i++
		switch r[i] {
		case 'Y', 'y', 'm', 'd', 'H', 'M', 'S', 'a', 'A', 'b', 'B', 'z', 'Z', '%':
		case '.':
			if i+1 < len(r) && r[i+1] >= '1' && r[i+1] <= '9' && i+2 < len(r) && r[i+2] == 'f' {
				i += 2
			} else {
				return fmt.Errorf("chronofmt: invalid fractional-seconds directive in %q", format)
			}
		default:
			return fmt.Errorf("chronofmt: unrecognized directive %%%c in %q", r[i], format)
		}
	}
	return nil
}
