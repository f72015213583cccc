// Copyright 2025 Naren Yellavula
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

// dateutil.go
// The format placeholders are reused from: https://github.com/metakeule/fmtdate by Marc René Arns

package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

/*
	Formats:

	M    - month (1)
	MM   - month (01)
	MMM  - month (Jan)
	MMMM - month (January)
	D    - day (2)
	DD   - day (02)
	DDD  - day (Mon)
	DDDD - day (Monday)
	YY   - year (06)
	YYYY - year (2006)
	hh   - hours (15)
	mm   - minutes (04)
	ss   - seconds (05)

	AM/PM hours: 'h' followed by optional 'mm' and 'ss' followed by 'pm', e.g.

	hpm        - hours (03PM)
	h:mmpm     - hours:minutes (03:04PM)
	h:mm:sspm  - hours:minutes:seconds (03:04:05PM)
*/

func replace(in string) (out string) {
	out = in
	for _, ph := range Placeholder {
		out = strings.Replace(out, ph.find, ph.subst, -1)
	}
	return
}

// Format formats a date based on Microsoft Excel (TM) conventions
func Format(format string, date time.Time) string {
	if format == "" {
		format = DefaultDateTimeFormat
	}
	return date.Format(replace(format))
}

// Parse parses a value to a date based on Microsoft Excel (TM) formats
func Parse(format string, value string) (time.Time, error) {
	if format == "" {
		format = DefaultDateTimeFormat
	}
	return time.Parse(replace(format), value)
}

type p struct{ find, subst string }

var Placeholder = []p{
	{"hh", "15"},
	{"h", "03"},
	{"mm", "04"},
	{"ss", "05"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"pm", "PM"},
	{"YYYY", "2006"},
	{"YY", "06"},
	{"DDDD", "Monday"},
	{"DDD", "Mon"},
	{"DD", "02"},
	{"D", "2"},
}

var (
	DefaultDateFormat     = "YYYY-MM-DD"
	DefaultDateTimeFormat = "DDDD, DD MMM YYYY hh:mm:ss pm"
	// accepted by ParseKeyBound, most specific first
	keyBoundFormats = []string{"YYYY-MM-DD hh:mm:ss", DefaultDateTimeFormat, DefaultDateFormat}
)

// FormatDate formats the given date to the DefaultDateFormat
func FormatDate(date time.Time) string {
	return Format(DefaultDateFormat, date)
}

// FormatDateTime formats the given date to the DefaultDateTimeFormat
func FormatDateTime(date time.Time) string {
	return Format(DefaultDateTimeFormat, date)
}

// ParseDate parses a date in DefaultDateFormat
func ParseDate(value string) (time.Time, error) {
	return Parse(DefaultDateFormat, value)
}

// ParseDateTime parses a date in DefaultDateTimeFormat
func ParseDateTime(value string) (time.Time, error) {
	return Parse(DefaultDateTimeFormat, value)
}

// Translate translate memorable format to go library's syntax
func Translate(fmt string) string {
	return replace(fmt)
}

// ParseKeyBound turns a range bound into a key. Integers are taken as they
// are; dates are converted to Unix seconds (UTC), which is how history
// sources key their entries.
func ParseKeyBound(value string) (int, error) {
	value = strings.TrimSpace(value)
	if key, err := strconv.Atoi(value); err == nil {
		return key, nil
	}
	for _, format := range keyBoundFormats {
		if t, err := Parse(format, value); err == nil {
			return int(t.Unix()), nil
		}
	}
	return 0, fmt.Errorf("invalid key or date %q", value)
}

// FormatEpochKey shows a key as the UTC date time it encodes
func FormatEpochKey(key int) string {
	return FormatDateTime(time.Unix(int64(key), 0).UTC())
}
