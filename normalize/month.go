/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package normalize

import (
	"strings"

	"github.com/pkg/errors"
)

// balmoSentinel is the spot-month literal, preserved verbatim through
// normalization.
const balmoSentinel = "Balmo"

var monthAbbrevs = [...]string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}
var monthTitles = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func monthIndex(abbrev3 string) int {
	for i, m := range monthAbbrevs {
		if m == abbrev3 {
			return i + 1
		}
	}
	return 0
}

// normalizeMonth accepts "Aug 25", "aug25", "August-25", "Aug-25",
// "Aug25", and the Balmo sentinel, emitting the canonical form for the
// requested dialect.
func normalizeMonth(raw string, format MonthFormat) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(trimmed, balmoSentinel) {
		return balmoSentinel, nil
	}

	cleaned := strings.ToLower(strings.NewReplacer(" ", "", "-", "").Replace(trimmed))

	i := 0
	for i < len(cleaned) && (cleaned[i] < '0' || cleaned[i] > '9') {
		i++
	}
	monthPart, yearPart := cleaned[:i], cleaned[i:]

	if len(monthPart) < 3 {
		return "", errors.Errorf("malformed contract month %q", raw)
	}
	idx := monthIndex(monthPart[:3])
	if idx == 0 {
		return "", errors.Errorf("unrecognized month name in %q", raw)
	}
	if len(yearPart) != 2 {
		return "", errors.Errorf("malformed contract month %q: expected 2-digit year", raw)
	}
	for _, c := range yearPart {
		if c < '0' || c > '9' {
			return "", errors.Errorf("malformed contract month %q: non-numeric year", raw)
		}
	}

	switch format {
	case MonthFormatCompact:
		return monthTitles[idx-1] + yearPart, nil
	default:
		return monthTitles[idx-1] + "-" + yearPart, nil
	}
}

// MonthKey parses a canonical contract month (either dialect, or the
// Balmo sentinel) back into a (year, month-index) tuple for ordering.
// Balmo sorts before everything else within its own group since it has
// no calendar position; callers that need finer Balmo semantics should
// special-case it before calling MonthKey.
func MonthKey(canonical string) (year, monthIdx int, ok bool) {
	if canonical == balmoSentinel {
		return -1, 0, true
	}

	var abbrev, yearPart string
	if strings.Contains(canonical, "-") {
		parts := strings.SplitN(canonical, "-", 2)
		if len(parts) != 2 {
			return 0, 0, false
		}
		abbrev, yearPart = parts[0], parts[1]
	} else {
		if len(canonical) < 5 {
			return 0, 0, false
		}
		abbrev, yearPart = canonical[:len(canonical)-2], canonical[len(canonical)-2:]
	}

	idx := monthIndex(strings.ToLower(abbrev))
	if idx == 0 || len(yearPart) != 2 {
		return 0, 0, false
	}
	y := 0
	for _, c := range yearPart {
		if c < '0' || c > '9' {
			return 0, 0, false
		}
		y = y*10 + int(c-'0')
	}
	return 2000 + y, idx, true
}

// MonthBefore reports whether a precedes b chronologically.
func MonthBefore(a, b string) bool {
	ay, am, aok := MonthKey(a)
	by, bm, bok := MonthKey(b)
	if !aok || !bok {
		return false
	}
	if ay != by {
		return ay < by
	}
	return am < bm
}
