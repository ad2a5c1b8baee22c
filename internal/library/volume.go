// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package library

import (
	"strconv"
	"strings"
)

// MaxVolumeOrdinal is the largest volume ordinal a book may carry. Gap
// detection lists every missing ordinal between the lowest and highest volume
// of a series, so an unbounded ordinal (an ISBN typed into the volume field)
// would make that list arbitrarily large.
const MaxVolumeOrdinal = 100000

// ParseVolume extracts the first run of decimal digits in label as a base-10
// ordinal ("Vol. 07" → 7, "#12" → 12, "1-3" → 1). It reports false when the
// label holds no digits or the number does not fit in an int.
func ParseVolume(label string) (int, bool) {
	start := -1
	for i := 0; i < len(label); i++ {
		isDigit := label[i] >= '0' && label[i] <= '9'
		if isDigit && start < 0 {
			start = i
		}
		if !isDigit && start >= 0 {
			return atoi(label[start:i])
		}
	}
	if start < 0 {
		return 0, false
	}
	return atoi(label[start:])
}

// volumeTooLarge reports whether label parses to an ordinal above [MaxVolumeOrdinal].
// Labels that do not fit in an int count as too large.
func volumeTooLarge(label string) bool {
	if !strings.ContainsAny(label, "0123456789") {
		return false
	}
	ordinal, ok := ParseVolume(label)
	return !ok || ordinal > MaxVolumeOrdinal
}

func atoi(digits string) (int, bool) {
	number, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return number, true
}
