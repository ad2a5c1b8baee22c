// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package insights

import (
	"slices"
	"strconv"

	"github.com/taibuivan/shelfmark/internal/library"
)

// ParseVolume extracts the first run of decimal digits in label as a base-10
// ordinal. See [library.ParseVolume].
func ParseVolume(label string) (int, bool) {
	return library.ParseVolume(label)
}

// ExtractVolumeNumber is the nullable form of [ParseVolume]: nil input, empty
// labels and labels without digits all yield nil.
func ExtractVolumeNumber(label *string) *int {
	if label == nil || *label == "" {
		return nil
	}
	number, ok := ParseVolume(*label)
	if !ok {
		return nil
	}
	return &number
}

// FindMissingVolumes returns, in ascending order, every ordinal between the
// smallest and largest of volumes that is not itself in volumes. Duplicates
// and input order are irrelevant.
//
// Only the observed range is considered: volumes past the highest owned one
// are never reported because the true length of a series is unknown here.
func FindMissingVolumes(volumes []int) []string {
	missing := make([]string, 0)
	if len(volumes) == 0 {
		return missing
	}

	sorted := slices.Clone(volumes)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	next := sorted[0]
	for _, volume := range sorted {
		for ; next < volume; next++ {
			missing = append(missing, strconv.Itoa(next))
		}
		next = volume + 1
	}
	return missing
}
