package recommend

import (
	"strings"

	"golang.org/x/text/cases"
)

// MatchResult tells whether a recommendation is owned and, if so, by which item.
type MatchResult struct {
	Owned  bool   `json:"owned"`
	ItemID string `json:"itemId,omitempty"`
	IsRead bool   `json:"isRead"`
}

// MatchRecommendation looks for an owned item satisfying entry. Rules are tried
// in order and the first rule with a hit wins; within a rule, the first item in
// owned order wins. All comparisons are case-insensitive.
//
//  1. Titles are equal.
//  2. Series are equal. Items whose volume is contained in the entry's range
//     (or the reverse) are preferred, but any item of the series still matches.
//  3. The item title contains the entry series, or the item series contains
//     the entry title.
//
// Substring rules trade precision for recall and can produce false positives.
func MatchRecommendation(entry Entry, owned []OwnedItem) MatchResult {
	title := fold(entry.Title)
	series := fold(entry.Series)
	volumes := fold(entry.VolumeRange())

	if title != "" {
		for _, item := range owned {
			if fold(item.Title) == title {
				return matched(item)
			}
		}
	}

	if series != "" {
		var coarse *OwnedItem
		for i, item := range owned {
			if fold(item.SeriesName()) != series {
				continue
			}

			volume := ""
			if item.Volume != nil {
				volume = fold(*item.Volume)
			}
			if volumes != "" && volume != "" &&
				(strings.Contains(volumes, volume) || strings.Contains(volume, volumes)) {
				return matched(item)
			}
			if coarse == nil {
				coarse = &owned[i]
			}
		}
		if coarse != nil {
			return matched(*coarse)
		}
	}

	for _, item := range owned {
		if series != "" && strings.Contains(fold(item.Title), series) {
			return matched(item)
		}
		itemSeries := fold(item.SeriesName())
		if title != "" && itemSeries != "" && strings.Contains(itemSeries, title) {
			return matched(item)
		}
	}

	return MatchResult{}
}

func matched(item OwnedItem) MatchResult {
	return MatchResult{Owned: true, ItemID: item.ID, IsRead: item.IsRead}
}

// fold trims and case-folds value. A new Caser is built per call because
// Casers are stateful.
func fold(value string) string {
	return cases.Fold().String(strings.TrimSpace(value))
}
