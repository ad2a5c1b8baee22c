package recommend

import "math"

// PhaseProgress counts the recommendations of one phase.
type PhaseProgress struct {
	Total int `json:"total"`
	Read  int `json:"read"`
	Owned int `json:"owned"`
}

// OverallProgress sums phase progress over the whole path.
type OverallProgress struct {
	Total      int `json:"total"`
	Read       int `json:"read"`
	Owned      int `json:"owned"`
	Percentage int `json:"percentage"`
}

// PhaseSummary identifies a phase without its recommendations.
type PhaseSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// NextToRead points at the first owned recommendation that is still unread.
type NextToRead struct {
	Recommendation Entry        `json:"recommendation"`
	Phase          PhaseSummary `json:"phase"`
	Match          MatchResult  `json:"match"`
}

// PathProgress is the progress of the collection along one path.
type PathProgress struct {
	PathID        string                   `json:"pathId"`
	PhaseProgress map[string]PhaseProgress `json:"phaseProgress"`
	Overall       OverallProgress          `json:"overall"`
	NextToRead    *NextToRead              `json:"nextToRead"`
}

// ComputePathProgress matches every recommendation of path against owned.
//
// NextToRead follows the curated order: phases as declared, recommendations
// as declared within each phase. The priority field plays no part.
func ComputePathProgress(path Path, owned []OwnedItem) PathProgress {
	progress := PathProgress{
		PathID:        path.ID,
		PhaseProgress: make(map[string]PhaseProgress, len(path.Phases)),
	}

	for _, phase := range path.Phases {
		counts := PhaseProgress{Total: len(phase.Recommendations)}

		for _, entry := range phase.Recommendations {
			match := MatchRecommendation(entry, owned)
			if !match.Owned {
				continue
			}

			counts.Owned++
			if match.IsRead {
				counts.Read++
			} else if progress.NextToRead == nil {
				progress.NextToRead = &NextToRead{
					Recommendation: entry,
					Phase:          PhaseSummary{ID: phase.ID, Name: phase.Name, Description: phase.Description},
					Match:          match,
				}
			}
		}

		progress.PhaseProgress[phase.ID] = counts
		progress.Overall.Total += counts.Total
		progress.Overall.Owned += counts.Owned
		progress.Overall.Read += counts.Read
	}

	if progress.Overall.Total > 0 {
		progress.Overall.Percentage = int(math.Round(float64(progress.Overall.Read) / float64(progress.Overall.Total) * 100))
	}

	return progress
}
