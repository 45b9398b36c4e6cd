package neighbors

import (
	"sort"

	"github.com/YuminosukeSato/knnclassify/dataset"
	"github.com/YuminosukeSato/knnclassify/pkg/errors"
)

// VoteStrategy selects how neighbor labels are turned into a prediction.
type VoteStrategy int

const (
	// MajorityVote returns the label seen most often among the neighbors.
	// Ties go to the label seen first.
	MajorityVote VoteStrategy = iota

	// LegacyVote is the tally used by earlier versions of the classifier:
	// a label's count starts at 0 on first sight and grows only on repeat
	// sightings, entries are sorted ascending by count and the first one
	// wins. Whenever counts differ this picks the least voted label.
	LegacyVote
)

func (v VoteStrategy) String() string {
	switch v {
	case MajorityVote:
		return "majority"
	case LegacyVote:
		return "legacy"
	default:
		return "unknown"
	}
}

// ParseVoteStrategy converts "majority" or "legacy" into a VoteStrategy.
func ParseVoteStrategy(name string) (VoteStrategy, error) {
	switch name {
	case "majority":
		return MajorityVote, nil
	case "legacy":
		return LegacyVote, nil
	default:
		return 0, errors.NewValidationError("vote", "must be majority or legacy", name)
	}
}

// LabelCount is one entry of a vote tally.
type LabelCount struct {
	Label string
	Count int
}

// Tally counts neighbor labels in first-seen order. Under LegacyVote the
// first sighting of a label counts as 0.
func Tally(neighbors []dataset.Record, strategy VoteStrategy) []LabelCount {
	index := make(map[string]int)
	var tally []LabelCount

	for _, n := range neighbors {
		if i, ok := index[n.Label]; ok {
			tally[i].Count++
			continue
		}
		first := 1
		if strategy == LegacyVote {
			first = 0
		}
		index[n.Label] = len(tally)
		tally = append(tally, LabelCount{Label: n.Label, Count: first})
	}
	return tally
}

// Vote predicts a label from neighbors. An empty neighbor list is
// ErrNoNeighbors; no default label is ever substituted.
func Vote(neighbors []dataset.Record, strategy VoteStrategy) (string, error) {
	if len(neighbors) == 0 {
		return "", errors.Wrap(errors.ErrNoNeighbors, "Vote")
	}

	tally := Tally(neighbors, strategy)
	switch strategy {
	case LegacyVote:
		sort.SliceStable(tally, func(i, j int) bool { return tally[i].Count < tally[j].Count })
	case MajorityVote:
		sort.SliceStable(tally, func(i, j int) bool { return tally[i].Count > tally[j].Count })
	default:
		return "", errors.NewValidationError("vote", "unknown strategy", int(strategy))
	}
	return tally[0].Label, nil
}
