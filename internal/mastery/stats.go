package mastery

import (
	"strings"

	"github.com/metamind-labs/metamind/internal/store"
)

// StatsFromInteractions derives session counters from an ordered
// interaction log. Pure function: same turns in, same counters out.
//
// Steps-to-solve is the turn index of the first SOLVED tutor turn minus
// the turn index of the first student turn, nil when the session never
// solved.
func StatsFromInteractions(sess *store.Session, turns []*store.Interaction) *store.SessionStats {
	stats := &store.SessionStats{
		SessionID: sess.SessionID,
		UserID:    sess.UserID,
		Topic:     sess.Topic,
		Turns:     len(turns),
	}

	firstStudent := -1
	firstSolved := -1

	for _, it := range turns {
		if it.Speaker == store.SpeakerStudent {
			stats.Attempts++
			if firstStudent < 0 {
				firstStudent = it.TurnIndex
			}
		}
		if hintIsHigh(it.HintPolicy) {
			stats.HintCount++
		}
		if it.Status == store.StatusSolved {
			stats.SolvedCount++
			if firstSolved < 0 {
				firstSolved = it.TurnIndex
			}
		}
	}

	if firstSolved >= 0 {
		if firstStudent < 0 {
			firstStudent = 0
		}
		steps := float64(firstSolved - firstStudent)
		if steps < 1 {
			steps = 1
		}
		stats.StepsToSolve = &steps
	}

	return stats
}

func hintIsHigh(policy string) bool {
	return strings.EqualFold(policy, "high")
}
