package game

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// RoundRecord holds the outcome of one finished round.
type RoundRecord struct {
	Score     int
	Length    int
	StartTime time.Time
	EndTime   time.Time
}

func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// SessionStats accumulates round outcomes for the lifetime of the process.
// Nothing is written to disk; the summary is only rendered and logged.
type SessionStats struct {
	UUID      string
	StartTime time.Time
	Rounds    []RoundRecord
}

func NewSessionStats() *SessionStats {
	return &SessionStats{
		UUID:      uuid.New().String(),
		StartTime: time.Now(),
		Rounds:    make([]RoundRecord, 0),
	}
}

func (s *SessionStats) AddRound(r RoundRecord) {
	s.Rounds = append(s.Rounds, r)
}

func (s *SessionStats) GamesPlayed() int {
	return len(s.Rounds)
}

func (s *SessionStats) BestScore() int {
	best := 0
	for _, r := range s.Rounds {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

func (s *SessionStats) AverageScore() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	total := 0
	for _, r := range s.Rounds {
		total += r.Score
	}
	return float64(total) / float64(len(s.Rounds))
}

// AverageDuration returns the mean round duration in seconds.
func (s *SessionStats) AverageDuration() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	var total float64
	for _, r := range s.Rounds {
		total += r.Duration().Seconds()
	}
	return total / float64(len(s.Rounds))
}

// Fields returns the session summary as structured log fields.
func (s *SessionStats) Fields() log.Fields {
	return log.Fields{
		"session":     s.UUID,
		"games":       s.GamesPlayed(),
		"bestScore":   s.BestScore(),
		"avgScore":    s.AverageScore(),
		"avgDuration": s.AverageDuration(),
	}
}
