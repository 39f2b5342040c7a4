// Package match follows a running game through its step results and turns
// each finished match into a Record for the history store.
//
// A match starts with the first serve after launch or after a restart and
// ends at the next restart or when the player quits. Matches without a
// single goal are not recorded.
package match

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
)

// EndReason tells how a match ended.
type EndReason string

const (
	EndRestart EndReason = "restart"
	EndQuit    EndReason = "quit"
)

// Record is the outcome of one finished match.
type Record struct {
	MatchID      string
	StartedAt    time.Time
	Duration     time.Duration
	Score1       int
	Score2       int
	Rallies      int // Paddle bounces over the whole match
	LongestRally int // Most paddle bounces within a single point
	WallBounces  int
	EndReason    EndReason
}

// Winner returns the player with more points, or PlayerNone on a draw.
func (r Record) Winner() core.PlayerID {
	switch {
	case r.Score1 > r.Score2:
		return core.Player1
	case r.Score2 > r.Score1:
		return core.Player2
	default:
		return core.PlayerNone
	}
}

// Goals returns the total number of points scored.
func (r Record) Goals() int {
	return r.Score1 + r.Score2
}

// Saver persists finished matches.
type Saver interface {
	SaveMatchRecord(rec Record) error
}

// Tracker turns step events into match records.
type Tracker struct {
	saver  Saver
	logger *log.Logger
	now    func() time.Time

	current *Record
	rally   int
	saved   []Record
}

// NewTracker creates a tracker. saver may be nil, in which case finished
// matches are only logged.
func NewTracker(saver Saver, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Tracker{
		saver:  saver,
		logger: logger,
		now:    time.Now,
	}
}

// Observe consumes the events of one step.
func (t *Tracker) Observe(res pong.StepResult) {
	for _, ev := range res.Events {
		t.logger.Debug("game event", "type", ev.Type, "player", ev.Player, "tick", ev.Tick)

		switch ev.Type {
		case pong.EventServed:
			t.start()
			t.rally = 0
		case pong.EventPaddleBounce:
			if t.current != nil {
				t.current.Rallies++
				t.rally++
				t.current.LongestRally = max(t.current.LongestRally, t.rally)
			}
		case pong.EventWallBounce:
			if t.current != nil {
				t.current.WallBounces++
			}
		case pong.EventGoal:
			t.goal(ev.Player)
		case pong.EventRestarted:
			t.finish(EndRestart)
		case pong.EventQuit:
			t.finish(EndQuit)
		}
	}
}

// Close ends a match still in progress as if the player quit.
func (t *Tracker) Close() {
	t.finish(EndQuit)
}

// Current returns the match in progress, if any.
func (t *Tracker) Current() (Record, bool) {
	if t.current == nil {
		return Record{}, false
	}
	return *t.current, true
}

// Finished returns every match this tracker has recorded, oldest first.
func (t *Tracker) Finished() []Record {
	return t.saved
}

func (t *Tracker) start() {
	if t.current != nil {
		return
	}
	t.current = &Record{
		MatchID:   uuid.NewString(),
		StartedAt: t.now(),
	}
	t.logger.Info("match started", "match", t.current.MatchID)
}

func (t *Tracker) goal(scorer core.PlayerID) {
	if t.current == nil {
		return
	}
	switch scorer {
	case core.Player1:
		t.current.Score1++
	case core.Player2:
		t.current.Score2++
	}
	t.rally = 0
	t.logger.Info("goal", "scorer", scorer, "score", formatScore(t.current.Score1, t.current.Score2))
}

func (t *Tracker) finish(reason EndReason) {
	if t.current == nil {
		return
	}
	rec := *t.current
	t.current = nil
	t.rally = 0

	if rec.Goals() == 0 {
		t.logger.Debug("match discarded without goals", "match", rec.MatchID, "reason", reason)
		return
	}

	rec.EndReason = reason
	rec.Duration = t.now().Sub(rec.StartedAt)
	t.saved = append(t.saved, rec)

	t.logger.Info("match finished",
		"match", rec.MatchID,
		"score", formatScore(rec.Score1, rec.Score2),
		"winner", rec.Winner(),
		"reason", reason,
		"duration", rec.Duration.Round(time.Second),
	)

	if t.saver == nil {
		return
	}
	if err := t.saver.SaveMatchRecord(rec); err != nil {
		t.logger.Warn("cannot save match", "match", rec.MatchID, "err", err)
	}
}

func formatScore(score1, score2 int) string {
	return fmt.Sprintf("%d-%d", score1, score2)
}
