package core

import (
	"errors"
	"fmt"

	"ArcadePong/logger"

	"github.com/google/uuid"
)

// Snapshot is a read-only copy of the match handed to the renderer every tick.
type Snapshot struct {
	MatchID     string
	Frame       uint64
	LeftPaddle  Paddle
	RightPaddle Paddle
	Ball        Ball
	Score       Score
	Phase       Phase
}

// Simulation owns both paddles, the ball and the phase state of one court.
//
// It is not safe for concurrent use. The driver must call Tick, StartMatch and
// TogglePause strictly one after another.
type Simulation struct {
	cfg     Config
	rng     RandomSource
	control PhaseController

	matchId string
	frame   uint64
	left    Paddle
	right   Paddle
	ball    Ball
}

func NewSimulation(cfg Config, rng RandomSource) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	if rng == nil {
		return nil, errors.New("new simulation: nil random source")
	}

	s := &Simulation{cfg: cfg, rng: rng}
	s.resetCourt()
	s.ball = Ball{
		Rectangle: Rectangle{X: cfg.CourtWidth / 2, Y: cfg.CourtHeight / 2, Width: cfg.BallSize, Height: cfg.BallSize},
		VX:        cfg.InitialBallSpeed,
		VY:        cfg.InitialBallSpeed,
	}
	return s, nil
}

func (s *Simulation) Config() Config {
	return s.cfg
}

// StartMatch resets scores and entities and serves toward a random side. Valid from any phase.
func (s *Simulation) StartMatch() {
	serve := Right
	if s.rng.Float64() > 0.5 {
		serve = Left
	}

	s.matchId = uuid.NewString()
	s.frame = 0
	s.resetCourt()
	s.ball = SpawnBall(s.cfg, serve, s.rng)
	s.control.Start()

	logger.Log.Info(fmt.Sprintf(logger.MatchStartMsg, s.matchId, serve))
	logger.Log.Debug(fmt.Sprintf(logger.EventPayloadMsg, generateMatchStartPayload(s.matchId, serve)))
}

// TogglePause pauses or resumes a running match. It has no effect in Idle or Finished.
func (s *Simulation) TogglePause() {
	if !s.control.TogglePause() {
		logger.Log.Debug(fmt.Sprintf(logger.PauseIgnoredMsg, s.control.Phase()))
		return
	}

	if s.control.Phase().Kind == Paused {
		logger.Log.Info(fmt.Sprintf(logger.MatchPausedMsg, s.matchId))
	} else {
		logger.Log.Info(fmt.Sprintf(logger.MatchResumedMsg, s.matchId))
	}
}

// Tick advances the match by one frame when it is Playing and always returns a snapshot.
func (s *Simulation) Tick(d Directives) Snapshot {
	if !s.control.Running() {
		return s.Snapshot()
	}

	s.frame++
	ev := Advance(&s.left, &s.right, &s.ball, d, s.cfg)
	if ev.Scored {
		s.updateScore(ev.Side)
	}

	snap := s.Snapshot()
	if logger.Log.IsTrace() {
		logger.Log.Trace(fmt.Sprintf(logger.FramePayloadMsg, generateBattlePayload(snap)))
	}
	return snap
}

func (s *Simulation) updateScore(side Side) {
	won := s.control.Award(side, s.cfg.WinningScore)
	score := s.control.Score()

	logger.Log.Info(fmt.Sprintf(logger.PointScoredMsg, side, score.Left, score.Right))
	logger.Log.Debug(fmt.Sprintf(logger.EventPayloadMsg, generatePointScoredPayload(side, score)))

	//重新發球給失分的一方
	s.ball = SpawnBall(s.cfg, side.Opponent(), s.rng)

	if won {
		logger.Log.Info(fmt.Sprintf(logger.BattleOverMsg, side, score.Left, score.Right))
		logger.Log.Debug(fmt.Sprintf(logger.EventPayloadMsg, generateBattleOver(s.matchId, side, score)))
	}
}

func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		MatchID:     s.matchId,
		Frame:       s.frame,
		LeftPaddle:  s.left,
		RightPaddle: s.right,
		Ball:        s.ball,
		Score:       s.control.Score(),
		Phase:       s.control.Phase(),
	}
}

func (s *Simulation) resetCourt() {
	s.left = InitialPaddle(Left, s.cfg)
	s.right = InitialPaddle(Right, s.cfg)
}
