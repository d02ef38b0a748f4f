package courier

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/parcelrun/courier/geom"
)

// Phase is the state of a Session. PhaseGameOver is terminal; a new game is a new Session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (phase Phase) String() string {
	if phase == PhaseGameOver {
		return "game over"
	}
	return "playing"
}

// Session is one timed round of deliveries. It owns every piece of game state, and is driven by calling Update once per frame;
// the host writes Keys from its input events in between.
type Session struct {
	ID     uuid.UUID
	Config Config
	Phase  Phase
	Frame  int

	City      *CityBuilder
	Traffic   *Traffic
	Player    *Player
	Objective *Objective
	Countdown *Countdown
	Camera    *FollowCamera
	Keys      KeyState

	world      PhysicsWorld
	logger     *zap.Logger
	started    time.Time
	onGameOver []func(score int)
}

// NewSession builds a new city into scene and world and places the player, the traffic and the first delivery target.
// world may be nil, in which case nothing collides and the player never moves. NewSession fails with ErrUnplayable
// only if the player's model isn't loaded.
func NewSession(config Config, models *ModelLibrary, scene SceneSink, world PhysicsWorld, logger *zap.Logger) (*Session, error) {

	if err := RequireModels(models, config.Player.Model); err != nil {
		return nil, err
	}

	id := uuid.New()
	logger = loggerOrNop(logger).With(zap.String("session", id.String()))

	rng := NewRand(config.Seed)

	session := &Session{
		ID:        id,
		Config:    config,
		Phase:     PhasePlaying,
		Keys:      KeyState{},
		Countdown: NewCountdown(config.Timer.Duration, config.Timer.Interval),
		Camera:    NewFollowCamera(config.Camera),
		world:     world,
		logger:    logger,
		started:   time.Now(),
	}

	session.City = NewCityBuilder(scene, world, models, config.City, logger)
	session.City.Generate(config.Grid, rng)

	session.Traffic = NewTraffic(scene, world, models, config.Traffic, logger)

	session.Player = NewPlayer(scene, world, models.Find(config.Player.Model), config.Player)

	session.Objective = NewObjective(session.City.DeliveryCandidates(), config.Delivery.Radius, rng)
	marker := NewModel(NewDiscMesh("delivery_marker", config.Delivery.Radius, 32, config.Delivery.MarkerColor), "delivery_marker")
	session.Objective.SetMarker(scene, marker, config.Delivery.MarkerHeight)
	session.Objective.OnDelivered(func(score int, next geom.Vector) {
		logger.Info("delivered", zap.Int("score", score), zap.Stringer("next_target", next))
	})
	session.Objective.Start()

	if session.Objective.State == NoTarget {
		logger.Warn("no delivery candidates; the round can't be scored")
	}

	logger.Info("session started",
		zap.String("seed", config.Seed),
		zap.Int("cars", session.Traffic.Len()),
		zap.Int("delivery_candidates", session.Objective.Candidates()),
		zap.Duration("duration", session.Countdown.RemainingTime()),
	)

	// A round with no time on the clock is over before its first frame.
	if session.Countdown.State == Expired {
		session.endGame()
	}

	return session, nil

}

// Update advances the Session by one frame of dt wall-clock time: the countdown, then the traffic, the player's controls
// (while playing), one physics step, the player's position read-back, the delivery check (while playing) and finally the
// camera.
func (session *Session) Update(dt time.Duration) {

	session.Frame++

	if session.Countdown.Advance(dt) {
		session.endGame()
	}

	session.Traffic.Update()

	playing := session.Phase == PhasePlaying

	if playing {
		session.Player.Update(session.Keys)
	}

	if session.world != nil {
		session.world.Step()
	}

	session.Player.Sync()

	if playing {
		session.Objective.Check(session.Player.Position)
	}

	session.Camera.Follow(session.Player.Position, session.Player.Yaw)

}

func (session *Session) endGame() {

	session.Phase = PhaseGameOver

	score := session.Score()

	session.logger.Info("session over",
		zap.Int("score", score),
		zap.Int("frames", session.Frame),
		zap.Duration("played", time.Since(session.started)),
	)

	for _, fn := range session.onGameOver {
		fn(score)
	}

}

// OnGameOver registers a function called once, with the final score, when the countdown expires. If the Session is
// already over, fn is called straight away.
func (session *Session) OnGameOver(fn func(score int)) {
	if session.IsGameOver() {
		fn(session.Score())
		return
	}
	session.onGameOver = append(session.onGameOver, fn)
}

// OnDelivered registers a function called after each delivery with the new score and the next target.
func (session *Session) OnDelivered(fn func(score int, next geom.Vector)) {
	session.Objective.OnDelivered(fn)
}

// IsGameOver returns if the countdown has expired.
func (session *Session) IsGameOver() bool {
	return session.Phase == PhaseGameOver
}

// Score returns the number of deliveries made this Session.
func (session *Session) Score() int {
	return session.Objective.Score()
}

// Remaining returns the countdown's ticks left.
func (session *Session) Remaining() int {
	return session.Countdown.Remaining
}

// Logger returns the Session's logger, tagged with its ID.
func (session *Session) Logger() *zap.Logger {
	return session.logger
}

func (session *Session) String() string {
	return fmt.Sprintf("Session %s { %s, score %d, %d left }", session.ID, session.Phase, session.Score(), session.Remaining())
}
