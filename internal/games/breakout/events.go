package breakout

// EventKind names something that happened during a tick.
type EventKind int

const (
	EventBrickHit EventKind = iota
	EventPaddleHit
	EventWallHit
	EventBallLost
	EventPowerUpCollected
	EventLevelComplete
	EventGameOver
	EventVictory
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventBrickHit:
		return "brick_hit"
	case EventPaddleHit:
		return "paddle_hit"
	case EventWallHit:
		return "wall_hit"
	case EventBallLost:
		return "ball_lost"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventLevelComplete:
		return "level_complete"
	case EventGameOver:
		return "game_over"
	case EventVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Event is a notification for presenters (sound, animation).
// Only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind
	Points  int         // EventBrickHit
	Offset  float64     // EventPaddleHit, -1..1
	PowerUp PowerUpKind // EventPowerUpCollected
	Level   int         // EventLevelComplete
}

// EventSink consumes events. Notify is called on the tick loop and must
// not block.
type EventSink interface {
	Notify(Event)
}
