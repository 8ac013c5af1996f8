// package player treats the embedded video player as a black box that
// reports playback state. The overlay only ever reacts to the events a
// Player emits; it never reaches into playback itself.
package player

import "context"

type State string

const (
	StatePlaying State = "playing"
	StatePaused  State = "paused"
	StateEnded   State = "ended"
)

// Event is one signal from the player: either a state change or an error.
// An error event is terminal for the playback session.
type Event struct {
	State State
	Err   error
}

type Player interface {
	// Play starts playback of videoID and returns the event stream. The
	// channel is closed when the playback session is over.
	Play(ctx context.Context, videoID string) (<-chan Event, error)
}
