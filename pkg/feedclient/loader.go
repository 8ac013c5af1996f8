package feedclient

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateFailed  State = "failed"
)

// FailureMessage is the single user-facing fetch error. The client never
// distinguishes store from upstream failure; both read the same here.
const FailureMessage = "failed to fetch videos, pull to retry"

// Fetcher is the one network operation the loader drives.
type Fetcher interface {
	FetchVideos(ctx context.Context) ([]Video, error)
}

// Snapshot is an immutable view of the loader for rendering.
type Snapshot struct {
	State        State
	Videos       []Video
	ErrorMessage string
	Refreshing   bool
	RefreshedAt  time.Time
}

// Loader owns the fetch lifecycle: Idle -> Loading -> {Loaded, Failed}, with
// Refreshing reachable from either settled state. A failed fetch keeps any
// previously loaded list so the UI can render stale content next to the
// error. Overlapping refreshes are coalesced into the in-flight fetch, never
// queued.
type Loader struct {
	fetcher Fetcher

	group singleflight.Group

	mu          sync.Mutex
	state       State
	videos      []Video
	errMsg      string
	refreshing  bool
	refreshedAt time.Time
}

func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{
		fetcher: fetcher,
		state:   StateIdle,
	}
}

// Load runs the initial fetch. Called once on mount; a concurrent Load joins
// the in-flight fetch.
func (l *Loader) Load(ctx context.Context) Snapshot {
	l.mu.Lock()
	if l.state == StateIdle {
		l.state = StateLoading
	}
	l.mu.Unlock()

	l.doFetch(ctx)
	return l.Snapshot()
}

// Refresh re-runs the fetch from a settled state. If a fetch is already in
// flight the call joins it instead of racing a second one. The refresh flag
// is cleared on every exit path.
func (l *Loader) Refresh(ctx context.Context) Snapshot {
	l.mu.Lock()
	if l.state == StateLoaded || l.state == StateFailed {
		l.refreshing = true
	}
	l.mu.Unlock()

	l.doFetch(ctx)
	return l.Snapshot()
}

// Snapshot returns the current state for rendering.
func (l *Loader) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	videos := make([]Video, len(l.videos))
	copy(videos, l.videos)

	return Snapshot{
		State:        l.state,
		Videos:       videos,
		ErrorMessage: l.errMsg,
		Refreshing:   l.refreshing,
		RefreshedAt:  l.refreshedAt,
	}
}

func (l *Loader) doFetch(ctx context.Context) {
	l.group.Do("fetch", func() (any, error) {
		defer func() {
			l.mu.Lock()
			l.refreshing = false
			l.mu.Unlock()
		}()

		videos, err := l.fetcher.FetchVideos(ctx)

		l.mu.Lock()
		defer l.mu.Unlock()

		if err != nil {
			l.state = StateFailed
			l.errMsg = FailureMessage
			// l.videos deliberately untouched: stale-but-visible.
			return nil, nil
		}

		l.state = StateLoaded
		l.videos = videos
		l.errMsg = ""
		l.refreshedAt = time.Now()
		return nil, nil
	})
}
