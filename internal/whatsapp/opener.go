package whatsapp

import "time"

const (
	// fallbackDelay is how long after the app-scheme attempt the fallback
	// check runs.
	fallbackDelay = 900 * time.Millisecond
	// quickReturnThreshold bounds how stale an attempt may be for the
	// fallback to still fire.
	quickReturnThreshold = 2 * time.Second
)

// Opener issues URI open attempts in the host environment. OpenApp navigates
// the current context to an app-scheme URI; OpenWeb opens a URI in a new
// browsing context.
type Opener interface {
	OpenApp(uri string)
	OpenWeb(uri string)
}

// VisibilityFunc reports whether the host context is still in the foreground.
type VisibilityFunc func() bool

// Launcher opens WhatsApp links with a timed web fallback. Opening a native
// app cannot be observed directly: if the context is still visible shortly
// after the attempt, the app most likely did not open and the wa.me endpoint
// is opened instead. The heuristic cannot tell "app opened, page is
// backgrounding" from "app failed to open" and accepts that ambiguity.
type Launcher struct {
	opener  Opener
	visible VisibilityFunc

	// injectable for tests
	now   func() time.Time
	after func(d time.Duration, f func())
}

// NewLauncher creates a Launcher over the given environment hooks.
func NewLauncher(opener Opener, visible VisibilityFunc) *Launcher {
	return &Launcher{
		opener:  opener,
		visible: visible,
		now:     time.Now,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// Open attempts the app-scheme URI and arms the web fallback. No result is
// awaited; the attempt is fire-and-forget.
func (l *Launcher) Open(link Link) {
	start := l.now()
	l.opener.OpenApp(link.App)

	l.after(fallbackDelay, func() {
		stillVisible := l.visible()
		quickReturn := l.now().Sub(start) < quickReturnThreshold
		if stillVisible && quickReturn {
			l.opener.OpenWeb(link.Web)
		}
	})
}
