package whatsapp

import (
	"testing"
	"time"
)

type recordingOpener struct {
	appOpens []string
	webOpens []string
}

func (o *recordingOpener) OpenApp(uri string) { o.appOpens = append(o.appOpens, uri) }
func (o *recordingOpener) OpenWeb(uri string) { o.webOpens = append(o.webOpens, uri) }

// fakeEnv gives the test control over time and the fallback timer.
type fakeEnv struct {
	now       time.Time
	scheduled []func()
}

func (e *fakeEnv) advance(d time.Duration) {
	e.now = e.now.Add(d)
}

func (e *fakeEnv) fire() {
	for _, f := range e.scheduled {
		f()
	}
	e.scheduled = nil
}

func newTestLauncher(opener Opener, visible bool, env *fakeEnv) *Launcher {
	l := NewLauncher(opener, func() bool { return visible })
	l.now = func() time.Time { return env.now }
	l.after = func(d time.Duration, f func()) {
		if d != fallbackDelay {
			panic("fallback must be armed at the 900ms delay")
		}
		env.scheduled = append(env.scheduled, f)
	}
	return l
}

func TestOpenAttemptsAppSchemeFirst(t *testing.T) {
	opener := &recordingOpener{}
	env := &fakeEnv{now: time.Now()}
	l := newTestLauncher(opener, true, env)

	l.Open(Link{App: "whatsapp://send?phone=123", Web: "https://wa.me/123"})

	if len(opener.appOpens) != 1 || opener.appOpens[0] != "whatsapp://send?phone=123" {
		t.Fatalf("expected one app open, got %v", opener.appOpens)
	}
	if len(opener.webOpens) != 0 {
		t.Fatalf("web fallback must not fire before the timer: %v", opener.webOpens)
	}
}

func TestFallbackFiresWhenStillVisibleAndQuickReturn(t *testing.T) {
	opener := &recordingOpener{}
	env := &fakeEnv{now: time.Now()}
	l := newTestLauncher(opener, true, env)

	l.Open(Link{App: "app", Web: "web"})
	env.advance(900 * time.Millisecond)
	env.fire()

	if len(opener.webOpens) != 1 || opener.webOpens[0] != "web" {
		t.Fatalf("expected web fallback, got %v", opener.webOpens)
	}
}

func TestFallbackSkippedWhenNotVisible(t *testing.T) {
	opener := &recordingOpener{}
	env := &fakeEnv{now: time.Now()}
	l := newTestLauncher(opener, false, env)

	l.Open(Link{App: "app", Web: "web"})
	env.advance(900 * time.Millisecond)
	env.fire()

	if len(opener.webOpens) != 0 {
		t.Fatalf("hidden context means the app likely opened; no fallback expected, got %v", opener.webOpens)
	}
}

func TestFallbackSkippedAfterQuickReturnThreshold(t *testing.T) {
	opener := &recordingOpener{}
	env := &fakeEnv{now: time.Now()}
	l := newTestLauncher(opener, true, env)

	l.Open(Link{App: "app", Web: "web"})
	env.advance(2 * time.Second)
	env.fire()

	if len(opener.webOpens) != 0 {
		t.Fatalf("stale attempt must not trigger the fallback, got %v", opener.webOpens)
	}
}
