package interaction

import (
	"errors"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultThinkingDelay mirrors the artificial pause the product shows
	// while "the AI" looks for an answer. Pure UX; no computation hides here.
	DefaultThinkingDelay = 1500 * time.Millisecond

	// MaxThinkingDelay is a ceiling applied to misconfigured delays.
	MaxThinkingDelay = 5 * time.Second

	// FallbackMessage is the canned reply when no clip answers the question.
	FallbackMessage = "Mình không có ký ức nào về điều đó..."
)

var (
	// ErrClipNotInStory is returned by SelectClip for a clip outside the
	// session's story.
	ErrClipNotInStory = errors.New("interaction: clip does not belong to this story")

	// ErrSessionClosed is returned by SelectClip after Close.
	ErrSessionClosed = errors.New("interaction: session is closed")
)

type Role string

const (
	RoleUser   Role = "user"
	RoleSystem Role = "system"
)

// Entry is one line of the per-session chat transcript. Seq is a monotonic
// sequence number; wall-clock time is not needed for ordering.
type Entry struct {
	Seq  int    `json:"seq"`
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// EventSink receives the engine's only outputs. Implementations must not
// call back into the Session from inside a callback.
type EventSink interface {
	ClipChanged(clip Clip)
	TranscriptAppended(entry Entry)
	ThinkingChanged(thinking bool)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) ClipChanged(Clip)         {}
func (NopSink) TranscriptAppended(Entry) {}
func (NopSink) ThinkingChanged(bool)     {}

// Session is the per-viewer state machine for one story viewing: which clip
// is active, the chat transcript, and the Idle/Thinking query guard. It holds
// no I/O and is never persisted; dropping the session is the only teardown.
type Session struct {
	mu         sync.Mutex
	clips      []Clip
	active     int // index into clips, -1 before any clip is chosen
	transcript []Entry
	thinking   bool
	seq        int
	delay      time.Duration
	sink       EventSink
	timer      *time.Timer
	closed     bool
}

// NewSession builds a session over a story's ordered clip set. The first clip
// becomes active; an empty story is legal and leaves no clip active. A delay
// of zero makes resolutions apply synchronously inside SubmitQuery, which is
// what tests and headless callers want.
func NewSession(clips []Clip, delay time.Duration, sink EventSink) *Session {
	if sink == nil {
		sink = NopSink{}
	}
	if delay < 0 || delay > MaxThinkingDelay {
		delay = DefaultThinkingDelay
	}
	normalized := make([]Clip, len(clips))
	for i, c := range clips {
		normalized[i] = c.Normalize()
	}
	active := -1
	if len(normalized) > 0 {
		active = 0
	}
	return &Session{
		clips:  normalized,
		active: active,
		delay:  delay,
		sink:   sink,
	}
}

// SubmitQuery feeds one typed question into the machine. It reports whether
// the query was accepted: empty or whitespace-only text is dropped, and a
// second query while one is still Thinking is rejected, not queued.
func (s *Session) SubmitQuery(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.thinking {
		return false
	}
	if strings.TrimSpace(text) == "" {
		return false
	}

	s.appendLocked(RoleUser, text)
	s.thinking = true
	s.sink.ThinkingChanged(true)

	if s.delay == 0 {
		s.resolveLocked(text)
		return true
	}

	s.timer = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.resolveLocked(text)
	})
	return true
}

// resolveLocked applies the resolver outcome. Callers hold s.mu.
func (s *Session) resolveLocked(query string) {
	if s.closed || !s.thinking {
		return // session dropped or resolution already discarded
	}
	s.thinking = false
	s.timer = nil
	s.sink.ThinkingChanged(false)

	res := Resolve(s.clips, s.activeClipLocked(), query)
	if !res.Matched {
		s.appendLocked(RoleSystem, FallbackMessage)
		return
	}

	s.appendLocked(RoleSystem, res.Clip.Question)
	s.setActiveLocked(res.Clip)
}

// SelectClip is the hint-list shortcut: it bypasses the resolver, works even
// while Thinking, and never touches the transcript. A clip outside the
// story's set is a caller bug and is rejected; so is selecting on a closed
// session.
func (s *Session) SelectClip(clip Clip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	clip = clip.Normalize()
	for _, c := range s.clips {
		if c == clip {
			s.setActiveLocked(c)
			return nil
		}
	}
	return ErrClipNotInStory
}

// Close drops the session. An in-flight Thinking resolution is discarded with
// no transcript entry and no state change.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.thinking = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// ActiveClip returns the clip currently playing, if any clip is active yet.
func (s *Session) ActiveClip() (Clip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active < 0 {
		return Clip{}, false
	}
	return s.clips[s.active], true
}

// Sink returns the event sink installed at construction.
func (s *Session) Sink() EventSink {
	return s.sink
}

// Thinking reports whether a query is awaiting resolution.
func (s *Session) Thinking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.thinking
}

// Clips returns the story's ordered clip set.
func (s *Session) Clips() []Clip {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Clip, len(s.clips))
	copy(out, s.clips)
	return out
}

// Transcript returns a copy of the append-only transcript.
func (s *Session) Transcript() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func (s *Session) activeClipLocked() *Clip {
	if s.active < 0 {
		return nil
	}
	return &s.clips[s.active]
}

func (s *Session) setActiveLocked(clip Clip) {
	for i, c := range s.clips {
		if c == clip {
			s.active = i
			break
		}
	}
	s.sink.ClipChanged(clip)
}

func (s *Session) appendLocked(role Role, text string) {
	s.seq++
	entry := Entry{Seq: s.seq, Role: role, Text: text}
	s.transcript = append(s.transcript, entry)
	s.sink.TranscriptAppended(entry)
}
