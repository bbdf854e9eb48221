package interaction

import (
	"errors"
	"testing"
	"time"
)

// recordingSink captures engine events for assertions.
type recordingSink struct {
	clipChanges []Clip
	entries     []Entry
	thinking    []bool
}

func (r *recordingSink) ClipChanged(c Clip)         { r.clipChanges = append(r.clipChanges, c) }
func (r *recordingSink) TranscriptAppended(e Entry) { r.entries = append(r.entries, e) }
func (r *recordingSink) ThinkingChanged(b bool)     { r.thinking = append(r.thinking, b) }

// newTestSession uses zero delay so resolutions apply synchronously.
func newTestSession(clips []Clip, sink EventSink) *Session {
	return NewSession(clips, 0, sink)
}

func TestSessionFirstClipActive(t *testing.T) {
	s := newTestSession(travelClips(), nil)
	active, ok := s.ActiveClip()
	if !ok || active.VideoRef != "A" {
		t.Fatalf("initial active = %v (%v), want clip A", active, ok)
	}
}

func TestSessionEmptyStory(t *testing.T) {
	s := newTestSession(nil, nil)
	if _, ok := s.ActiveClip(); ok {
		t.Fatal("empty story should have no active clip")
	}
	if !s.SubmitQuery("kỷ niệm") {
		t.Fatal("query on empty story should still be accepted")
	}
	transcript := s.Transcript()
	if len(transcript) != 2 || transcript[1].Text != FallbackMessage {
		t.Fatalf("transcript = %v, want user entry + fallback", transcript)
	}
}

func TestSessionMatchTransitionsClip(t *testing.T) {
	sink := &recordingSink{}
	s := newTestSession(travelClips(), sink)

	if !s.SubmitQuery("kỷ niệm") {
		t.Fatal("query rejected")
	}

	active, _ := s.ActiveClip()
	if active.VideoRef != "B" {
		t.Fatalf("active = %q, want B", active.VideoRef)
	}
	if len(sink.clipChanges) != 1 || sink.clipChanges[0].VideoRef != "B" {
		t.Fatalf("clip change events = %v", sink.clipChanges)
	}

	transcript := s.Transcript()
	if len(transcript) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(transcript))
	}
	if transcript[0].Role != RoleUser || transcript[0].Text != "kỷ niệm" {
		t.Errorf("user entry = %+v", transcript[0])
	}
	if transcript[1].Role != RoleSystem || transcript[1].Text != travelClips()[1].Question {
		t.Errorf("system entry = %+v, want matched question", transcript[1])
	}

	// Thinking toggled on then off around the resolution.
	if len(sink.thinking) != 2 || !sink.thinking[0] || sink.thinking[1] {
		t.Errorf("thinking events = %v, want [true false]", sink.thinking)
	}
}

func TestSessionNoMatchAppendsFallback(t *testing.T) {
	s := newTestSession(travelClips(), nil)
	s.SubmitQuery("ấn tượng")

	active, _ := s.ActiveClip()
	if active.VideoRef != "A" {
		t.Errorf("active clip changed to %q on miss", active.VideoRef)
	}
	transcript := s.Transcript()
	if transcript[len(transcript)-1].Text != FallbackMessage {
		t.Errorf("last entry = %+v, want fallback message", transcript[len(transcript)-1])
	}
}

func TestSessionOnlyCandidateIsActiveClip(t *testing.T) {
	s := newTestSession(travelClips(), nil)
	if err := s.SelectClip(travelClips()[1]); err != nil {
		t.Fatal(err)
	}

	// Active = B; "kỷ niệm" only matches B. Quirk: miss, not a re-match.
	s.SubmitQuery("kỷ niệm")

	active, _ := s.ActiveClip()
	if active.VideoRef != "B" {
		t.Errorf("active = %q, want unchanged B", active.VideoRef)
	}
	transcript := s.Transcript()
	if transcript[len(transcript)-1].Text != FallbackMessage {
		t.Errorf("expected fallback entry, got %+v", transcript[len(transcript)-1])
	}
}

func TestSessionRejectsWhileThinking(t *testing.T) {
	sink := &recordingSink{}
	s := NewSession(travelClips(), 50*time.Millisecond, sink)

	if !s.SubmitQuery("kỷ niệm") {
		t.Fatal("first query rejected")
	}
	if s.SubmitQuery("giới thiệu") {
		t.Fatal("second query accepted while thinking")
	}

	// Exactly one user entry so far; no second resolution scheduled.
	if got := len(s.Transcript()); got != 1 {
		t.Fatalf("transcript length = %d, want 1 while thinking", got)
	}

	time.Sleep(150 * time.Millisecond)
	active, _ := s.ActiveClip()
	if active.VideoRef != "B" {
		t.Errorf("active = %q after resolution, want B", active.VideoRef)
	}
	if got := len(s.Transcript()); got != 2 {
		t.Errorf("transcript length = %d after resolution, want 2", got)
	}
}

func TestSessionRejectsEmptyQuery(t *testing.T) {
	s := newTestSession(travelClips(), nil)
	if s.SubmitQuery("") || s.SubmitQuery("  \n ") {
		t.Fatal("blank queries must be rejected")
	}
	if len(s.Transcript()) != 0 {
		t.Fatal("rejected queries must not touch the transcript")
	}
}

func TestSelectClipBypassesResolver(t *testing.T) {
	sink := &recordingSink{}
	clips := []Clip{
		{Question: "xxxx", VideoRef: "1"},
		{Question: "yyyy", VideoRef: "2"},
	}
	s := newTestSession(clips, sink)

	if err := s.SelectClip(clips[1]); err != nil {
		t.Fatal(err)
	}
	active, _ := s.ActiveClip()
	if active.VideoRef != "2" {
		t.Errorf("active = %q, want 2", active.VideoRef)
	}
	if len(sink.entries) != 0 {
		t.Errorf("direct selection wrote transcript entries: %v", sink.entries)
	}
	if len(sink.clipChanges) != 1 {
		t.Errorf("clip change events = %d, want 1", len(sink.clipChanges))
	}
}

func TestSelectClipOutsideStory(t *testing.T) {
	s := newTestSession(travelClips(), nil)
	err := s.SelectClip(Clip{Question: "stranger", VideoRef: "Z"})
	if !errors.Is(err, ErrClipNotInStory) {
		t.Fatalf("err = %v, want ErrClipNotInStory", err)
	}
	active, _ := s.ActiveClip()
	if active.VideoRef != "A" {
		t.Errorf("active changed to %q on rejected selection", active.VideoRef)
	}
}

func TestSelectClipOnClosedSession(t *testing.T) {
	clips := travelClips()
	sink := &recordingSink{}
	s := newTestSession(clips, sink)
	s.Close()

	if err := s.SelectClip(clips[1]); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("err = %v, want ErrSessionClosed", err)
	}
	if len(sink.clipChanges) != 0 {
		t.Errorf("clip changed on a closed session: %v", sink.clipChanges)
	}
}

func TestCloseDiscardsInFlightResolution(t *testing.T) {
	sink := &recordingSink{}
	s := NewSession(travelClips(), 30*time.Millisecond, sink)

	s.SubmitQuery("kỷ niệm")
	s.Close()
	time.Sleep(100 * time.Millisecond)

	// No resolution side effects after the session was dropped: the user
	// entry and thinking=true remain the last events.
	if got := len(s.Transcript()); got != 1 {
		t.Errorf("transcript length = %d after close, want 1", got)
	}
	if len(sink.clipChanges) != 0 {
		t.Errorf("clip changed after close: %v", sink.clipChanges)
	}
	if s.SubmitQuery("giới thiệu") {
		t.Error("closed session accepted a query")
	}
}

func TestTranscriptSequenceIsMonotonic(t *testing.T) {
	s := newTestSession(travelClips(), nil)
	s.SubmitQuery("ấn tượng")
	s.SubmitQuery("không có gì")

	transcript := s.Transcript()
	for i := 1; i < len(transcript); i++ {
		if transcript[i].Seq <= transcript[i-1].Seq {
			t.Fatalf("seq not monotonic at %d: %v", i, transcript)
		}
	}
}
