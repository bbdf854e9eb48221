package service

import (
	"sync"
	"testing"

	"metory-be/pkg/interaction"

	"github.com/google/uuid"
)

// A nil hub makes push a no-op, so the sink can be exercised standalone.
func newTestSink() *sessionSink {
	return &sessionSink{viewerId: uuid.New(), sessionId: uuid.New()}
}

func TestSessionSinkSingleWaiter(t *testing.T) {
	sink := newTestSink()

	ch, ok := sink.tryArm()
	if !ok {
		t.Fatal("arm failed on an idle sink")
	}
	if _, ok := sink.tryArm(); ok {
		t.Fatal("second arm succeeded while a waiter was installed")
	}

	sink.TranscriptAppended(interaction.Entry{
		Seq: 1, Role: interaction.RoleSystem, Text: interaction.FallbackMessage,
	})
	res := <-ch
	if res.matched {
		t.Fatal("fallback delivered as a match")
	}

	// Delivery released the slot for the next Ask.
	if _, ok := sink.tryArm(); !ok {
		t.Fatal("arm failed after the previous resolution was delivered")
	}
}

func TestSessionSinkDisarmReleasesSlot(t *testing.T) {
	sink := newTestSink()
	if _, ok := sink.tryArm(); !ok {
		t.Fatal("arm failed")
	}
	sink.disarm()
	if _, ok := sink.tryArm(); !ok {
		t.Fatal("arm failed after disarm")
	}
}

func TestSessionSinkConcurrentArms(t *testing.T) {
	sink := newTestSink()

	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := sink.tryArm(); ok {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if winners != 1 {
		t.Fatalf("winners = %d, want exactly 1", winners)
	}
}

func TestSessionSinkMatchDeliversAfterClipChange(t *testing.T) {
	sink := newTestSink()
	ch, _ := sink.tryArm()

	clip := interaction.Clip{Question: "câu hỏi", VideoRef: "ref"}
	sink.TranscriptAppended(interaction.Entry{
		Seq: 2, Role: interaction.RoleSystem, Text: clip.Question,
	})
	select {
	case <-ch:
		t.Fatal("resolution delivered before the clip change")
	default:
	}

	sink.ClipChanged(clip)
	res := <-ch
	if !res.matched || res.answer != clip.Question || res.clip.VideoRef != "ref" {
		t.Fatalf("resolution = %+v", res)
	}
}
