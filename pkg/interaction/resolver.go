package interaction

import "strings"

// Resolution is the outcome of matching one free-text query against a story's
// clip set. A miss is a normal value, never an error.
type Resolution struct {
	Matched bool
	Clip    Clip
}

// NoMatch is the zero resolution.
var NoMatch = Resolution{}

// Resolve picks the clip that should answer a free-text query.
//
// The rule is deliberately naive; it imitates the original simulated-AI
// matcher so a real backend can later replace it behind the same signature:
//
//  1. lowercase the query and split on whitespace into tokens
//  2. scan clips in stored order; a clip is a candidate when ANY token is a
//     plain substring of its lowercased question (not whole-word)
//  3. the FIRST candidate wins. If that candidate is the currently active
//     clip the scan stops and the result is a miss; it does not fall through
//     to a later candidate.
//
// active may be nil before any clip has been chosen. An empty or
// whitespace-only query short-circuits to a miss without scanning.
func Resolve(clips []Clip, active *Clip, query string) Resolution {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return NoMatch
	}

	for _, clip := range clips {
		question := strings.ToLower(clip.Question)
		candidate := false
		for _, tok := range tokens {
			if strings.Contains(question, tok) {
				candidate = true
				break
			}
		}
		if !candidate {
			continue
		}
		if active != nil && clip.VideoRef == active.VideoRef {
			// First candidate is the clip already playing. Stop here.
			return NoMatch
		}
		return Resolution{Matched: true, Clip: clip}
	}

	return NoMatch
}
