package events

// Event type codes produced by the Metory backend. The activity worker keys
// its notification handling off these, so keep them stable.
const (
	TypeUserLogin    = "USER_LOGIN"
	TypeUserFollowed = "USER_FOLLOWED"

	TypeStoryCreated   = "STORY_CREATED"
	TypeStoryLiked     = "STORY_LIKED"
	TypeStorySaved     = "STORY_SAVED"
	TypeStoryCommented = "STORY_COMMENTED"

	TypeClipMatched = "CLIP_MATCHED"
	TypeClipMissed  = "CLIP_MISSED"
)
