package constant

// Activity kinds persisted on the feed.
const (
	ActivityLike    = "like"
	ActivityComment = "comment"
	ActivityFollow  = "follow"
)

// Story visibility.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Story topics recognised by the question suggestion catalog. Anything
// else falls back to the generic set.
const (
	TopicTravel = "Du lịch"
	TopicFood   = "Ẩm thực"
	TopicSports = "Thể thao"
	TopicTech   = "Công nghệ"
)

// TopicStyle is the icon/color pair the mobile client renders for a
// topic chip.
type TopicStyle struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var topicStyles = map[string]TopicStyle{
	TopicTravel: {Icon: "airplane", Color: "#ff6b6b"},
	TopicFood:   {Icon: "restaurant", Color: "#4ecdc4"},
	TopicSports: {Icon: "fitness", Color: "#45b7d1"},
	TopicTech:   {Icon: "laptop-outline", Color: "#96ceb4"},
}

// StyleForTopic returns the catalog styling for a known topic.
func StyleForTopic(topic string) (TopicStyle, bool) {
	style, ok := topicStyles[topic]
	return style, ok
}

// MaxSuggestedQuestions caps how many suggestions a creator can pick for
// one story.
const MaxSuggestedQuestions = 5

// OTP settings for email verification and password reset.
const (
	OTPLength     = 6
	OTPExpiryMins = 10
)
