package dto

type SuggestionResponse struct {
	Topic     string   `json:"topic"`
	Questions []string `json:"questions"`
	Fallback  bool     `json:"fallback"`
}
