package models

// Keyboard is the bot keyboard attached to a message.
type Keyboard struct {
	OneTime  bool               `json:"one_time"`
	Inline   bool               `json:"inline"`
	AuthorID int64              `json:"author_id,omitempty"`
	Buttons  [][]KeyboardButton `json:"buttons,omitempty"`
}

type KeyboardButton struct {
	Action KeyboardButtonAction `json:"action"`
	// Color is one of "default", "primary", "negative", "positive".
	Color string `json:"color,omitempty"`
}

type KeyboardButtonAction struct {
	Type    string `json:"type"`
	Label   string `json:"label,omitempty"`
	Payload string `json:"payload,omitempty"`
	Link    string `json:"link,omitempty"`
}
