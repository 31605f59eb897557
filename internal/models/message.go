package models

// PinnedMessage is the message pinned in a chat. Date is a Unix timestamp
// in seconds.
type PinnedMessage struct {
	ID                    int32               `json:"id,omitempty"`
	ConversationMessageID int32               `json:"conversation_message_id,omitempty"`
	Date                  int32               `json:"date,omitempty"`
	FromID                int64               `json:"from_id,omitempty"`
	PeerID                int64               `json:"peer_id,omitempty"`
	Text                  string              `json:"text,omitempty"`
	Out                   bool                `json:"out,omitempty"`
	Important             bool                `json:"important,omitempty"`
	Geo                   *Geo                `json:"geo,omitempty"`
	Keyboard              *Keyboard           `json:"keyboard,omitempty"`
	FwdMessages           []ForeignMessage    `json:"fwd_messages,omitempty"`
	ReplyMessage          *ForeignMessage     `json:"reply_message,omitempty"`
	Attachments           []MessageAttachment `json:"attachments,omitempty"`
}

// ForeignMessage is a message embedded in another one, either forwarded or
// replied to.
type ForeignMessage struct {
	ID                    int32               `json:"id,omitempty"`
	ConversationMessageID int32               `json:"conversation_message_id,omitempty"`
	Date                  int32               `json:"date,omitempty"`
	UpdateTime            int32               `json:"update_time,omitempty"`
	FromID                int64               `json:"from_id,omitempty"`
	PeerID                int64               `json:"peer_id,omitempty"`
	Text                  string              `json:"text,omitempty"`
	Geo                   *Geo                `json:"geo,omitempty"`
	FwdMessages           []ForeignMessage    `json:"fwd_messages,omitempty"`
	ReplyMessage          *ForeignMessage     `json:"reply_message,omitempty"`
	Attachments           []MessageAttachment `json:"attachments,omitempty"`
}
