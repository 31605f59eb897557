package decode

import (
	"chatgogo/chatsettings/internal/jsontree"
	"chatgogo/chatsettings/internal/models"
)

var pinnedMessageFields = Fields[models.PinnedMessage]{
	"id":                      Int32(func(m *models.PinnedMessage) *int32 { return &m.ID }),
	"conversation_message_id": Int32(func(m *models.PinnedMessage) *int32 { return &m.ConversationMessageID }),
	"date":                    Int32(func(m *models.PinnedMessage) *int32 { return &m.Date }),
	"from_id":                 Int64(func(m *models.PinnedMessage) *int64 { return &m.FromID }),
	"peer_id":                 Int64(func(m *models.PinnedMessage) *int64 { return &m.PeerID }),
	"text":                    Str(func(m *models.PinnedMessage) *string { return &m.Text }),
	"out":                     Bool(func(m *models.PinnedMessage) *bool { return &m.Out }),
	"important":               Bool(func(m *models.PinnedMessage) *bool { return &m.Important }),
	"geo":                     With(Ptr(Geo), func(m *models.PinnedMessage) **models.Geo { return &m.Geo }),
	"keyboard":                With(Ptr(Keyboard), func(m *models.PinnedMessage) **models.Keyboard { return &m.Keyboard }),
	"fwd_messages":            With(ForeignMessages, func(m *models.PinnedMessage) *[]models.ForeignMessage { return &m.FwdMessages }),
	"reply_message":           With(Ptr(ForeignMessage), func(m *models.PinnedMessage) **models.ForeignMessage { return &m.ReplyMessage }),
	"attachments":             With(Attachments, func(m *models.PinnedMessage) *[]models.MessageAttachment { return &m.Attachments }),
}

// PinnedMessage decodes a pinned message object.
var PinnedMessage Decoder[models.PinnedMessage] = pinnedMessageFields

var chatSettingsFields = Fields[models.ChatSettings]{
	"title":                  Str(func(s *models.ChatSettings) *string { return &s.Title }),
	"owner_id":               Int64(func(s *models.ChatSettings) *int64 { return &s.OwnerID }),
	"state":                  With(State, func(s *models.ChatSettings) *models.ChatSettingsState { return &s.State }),
	"acl":                    With(Ptr(Acl), func(s *models.ChatSettings) **models.ChatSettingsAcl { return &s.Acl }),
	"members_count":          Int32(func(s *models.ChatSettings) *int32 { return &s.MembersCount }),
	"friends_count":          Int32(func(s *models.ChatSettings) *int32 { return &s.FriendsCount }),
	"pinned_messages_count":  Int32(func(s *models.ChatSettings) *int32 { return &s.PinnedMessagesCount }),
	"admin_ids":              Int64s(func(s *models.ChatSettings) *[]int64 { return &s.AdminIDs }),
	"active_ids":             Int64s(func(s *models.ChatSettings) *[]int64 { return &s.ActiveIDs }),
	"is_group_channel":       Bool(func(s *models.ChatSettings) *bool { return &s.IsGroupChannel }),
	"is_service":             Bool(func(s *models.ChatSettings) *bool { return &s.IsService }),
	"is_disappearing":        Bool(func(s *models.ChatSettings) *bool { return &s.IsDisappearing }),
	"disappearing_chat_link": Str(func(s *models.ChatSettings) *string { return &s.DisappearingChatLink }),
	"theme":                  Str(func(s *models.ChatSettings) *string { return &s.Theme }),
	"photo":                  With(Ptr(Photo), func(s *models.ChatSettings) **models.ChatSettingsPhoto { return &s.Photo }),
	"permissions":            With(Ptr(Permissions), func(s *models.ChatSettings) **models.ChatSettingsPermissions { return &s.Permissions }),
	// A null pinned_message leaves the field nil.
	"pinned_message": With(Ptr(PinnedMessage), func(s *models.ChatSettings) **models.PinnedMessage { return &s.PinnedMessage }),
}

// ChatSettings decodes a chat settings object.
var ChatSettings Decoder[models.ChatSettings] = chatSettingsFields

// DecodeChatSettings parses and decodes a JSON chat settings document.
func DecodeChatSettings(data []byte) (models.ChatSettings, error) {
	root, err := jsontree.Parse(data)
	if err != nil {
		return models.ChatSettings{}, err
	}
	return ChatSettings.Decode(root)
}

// DecodeChatSettingsJSONC is DecodeChatSettings for documents that may
// carry comments and trailing commas.
func DecodeChatSettingsJSONC(data []byte) (models.ChatSettings, error) {
	root, err := jsontree.ParseJSONC(data)
	if err != nil {
		return models.ChatSettings{}, err
	}
	return ChatSettings.Decode(root)
}
