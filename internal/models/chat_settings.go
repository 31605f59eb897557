package models

// ChatSettings is the decoded settings document of one conversation.
// Every field is optional in the source; an absent field keeps its zero
// value, and pointer fields stay nil.
type ChatSettings struct {
	Title                string                   `json:"title,omitempty"`
	OwnerID              int64                    `json:"owner_id,omitempty"`
	State                ChatSettingsState        `json:"state,omitempty"`
	Acl                  *ChatSettingsAcl         `json:"acl,omitempty"`
	MembersCount         int32                    `json:"members_count,omitempty"`
	FriendsCount         int32                    `json:"friends_count,omitempty"`
	PinnedMessagesCount  int32                    `json:"pinned_messages_count,omitempty"`
	AdminIDs             []int64                  `json:"admin_ids,omitempty"`
	ActiveIDs            []int64                  `json:"active_ids,omitempty"`
	IsGroupChannel       bool                     `json:"is_group_channel,omitempty"`
	IsService            bool                     `json:"is_service,omitempty"`
	IsDisappearing       bool                     `json:"is_disappearing,omitempty"`
	DisappearingChatLink string                   `json:"disappearing_chat_link,omitempty"`
	Theme                string                   `json:"theme,omitempty"`
	Photo                *ChatSettingsPhoto       `json:"photo,omitempty"`
	Permissions          *ChatSettingsPermissions `json:"permissions,omitempty"`
	// PinnedMessage is non-nil only when the source carried a non-null
	// pinned_message.
	PinnedMessage *PinnedMessage `json:"pinned_message,omitempty"`
}

// ChatSettingsState is the caller's membership state in the chat.
type ChatSettingsState string

const (
	ChatStateIn     ChatSettingsState = "in"
	ChatStateKicked ChatSettingsState = "kicked"
	ChatStateLeft   ChatSettingsState = "left"
	ChatStateOut    ChatSettingsState = "out"
)

// Known reports whether s is one of the documented states. Unknown states
// are kept as sent.
func (s ChatSettingsState) Known() bool {
	switch s {
	case ChatStateIn, ChatStateKicked, ChatStateLeft, ChatStateOut:
		return true
	}
	return false
}

// ChatSettingsAcl lists what the current user may do in the chat.
type ChatSettingsAcl struct {
	CanChangeInfo       bool `json:"can_change_info"`
	CanChangeInviteLink bool `json:"can_change_invite_link"`
	CanChangePin        bool `json:"can_change_pin"`
	CanInvite           bool `json:"can_invite"`
	CanPromoteUsers     bool `json:"can_promote_users"`
	CanSeeInviteLink    bool `json:"can_see_invite_link"`
	CanModerate         bool `json:"can_moderate"`
	CanCopyChat         bool `json:"can_copy_chat"`
	CanCall             bool `json:"can_call"`
	CanUseMassMentions  bool `json:"can_use_mass_mentions"`
	CanChangeStyle      bool `json:"can_change_style"`
}

// ChatSettingsPhoto holds the chat avatar in its published sizes.
type ChatSettingsPhoto struct {
	Photo50            string `json:"photo_50,omitempty"`
	Photo100           string `json:"photo_100,omitempty"`
	Photo200           string `json:"photo_200,omitempty"`
	IsDefaultPhoto     bool   `json:"is_default_photo"`
	IsDefaultCallPhoto bool   `json:"is_default_call_photo"`
}

// PermissionLevel says who may perform a chat action.
type PermissionLevel string

const (
	PermissionOwner          PermissionLevel = "owner"
	PermissionOwnerAndAdmins PermissionLevel = "owner_and_admins"
	PermissionAll            PermissionLevel = "all"
)

// ChatSettingsPermissions maps chat actions to the members allowed to
// perform them.
type ChatSettingsPermissions struct {
	Invite          PermissionLevel `json:"invite,omitempty"`
	ChangeInfo      PermissionLevel `json:"change_info,omitempty"`
	ChangePin       PermissionLevel `json:"change_pin,omitempty"`
	UseMassMentions PermissionLevel `json:"use_mass_mentions,omitempty"`
	SeeInviteLink   PermissionLevel `json:"see_invite_link,omitempty"`
	Call            PermissionLevel `json:"call,omitempty"`
	ChangeAdmins    PermissionLevel `json:"change_admins,omitempty"`
	ChangeStyle     PermissionLevel `json:"change_style,omitempty"`
}
