package decode

import (
	"chatgogo/chatsettings/internal/jsontree"
	"chatgogo/chatsettings/internal/models"
)

// State decodes the membership state. Unknown strings are kept; null is
// the empty state.
var State Decoder[models.ChatSettingsState] = DecoderFunc[models.ChatSettingsState](func(n jsontree.Node) (models.ChatSettingsState, error) {
	if n.IsNull() {
		return "", nil
	}
	s, err := n.AsString()
	if err != nil {
		return "", err
	}
	return models.ChatSettingsState(s), nil
})

var aclFields = Fields[models.ChatSettingsAcl]{
	"can_change_info":        Bool(func(a *models.ChatSettingsAcl) *bool { return &a.CanChangeInfo }),
	"can_change_invite_link": Bool(func(a *models.ChatSettingsAcl) *bool { return &a.CanChangeInviteLink }),
	"can_change_pin":         Bool(func(a *models.ChatSettingsAcl) *bool { return &a.CanChangePin }),
	"can_invite":             Bool(func(a *models.ChatSettingsAcl) *bool { return &a.CanInvite }),
	"can_promote_users":      Bool(func(a *models.ChatSettingsAcl) *bool { return &a.CanPromoteUsers }),
	"can_see_invite_link":    Bool(func(a *models.ChatSettingsAcl) *bool { return &a.CanSeeInviteLink }),
	"can_moderate":           Bool(func(a *models.ChatSettingsAcl) *bool { return &a.CanModerate }),
	"can_copy_chat":          Bool(func(a *models.ChatSettingsAcl) *bool { return &a.CanCopyChat }),
	"can_call":               Bool(func(a *models.ChatSettingsAcl) *bool { return &a.CanCall }),
	"can_use_mass_mentions":  Bool(func(a *models.ChatSettingsAcl) *bool { return &a.CanUseMassMentions }),
	"can_change_style":       Bool(func(a *models.ChatSettingsAcl) *bool { return &a.CanChangeStyle }),
}

// Acl decodes ChatSettingsAcl.
var Acl Decoder[models.ChatSettingsAcl] = aclFields

var photoFields = Fields[models.ChatSettingsPhoto]{
	"photo_50":              Str(func(p *models.ChatSettingsPhoto) *string { return &p.Photo50 }),
	"photo_100":             Str(func(p *models.ChatSettingsPhoto) *string { return &p.Photo100 }),
	"photo_200":             Str(func(p *models.ChatSettingsPhoto) *string { return &p.Photo200 }),
	"is_default_photo":      Bool(func(p *models.ChatSettingsPhoto) *bool { return &p.IsDefaultPhoto }),
	"is_default_call_photo": Bool(func(p *models.ChatSettingsPhoto) *bool { return &p.IsDefaultCallPhoto }),
}

// Photo decodes ChatSettingsPhoto.
var Photo Decoder[models.ChatSettingsPhoto] = photoFields

var permissionsFields = Fields[models.ChatSettingsPermissions]{
	"invite":            Str(func(p *models.ChatSettingsPermissions) *models.PermissionLevel { return &p.Invite }),
	"change_info":       Str(func(p *models.ChatSettingsPermissions) *models.PermissionLevel { return &p.ChangeInfo }),
	"change_pin":        Str(func(p *models.ChatSettingsPermissions) *models.PermissionLevel { return &p.ChangePin }),
	"use_mass_mentions": Str(func(p *models.ChatSettingsPermissions) *models.PermissionLevel { return &p.UseMassMentions }),
	"see_invite_link":   Str(func(p *models.ChatSettingsPermissions) *models.PermissionLevel { return &p.SeeInviteLink }),
	"call":              Str(func(p *models.ChatSettingsPermissions) *models.PermissionLevel { return &p.Call }),
	"change_admins":     Str(func(p *models.ChatSettingsPermissions) *models.PermissionLevel { return &p.ChangeAdmins }),
	"change_style":      Str(func(p *models.ChatSettingsPermissions) *models.PermissionLevel { return &p.ChangeStyle }),
}

// Permissions decodes ChatSettingsPermissions.
var Permissions Decoder[models.ChatSettingsPermissions] = permissionsFields

var geoCoordinatesFields = Fields[models.GeoCoordinates]{
	"latitude":  Float64(func(c *models.GeoCoordinates) *float64 { return &c.Latitude }),
	"longitude": Float64(func(c *models.GeoCoordinates) *float64 { return &c.Longitude }),
}

var geoPlaceFields = Fields[models.GeoPlace]{
	"id":        Int32(func(p *models.GeoPlace) *int32 { return &p.ID }),
	"title":     Str(func(p *models.GeoPlace) *string { return &p.Title }),
	"latitude":  Float64(func(p *models.GeoPlace) *float64 { return &p.Latitude }),
	"longitude": Float64(func(p *models.GeoPlace) *float64 { return &p.Longitude }),
	"created":   Int32(func(p *models.GeoPlace) *int32 { return &p.Created }),
	"icon":      Str(func(p *models.GeoPlace) *string { return &p.Icon }),
	"country":   Str(func(p *models.GeoPlace) *string { return &p.Country }),
	"city":      Str(func(p *models.GeoPlace) *string { return &p.City }),
}

var geoFields = Fields[models.Geo]{
	"type":        Str(func(g *models.Geo) *string { return &g.Type }),
	"coordinates": With(Ptr[models.GeoCoordinates](geoCoordinatesFields), func(g *models.Geo) **models.GeoCoordinates { return &g.Coordinates }),
	"place":       With(Ptr[models.GeoPlace](geoPlaceFields), func(g *models.Geo) **models.GeoPlace { return &g.Place }),
	"showmap":     Int32(func(g *models.Geo) *int32 { return &g.Showmap }),
}

// Geo decodes a message location.
var Geo Decoder[models.Geo] = geoFields

var keyboardActionFields = Fields[models.KeyboardButtonAction]{
	"type":    Str(func(a *models.KeyboardButtonAction) *string { return &a.Type }),
	"label":   Str(func(a *models.KeyboardButtonAction) *string { return &a.Label }),
	"payload": Str(func(a *models.KeyboardButtonAction) *string { return &a.Payload }),
	"link":    Str(func(a *models.KeyboardButtonAction) *string { return &a.Link }),
}

var keyboardButtonFields = Fields[models.KeyboardButton]{
	"action": With[models.KeyboardButton, models.KeyboardButtonAction](keyboardActionFields, func(b *models.KeyboardButton) *models.KeyboardButtonAction { return &b.Action }),
	"color":  Str(func(b *models.KeyboardButton) *string { return &b.Color }),
}

var keyboardFields = Fields[models.Keyboard]{
	"one_time":  Bool(func(k *models.Keyboard) *bool { return &k.OneTime }),
	"inline":    Bool(func(k *models.Keyboard) *bool { return &k.Inline }),
	"author_id": Int64(func(k *models.Keyboard) *int64 { return &k.AuthorID }),
	"buttons":   With(Slice(Slice[models.KeyboardButton](keyboardButtonFields)), func(k *models.Keyboard) *[][]models.KeyboardButton { return &k.Buttons }),
}

// Keyboard decodes a bot keyboard.
var Keyboard Decoder[models.Keyboard] = keyboardFields

// foreignMessageFields refers to itself through fwd_messages and
// reply_message, so it is filled in by init.
var foreignMessageFields Fields[models.ForeignMessage]

// ForeignMessage decodes a forwarded or replied-to message.
var ForeignMessage Decoder[models.ForeignMessage] = DecoderFunc[models.ForeignMessage](func(n jsontree.Node) (models.ForeignMessage, error) {
	return foreignMessageFields.Decode(n)
})

// ForeignMessages decodes fwd_messages.
var ForeignMessages = Slice(ForeignMessage)

func init() {
	foreignMessageFields = Fields[models.ForeignMessage]{
		"id":                      Int32(func(m *models.ForeignMessage) *int32 { return &m.ID }),
		"conversation_message_id": Int32(func(m *models.ForeignMessage) *int32 { return &m.ConversationMessageID }),
		"date":                    Int32(func(m *models.ForeignMessage) *int32 { return &m.Date }),
		"update_time":             Int32(func(m *models.ForeignMessage) *int32 { return &m.UpdateTime }),
		"from_id":                 Int64(func(m *models.ForeignMessage) *int64 { return &m.FromID }),
		"peer_id":                 Int64(func(m *models.ForeignMessage) *int64 { return &m.PeerID }),
		"text":                    Str(func(m *models.ForeignMessage) *string { return &m.Text }),
		"geo":                     With(Ptr(Geo), func(m *models.ForeignMessage) **models.Geo { return &m.Geo }),
		"fwd_messages":            With(ForeignMessages, func(m *models.ForeignMessage) *[]models.ForeignMessage { return &m.FwdMessages }),
		"reply_message":           With(Ptr(ForeignMessage), func(m *models.ForeignMessage) **models.ForeignMessage { return &m.ReplyMessage }),
		"attachments":             With(Attachments, func(m *models.ForeignMessage) *[]models.MessageAttachment { return &m.Attachments }),
	}
}
