package constant

const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "model"

	// Session titles are cut from the first prompt of a conversation.
	SessionTitleMaxLen = 30
)
