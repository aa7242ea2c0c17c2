package constant

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	ChatRoleSystem    = "system"

	// ApologyReply is the only user-visible sign of a completion failure.
	ApologyReply = "Произошла ошибка. Попробуйте позже."

	// WellnessPrefix separates the appended tip from the model reply.
	WellnessPrefix = "\n\n**🌿 Совет:**\n"

	// RetrievalTopK bounds how many passages one chat turn can pull in.
	RetrievalTopK = 3
)
