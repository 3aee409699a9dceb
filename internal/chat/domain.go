package chat

import "strings"

// ChatMessage is one turn of a conversation, passed verbatim to whichever
// backend the router picks.
type ChatMessage struct {
	// Role is who sent the message, e.g., "user", "assistant" or "system".
	// It is not validated here.
	Role string `json:"role"`
	// Content is the text of the message.
	Content string `json:"content"`
}

// proxyLength is a cheap stand-in for token count: the length of every
// message's content joined by a single space. A nil message or one without
// content contributes an empty string, not an error.
func proxyLength(history []*ChatMessage) int {
	parts := make([]string, len(history))
	for i, msg := range history {
		if msg == nil {
			continue
		}
		parts[i] = msg.Content
	}
	return len(strings.Join(parts, " "))
}
