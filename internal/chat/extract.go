package chat

import "github.com/tidwall/gjson"

// Backends do not all agree on where the reply text lives. Ollama's native
// chat endpoint puts it at message.content, OpenAI-compatible endpoints at
// choices[0].message.content. extractContent tries the given gjson paths in
// order and returns the first hit. This is a compatibility shim, so a body
// where no path matches is not an error: it just yields the empty string.
func extractContent(body []byte, paths ...string) string {
	for _, path := range paths {
		if result := gjson.GetBytes(body, path); result.Exists() {
			return result.String()
		}
	}
	return ""
}
