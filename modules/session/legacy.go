package session

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// DecodeLegacyToken decodes the pre-signed-token credential format still
// sent by older clients: a base64-encoded JSON object carrying a
// username. It reports false on any malformed input; a bad legacy
// credential never fails a request, the caller just stays anonymous.
func DecodeLegacyToken(token string) (string, bool) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", false
	}

	var payload struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", false
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" {
		return "", false
	}
	return username, true
}
