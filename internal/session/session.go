// Package session keeps the logged-in user per session token, either in Redis
// or in process memory.
package session

import (
	"errors"
)

// KeyPrefix namespaces session keys; the full key is KeyPrefix + token.
const KeyPrefix = "eduTaskUser:"

var ErrNotFound = errors.New("session not found")

func key(token string) string {
	return KeyPrefix + token
}
