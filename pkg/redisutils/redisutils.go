package redisutils

// KeysToMembers converts keys to the variadic members accepted by commands like ZREM
func KeysToMembers(keys []string) []any {
	members := make([]any, len(keys))
	for i, v := range keys {
		members[i] = v
	}
	return members
}
