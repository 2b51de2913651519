package cache

import (
	"github.com/go-redis/redis/v8"
)

// Lua scripts for Redis operations
var (
	setIndexedScript      *redis.Script
	invalidateIndexScript *redis.Script
)

func init() {
	// store a value and register its key in an index set so it can be dropped in bulk.
	setIndexedScript = redis.NewScript(`
		local key = KEYS[1]
		local index_key = KEYS[2]
		local expiration = tonumber(ARGV[2])
		redis.call('SET', key, ARGV[1], 'EX', expiration)
		redis.call('SADD', index_key, key)
		if redis.call('TTL', index_key) < expiration then
			redis.call('EXPIRE', index_key, expiration)
		end
		return 1
	`)

	// remove every key registered in an index set, then the set itself.
	invalidateIndexScript = redis.NewScript(`
		local index_key = KEYS[1]
		local cache_keys = redis.call('SMEMBERS', index_key)
		if #cache_keys > 0 then
			redis.call('DEL', unpack(cache_keys))
		end
		redis.call('DEL', index_key)
		return #cache_keys
	`)
}
