package database

import "github.com/redis/go-redis/v9"

// NewRedis creates the shared Redis client used for sessions and
// cool-down keys.
func NewRedis(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})
}
