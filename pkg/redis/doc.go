// Package redis provides the Redis connection layer backing the session
// store: an env-driven Config and a Connect helper that retries until the
// server answers a ping.
package redis
