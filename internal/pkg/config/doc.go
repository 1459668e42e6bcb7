// Package config provides validated settings structures for logging,
// persistence and the timestamp authority.

package config
