// Package persistence provides the GORM-backed certificate store and
// timestamp history. These collections are owned by the presentation layer;
// the cryptographic core never reads or mutates them.

package persistence
