// Package crypto defines the core interfaces and structures for asymmetric key
// management, digital signing and verification, and message digesting.

package crypto
