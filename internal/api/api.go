// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package api provides the AES-128 implementation abstract interface.
package api

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// KeySize is the AES-128 key size in bytes.
	KeySize = 16
)

// Factory is a Instance factory.
type Factory interface {
	// Name returns the name of the implementation.
	Name() string

	// New constructs a new keyed instance.  The key is assumed to be
	// KeySize bytes long.
	New(key []byte) Instance
}

// Instance is a keyed AES-128 instance.
type Instance interface {
	// Reset attempts to clear the instance of sensitive data.
	Reset()

	// Encrypt encrypts a single block from src into dst.  dst and src
	// may be the same block.
	Encrypt(dst, src *[BlockSize]byte)
}
