// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package aes128 implements the AES-128 block cipher.  Only encryption of
// single blocks is provided.
package aes128

import (
	"errors"

	"gitlab.com/yawning/aes128.git/internal/api"
	"gitlab.com/yawning/aes128.git/internal/hardware"
	"gitlab.com/yawning/aes128.git/internal/ref"
	"gitlab.com/yawning/slice.git"
)

const (
	// KeySize is the AES-128 key size in bytes.
	KeySize = api.KeySize

	// BlockSize is the AES block size in bytes.
	BlockSize = api.BlockSize
)

var (
	// ErrNoImplementations is the error returned when there are no working
	// implementations.
	ErrNoImplementations = errors.New("aes128: no working implementations")

	// ErrInvalidKeySize is the error returned when the key size is invalid.
	ErrInvalidKeySize = errors.New("aes128: invalid key size")

	// ErrInvalidBlockSize is the error returned/paniced when a block is not
	// exactly BlockSize bytes.
	ErrInvalidBlockSize = errors.New("aes128: invalid block size")

	chosenFactory      api.Factory
	supportedFactories = []api.Factory{ref.Factory}
)

// Encrypt encrypts block in place under key.
//
// WARNING: key is destroyed.  It is advanced through the key schedule and on
// return holds the last round key, which is useless for encrypting another
// block.  Use New when the key is to be reused.
func Encrypt(block *[BlockSize]byte, key *[KeySize]byte) {
	ref.EncryptInPlace(block, key)
}

// Cipher is a keyed AES-128 instance.  The round keys are derived once, in
// New, and are never modified by Encrypt.
//
// A Cipher is safe for concurrent use, except for Reset.
type Cipher struct {
	inner api.Instance
}

// BlockSize returns the cipher's block size.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts src into the first BlockSize bytes of dst.  src must be
// exactly BlockSize bytes long.  dst and src may overlap entirely.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) != BlockSize || len(dst) < BlockSize {
		panic(ErrInvalidBlockSize)
	}

	var in, out [BlockSize]byte
	copy(in[:], src)
	c.inner.Encrypt(&out, &in)
	copy(dst, out[:])
}

// AppendBlock encrypts src, which must be exactly BlockSize bytes long, and
// appends the result to dst, returning the updated slice.
func (c *Cipher) AppendBlock(dst, src []byte) ([]byte, error) {
	if len(src) != BlockSize {
		return nil, ErrInvalidBlockSize
	}

	ret, out := slice.ForAppend(dst, BlockSize)
	c.Encrypt(out, src)

	return ret, nil
}

// Reset attempts to clear the instance of sensitive data.  The Cipher must
// not be used afterwards.
func (c *Cipher) Reset() {
	c.inner.Reset()
}

// New creates a new AES-128 instance with the provided key.
func New(key []byte) (*Cipher, error) {
	if chosenFactory == nil {
		return nil, ErrNoImplementations
	}
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}

	return &Cipher{
		inner: chosenFactory.New(key),
	}, nil
}

// Implementation returns the name of the implementation backing New.
func Implementation() string {
	if chosenFactory == nil {
		return ""
	}
	return chosenFactory.Name()
}

func init() {
	if hardware.Factory != nil {
		supportedFactories = append([]api.Factory{hardware.Factory}, supportedFactories...)
	}

	if len(supportedFactories) > 0 {
		chosenFactory = supportedFactories[0]
	}
}
