// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

//go:build amd64 && !noasm
// +build amd64,!noasm

package hardware

import (
	"crypto/aes"
	"crypto/cipher"

	"golang.org/x/sys/cpu"

	"gitlab.com/yawning/aes128.git/internal/api"
)

type aesniFactory struct{}

func (f *aesniFactory) Name() string {
	return "aesni"
}

func (f *aesniFactory) New(key []byte) api.Instance {
	// The runtime's AES implementation uses AES-NI when the CPU has it,
	// which init has already established.
	b, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}

	return &aesniInstance{
		block: b,
	}
}

type aesniInstance struct {
	block cipher.Block
}

func (inst *aesniInstance) Reset() {
	// Note: crypto/aes does not expose the expanded key, so the best that
	// can be done is to drop the reference to it.
	inst.block = nil
}

func (inst *aesniInstance) Encrypt(dst, src *[api.BlockSize]byte) {
	inst.block.Encrypt(dst[:], src[:])
}

func init() {
	if cpu.X86.HasAES {
		Factory = &aesniFactory{}
	}
}
