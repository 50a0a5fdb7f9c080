// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package ref provides the portable reference AES-128 implementation.
package ref

import "gitlab.com/yawning/aes128.git/internal/api"

// EncryptInPlace encrypts block in place with key.
//
// The key is consumed: it is advanced through the key schedule one round at
// a time, and on return holds the final (round 10) round key.  Callers that
// need the key again must pass a copy.
func EncryptInPlace(block *[api.BlockSize]byte, key *[api.KeySize]byte) {
	s := (*State)(block)

	s.AddRoundKey(key)
	for j := 0; j < Rounds; j++ {
		// The schedule step does not touch the state, so deriving the
		// round key ahead of the round is equivalent.
		NextRoundKey(key, j)
		s.round(key, j == Rounds-1)
	}
}

// Encrypt encrypts src into dst.  The schedule is only read, and dst and src
// may be the same block.
func (ks *Schedule) Encrypt(dst, src *[api.BlockSize]byte) {
	s := State(*src)

	s.AddRoundKey(&ks[0])
	for r := 1; r <= Rounds; r++ {
		s.round(&ks[r], r == Rounds)
	}

	*dst = s
}

// round applies one full round.  The final round omits MixColumns.
func (s *State) round(rk *[api.KeySize]byte, final bool) {
	s.SubBytes()
	s.ShiftRows()
	if !final {
		s.MixColumns()
	}
	s.AddRoundKey(rk)
}
