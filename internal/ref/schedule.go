// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package ref

import (
	"encoding/binary"
	"math/bits"

	"gitlab.com/yawning/aes128.git/internal/api"
)

// Rounds is the number of AES-128 rounds.
const Rounds = 10

var rcon = [Rounds]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// Schedule holds the caller supplied key followed by the 10 derived round
// keys.
type Schedule [Rounds + 1][api.KeySize]byte

// ExpandFrom fills the schedule from key.  key is not modified.
func (ks *Schedule) ExpandFrom(key *[api.KeySize]byte) {
	ks[0] = *key
	for i := 0; i < Rounds; i++ {
		ks[i+1] = ks[i]
		NextRoundKey(&ks[i+1], i)
	}
}

// Reset clears the schedule.
func (ks *Schedule) Reset() {
	for i := range ks {
		for j := range ks[i] {
			ks[i][j] = 0
		}
	}
}

// NextRoundKey overwrites key with the round key that follows it.  round is
// the 0-based index of the round being derived for, and must be in [0, 10).
func NextRoundKey(key *[api.KeySize]byte, round int) {
	if round < 0 || round >= Rounds {
		panic("aes128: invalid key schedule round")
	}

	w0 := binary.BigEndian.Uint32(key[0:4])
	w1 := binary.BigEndian.Uint32(key[4:8])
	w2 := binary.BigEndian.Uint32(key[8:12])
	w3 := binary.BigEndian.Uint32(key[12:16])

	w0 ^= subWord(bits.RotateLeft32(w3, 8)) ^ uint32(rcon[round])<<24
	w1 ^= w0
	w2 ^= w1
	w3 ^= w2

	binary.BigEndian.PutUint32(key[0:4], w0)
	binary.BigEndian.PutUint32(key[4:8], w1)
	binary.BigEndian.PutUint32(key[8:12], w2)
	binary.BigEndian.PutUint32(key[12:16], w3)
}

func subWord(w uint32) uint32 {
	return uint32(sbox[w>>24])<<24 |
		uint32(sbox[(w>>16)&0xff])<<16 |
		uint32(sbox[(w>>8)&0xff])<<8 |
		uint32(sbox[w&0xff])
}
