// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package ref

import "gitlab.com/yawning/aes128.git/internal/api"

// State is the cipher state, a 4x4 byte matrix stored column-major.
type State [api.BlockSize]byte

// offset maps a (row, column) matrix position to its index in a State or a
// round key.  Every stage addresses the matrix through this.
func offset(row, col int) int {
	return 4*col + row
}

// SubBytes substitutes every byte of the state through the S-box.
func (s *State) SubBytes() {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

// ShiftRows cyclically rotates row r of the state left by r positions.
func (s *State) ShiftRows() {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := range row {
			row[c] = s[offset(r, (c+r)&3)]
		}
		for c, v := range row {
			s[offset(r, c)] = v
		}
	}
}

// AddRoundKey XORs the round key into the state.
func (s *State) AddRoundKey(rk *[api.KeySize]byte) {
	for i := range s {
		s[i] ^= rk[i]
	}
}
