// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package ref

var mixMatrix = [4][4]Coefficient{
	{Coeff2, Coeff3, Coeff1, Coeff1},
	{Coeff1, Coeff2, Coeff3, Coeff1},
	{Coeff1, Coeff1, Coeff2, Coeff3},
	{Coeff3, Coeff1, Coeff1, Coeff2},
}

// MixColumns multiplies each column of the state by the fixed MixColumns
// matrix over GF(2^8).
func (s *State) MixColumns() {
	for c := 0; c < 4; c++ {
		// Every output byte depends on all four input bytes of the column,
		// so the column has to be read out before any of it is written.
		var col [4]byte
		for r := range col {
			col[r] = s[offset(r, c)]
		}

		for r, coeffs := range mixMatrix {
			var v byte
			for k, coeff := range coeffs {
				v ^= mulTable[coeff][col[k]]
			}
			s[offset(r, c)] = v
		}
	}
}
