// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package ref

import "errors"

// ErrInvalidCoefficient is the error returned when a field multiplication is
// requested with a coefficient that does not appear in the MixColumns matrix.
var ErrInvalidCoefficient = errors.New("aes128: invalid mix coefficient")

// Coefficient is an entry of the MixColumns matrix.
type Coefficient uint8

// The only coefficients used by the cipher.
const (
	Coeff1 Coefficient = 1
	Coeff2 Coefficient = 2
	Coeff3 Coefficient = 3
)

func (c Coefficient) valid() bool {
	return c >= Coeff1 && c <= Coeff3
}

// mulTable[c][a] is a * c in GF(2^8), for c in {1, 2, 3}.  Row 0 is unused.
var mulTable = buildMulTables()

// xtime multiplies a by x modulo x^8 + x^4 + x^3 + x + 1.
func xtime(a byte) byte {
	b := a << 1
	if a&0x80 != 0 {
		b ^= 0x1b
	}
	return b
}

func buildMulTables() [4][256]byte {
	var t [4][256]byte
	for i := 0; i < 256; i++ {
		a := byte(i)
		t[Coeff1][i] = a
		t[Coeff2][i] = xtime(a)
		t[Coeff3][i] = xtime(a) ^ a
	}
	return t
}

// Mul returns a * c in GF(2^8).
func Mul(a byte, c Coefficient) (byte, error) {
	if !c.valid() {
		return 0, ErrInvalidCoefficient
	}
	return mulTable[c][a], nil
}
