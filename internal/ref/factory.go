// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package ref

import "gitlab.com/yawning/aes128.git/internal/api"

// Factory is the reference implementation factory.
var Factory api.Factory = &refFactory{}

type refFactory struct{}

func (f *refFactory) Name() string {
	return "ref"
}

func (f *refFactory) New(key []byte) api.Instance {
	var (
		inst refInstance
		k    [api.KeySize]byte
	)
	copy(k[:], key)
	inst.ks.ExpandFrom(&k)
	for i := range k {
		k[i] = 0
	}

	return &inst
}

type refInstance struct {
	ks Schedule
}

func (inst *refInstance) Reset() {
	inst.ks.Reset()
}

func (inst *refInstance) Encrypt(dst, src *[api.BlockSize]byte) {
	inst.ks.Encrypt(dst, src)
}
