package fplib

import "math/rand"

// RandomizeValue fills v with pseudo-random bits drawn from rng (nil
// picks the package-level default source), restoring the canonical form
// invariant in the top limb afterwards. It mutates v in place and does
// not change its format.
func (v *Value) RandomizeValue(rng *rand.Rand) {
	for i := range v.limb {
		if rng != nil {
			v.limb[i] = rng.Uint32()
		} else {
			v.limb[i] = rand.Uint32()
		}
	}
	signExtend(v.limb, v.width())
}
