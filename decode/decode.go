package decode

// Decode returns the SMILES form of s. With neither rings nor branches
// enabled s is returned unchanged.
func Decode(s string, opts ...DecodeOption) (string, error) {
	ds := &DecState{}
	for _, opt := range opts {
		opt(ds)
	}
	switch {
	case !ds.rings && !ds.branches:
		return s, nil
	case !ds.branches:
		return decodeRings(s)
	default:
		return decodeBranches(s, ds.rings)
	}
}
