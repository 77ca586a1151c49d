// Package encode converts SMILES to DeepSMILES.
//
// # Usage
//
//	// rings and branches
//	out := encode.Encode("c1cccc(C(=O)Cl)c1", encode.Rings(true), encode.Branches(true))
//	// out == "cccccC=O)Cl))c6"
//
// With [Rings], each pair of ring-closure digits is replaced by a single
// ring-size token placed at the closing atom. With [Branches], matched
// parentheses are replaced by trailing ')' pop operators, one per atom
// written at the closed nesting level.
//
// Encoding does not validate its input. Malformed SMILES produce some
// output but no error.
//
// # Related Packages
//
//   - github.com/baoilleach/deepsmiles/decode - the reverse conversion
//   - github.com/baoilleach/deepsmiles/token - shared scanner
package encode
