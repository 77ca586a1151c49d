// Package deepsmiles converts between SMILES and DeepSMILES, a SMILES-like
// syntax suited to machine learning.
//
// In DeepSMILES a ring is written with a single symbol, the ring size, at
// the atom that closes it, and branches are not delimited by matched
// parentheses but closed by ')' pop operators, one per atom to leave.
//
// For example, benzene is c1ccccc1 in SMILES but cccccc6 in DeepSMILES, and
// C(Br)(OC)I becomes CBr)OC))I.
//
// # Usage
//
//	conv := deepsmiles.New(deepsmiles.Rings(true), deepsmiles.Branches(true))
//	enc := conv.Encode("c1cccc(C(=O)Cl)c1")
//	dec, err := conv.Decode(enc)
//	var de *deepsmiles.DecodeError
//	if errors.As(err, &de) {
//	    fmt.Print(de.Caret())
//	}
//
// A [Converter] is immutable and may be shared between goroutines.
//
// # Related Packages
//
//   - github.com/baoilleach/deepsmiles/encode - SMILES to DeepSMILES
//   - github.com/baoilleach/deepsmiles/decode - DeepSMILES to SMILES
//   - github.com/baoilleach/deepsmiles/token - scanner and decode errors
//   - github.com/baoilleach/deepsmiles/config - option documents
package deepsmiles
