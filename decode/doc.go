// Package decode converts DeepSMILES back to SMILES.
//
// Three decoders are selected by the enabled compactions:
//
//   - rings and branches, or branches alone: the input is read into a tree
//     of atoms held in a flat arena ([Tree]); ring sizes are resolved by
//     walking parent links and the SMILES is written by a depth first
//     traversal.
//   - rings alone: branch parentheses are kept as written and only ring
//     sizes are resolved, by walking back over the atoms on the current
//     path.
//
// Ring-closure numbers in the output are allocated from 1 upwards in the
// order the ring sizes are read.
//
// Pop operators that empty the stack before another atom follows are
// rejected with [token.ErrDetached], and a ')' with no open parenthesis in
// rings-only input is rejected with [token.ErrUnbalanced]; neither input
// describes a connected molecule.
//
// All failures are returned as *[token.DecodeErr].
package decode
