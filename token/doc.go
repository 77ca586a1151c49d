// Package token provides the lexical layer shared by the DeepSMILES encoder
// and decoders.
//
// [Tokenize] splits a SMILES or DeepSMILES string into atoms, bond symbols,
// ring-closure numerals and branch symbols. [Scanner] does the same one token
// at a time.
//
// Ring-closure numerals are read according to a [Notation]: [SMILES] accepts a
// single digit, '%' followed by exactly two digits, or '%(' number ')'.
// [DeepSMILES] additionally prefers a third digit after '%NN' when one
// follows.
//
// Failures are reported as [*DecodeErr], which carries the input, the byte
// offset of the fault and a sentinel error from this package.
package token
