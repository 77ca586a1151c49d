package deepsmiles

import (
	"fmt"

	"github.com/baoilleach/deepsmiles/decode"
	"github.com/baoilleach/deepsmiles/encode"
	"github.com/baoilleach/deepsmiles/token"
)

// DecodeError is returned by [Converter.Decode] for malformed input.
type DecodeError = token.DecodeErr

type Option func(*Converter)

// Rings enables the ring-closure compaction.
func Rings(v bool) Option {
	return func(c *Converter) { c.rings = v }
}

// Branches enables the branch compaction.
func Branches(v bool) Option {
	return func(c *Converter) { c.branches = v }
}

// Converter converts between SMILES and one DeepSMILES variant. By default
// nothing is converted:
//
//  1. Rings(true), Branches(true) gives DeepSMILES/RS+PN
//  2. Rings(true) gives DeepSMILES/RS
//  3. Branches(true) gives DeepSMILES/PN
type Converter struct {
	rings    bool
	branches bool
}

func New(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Converter) Rings() bool {
	return c.rings
}

func (c *Converter) Branches() bool {
	return c.branches
}

// Encode encodes SMILES as DeepSMILES.
func (c *Converter) Encode(smiles string) string {
	return encode.Encode(smiles, encode.Rings(c.rings), encode.Branches(c.branches))
}

// Decode decodes DeepSMILES to SMILES. Errors are *DecodeError.
func (c *Converter) Decode(deepsmiles string) (string, error) {
	return decode.Decode(deepsmiles, decode.Rings(c.rings), decode.Branches(c.branches))
}

// Options returns the option map which [FromOptions] turns back into c.
func (c *Converter) Options() map[string]any {
	return map[string]any{
		OptRings:    c.rings,
		OptBranches: c.branches,
	}
}

func (c *Converter) String() string {
	return fmt.Sprintf("Converter(rings=%t, branches=%t)", c.rings, c.branches)
}
