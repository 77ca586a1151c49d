package deepsmiles

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	OptRings    = "rings"
	OptBranches = "branches"
)

// OptionNames lists the keys recognised by [FromOptions].
func OptionNames() []string {
	return []string{OptBranches, OptRings}
}

var ErrOptionType = errors.New("option value must be a boolean")

// ConfigErr reports an option key which was not recognised.
type ConfigErr struct {
	Key     string
	Allowed []string
}

func (e *ConfigErr) Error() string {
	return fmt.Sprintf("the specified option %q was not recognised; supported options are: %s",
		e.Key, strings.Join(e.Allowed, ", "))
}

// FromOptions builds a Converter from an option map such as one decoded from
// a configuration file. Every unrecognised key is reported by its own
// *ConfigErr; all failures are joined.
func FromOptions(opts map[string]any) (*Converter, error) {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var (
		c    = &Converter{}
		errs []error
	)
	for _, k := range keys {
		var dst *bool
		switch k {
		case OptRings:
			dst = &c.rings
		case OptBranches:
			dst = &c.branches
		default:
			errs = append(errs, &ConfigErr{Key: k, Allowed: OptionNames()})
			continue
		}
		v, ok := opts[k].(bool)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s is %T", ErrOptionType, k, opts[k]))
			continue
		}
		*dst = v
	}
	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}
