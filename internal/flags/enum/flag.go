// Package enum provides a pflag.Value restricted to a fixed set of options.
// The first option is the default.
package enum

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// Flag is a string flag that only accepts one of its options.
type Flag struct {
	options []string
	value   string
}

var _ pflag.Value = (*Flag)(nil)

// New returns a Flag defaulting to options[0]. Panics without options.
func New(options ...string) *Flag {
	if len(options) == 0 {
		panic("enum: at least one option is required")
	}

	return &Flag{options: options, value: options[0]}
}

// String returns the current value.
func (f *Flag) String() string { return f.value }

// Set accepts value if it is one of the options, and otherwise leaves the
// current value unchanged.
func (f *Flag) Set(value string) error {
	if !slices.Contains(f.options, value) {
		return fmt.Errorf("invalid value %q, must be one of [%s]", value, strings.Join(f.options, ", "))
	}
	f.value = value

	return nil
}

// Type implements pflag.Value.
func (f *Flag) Type() string { return "enum" }

// Options returns the accepted values in declaration order.
func (f *Flag) Options() []string { return slices.Clone(f.options) }

// Var defines an enum flag on flagset.
func Var(flagset *pflag.FlagSet, name string, options []string, usage string) {
	VarP(flagset, name, "", options, usage)
}

// VarP is like Var but accepts a shorthand letter.
func VarP(flagset *pflag.FlagSet, name, shorthand string, options []string, usage string) {
	flagset.VarP(New(options...), name, shorthand, usage)
}

// Get returns the value of the enum flag called name.
func Get(flagset *pflag.FlagSet, name string) (string, error) {
	flag := flagset.Lookup(name)
	if flag == nil {
		return "", fmt.Errorf("flag %q not defined", name)
	}
	value, ok := flag.Value.(*Flag)
	if !ok {
		return "", fmt.Errorf("flag %q is not an enum flag", name)
	}

	return value.String(), nil
}
