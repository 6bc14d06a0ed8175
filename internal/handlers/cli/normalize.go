package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NormalizeArgs marks where the alias words start by inserting "--" before
// the first word that is neither a known flag nor a subcommand. Everything
// after it reaches dispatch verbatim, so `q -la` and `q show -l` name aliases
// instead of failing flag parsing. Arguments already holding "--" are kept.
func NormalizeArgs(root *cobra.Command, args []string) []string {
	root.InitDefaultHelpCmd()
	root.InitDefaultHelpFlag()
	root.InitDefaultVersionFlag()

	current := root
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args
		case len(arg) > 1 && strings.HasPrefix(arg, "-"):
			flag, inlineValue := lookupFlag(root, current, arg)
			if flag == nil {
				return withTerminator(args, i)
			}
			if !inlineValue && flag.NoOptDefVal == "" {
				i++ // the next word is the flag's value
			}
		case current == root:
			sub := findSubcommand(root, arg)
			if sub == nil {
				return withTerminator(args, i)
			}
			if sub.Name() == "help" {
				return args
			}
			current = sub
		default:
			return withTerminator(args, i)
		}
	}
	return args
}

// lookupFlag resolves a "--name", "--name=value", "-x" or "-xvalue" word.
func lookupFlag(root, current *cobra.Command, arg string) (*pflag.Flag, bool) {
	sets := []*pflag.FlagSet{root.PersistentFlags(), root.Flags(), current.Flags()}

	if strings.HasPrefix(arg, "--") {
		name, _, inlineValue := strings.Cut(arg[2:], "=")
		for _, set := range sets {
			if flag := set.Lookup(name); flag != nil {
				return flag, inlineValue
			}
		}
		return nil, false
	}

	shorthand := arg[1:2]
	inlineValue := len(arg) > 2
	for _, set := range sets {
		if flag := set.ShorthandLookup(shorthand); flag != nil {
			return flag, inlineValue
		}
	}
	return nil, false
}

func findSubcommand(root *cobra.Command, name string) *cobra.Command {
	for _, sub := range root.Commands() {
		if sub.Name() == name || sub.HasAlias(name) {
			return sub
		}
	}
	return nil
}

func withTerminator(args []string, at int) []string {
	out := make([]string, 0, len(args)+1)
	out = append(out, args[:at]...)
	out = append(out, "--")
	return append(out, args[at:]...)
}
