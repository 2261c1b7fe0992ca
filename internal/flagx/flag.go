// Package flagx lets several independent flag sets share one command line.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the arguments that belong to the named flags, keeping
// their values and order. Names are given without dashes and match both the
// -name and --name spellings.
//
// Supported formats:
//
//	-d tokens.db
//	--db=tokens.db
//
// A bare flag followed by a token starting with "-" is kept without a value,
// so boolean-style usage does not swallow the next flag.
func FilterArgs(args []string, names ...string) []string {
	allowed := make(map[string]struct{}, len(names))
	for _, n := range names {
		allowed[n] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, hasValue := flagName(arg)
		if name == "" {
			continue
		}
		if _, ok := allowed[name]; !ok {
			continue
		}

		filtered = append(filtered, arg)
		if !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// flagName strips the dashes and any "=value" part. It returns "" for
// positional arguments and for the "--" terminator.
func flagName(arg string) (name string, hasValue bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", false
	}
	name = strings.TrimLeft(arg, "-")
	if i := strings.IndexByte(name, '='); i >= 0 {
		return name[:i], true
	}
	return name, false
}

// ConfigPath returns the JSON config file named by -c or -config in args. It
// falls back to fallback (usually an environment variable) when neither flag
// is present. The last occurrence wins.
func ConfigPath(args []string, fallback string) string {
	path := fallback

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", path, "path to config file")
	fs.StringVar(&path, "c", path, "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, "c", "config"))

	return path
}
