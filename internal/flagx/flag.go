// Package flagx lets several independent flag sets share os.Args by
// pre-filtering the arguments each one understands.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the subset of args that belongs to the given flags.
//
// Flags listed in valued take a value, either as "-f value" or "-f=value";
// a separate value is consumed only when it does not itself start with "-".
// Flags listed in bare are booleans and never consume the next argument, so
// "-w positional" keeps "positional" out of the result.
//
// The result is never nil and preserves argument order.
func FilterArgs(args []string, valued []string, bare ...string) []string {
	takesValue := make(map[string]bool, len(valued)+len(bare))
	for _, f := range valued {
		takesValue[f] = true
	}
	for _, f := range bare {
		takesValue[f] = false
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := takesValue[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		hasValue, ok := takesValue[arg]
		if !ok {
			continue
		}
		filtered = append(filtered, arg)
		if hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// JsonConfigFlags returns the config file path given via -c or -config,
// or "" when neither is present. Other arguments are ignored.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}
