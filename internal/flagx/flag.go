// Package flagx holds small helpers for layering command-line flags over
// the JSON configuration file.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the flags listed in allowedFlags (and their values)
// so a component can parse its own flags without tripping over others.
//
// Both "-c conf.json" and "--config=conf.json" forms are recognised. A
// separate value is taken only when it does not itself look like a flag.
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// JsonConfigFlags returns the config file path given with -c or -config on
// the process command line, or "" when none was given.
func JsonConfigFlags() string {
	return JsonConfigFlagsFrom(os.Args[1:])
}

// JsonConfigFlagsFrom is JsonConfigFlags over an explicit argument list.
// Double-dash spellings (--config, --c) are accepted too, which is what
// cobra-style command lines use.
func JsonConfigFlagsFrom(args []string) string {
	var config string

	filtered := FilterArgs(args, []string{"-c", "-config", "--c", "--config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(filtered)

	return config
}
