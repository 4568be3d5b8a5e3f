package main

import "strings"

// parseFlags splits args into positional arguments and --name=value flags,
// the same ad hoc style the teacher CLI uses to filter optimization flags
// out of its "run" command's argument list.
func parseFlags(args []string) (positional []string, flags map[string]string) {
	flags = map[string]string{}
	for _, a := range args {
		if strings.HasPrefix(a, "--") {
			name, value, hasValue := strings.Cut(strings.TrimPrefix(a, "--"), "=")
			if !hasValue {
				value = "true"
			}
			flags[name] = value
			continue
		}
		positional = append(positional, a)
	}
	return positional, flags
}

func joinPositional(positional []string) string {
	return strings.Join(positional, " ")
}
