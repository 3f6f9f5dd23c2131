package registry

import (
	"strconv"
	"strings"
)

// ParseRef splits a compact reference of the form "name:arg1,arg2"
// into its name and arguments. Arguments that parse as integers,
// floats or the literals true and false are converted; everything else stays a trimmed
// string. Without a colon the whole string is the name.
//
// Examples:
//
//	"size"           -> ("size", nil)
//	"elementAt:0"    -> ("elementAt", [0])
//	"between:1, 2.5" -> ("between", [1 2.5])
//	"startsWith:He"  -> ("startsWith", ["He"])
func ParseRef(s string) (name string, args []any) {
	parts := strings.SplitN(s, ":", 2)
	name = strings.TrimSpace(parts[0])

	if len(parts) > 1 {
		for _, raw := range strings.Split(parts[1], ",") {
			args = append(args, parseArg(strings.TrimSpace(raw)))
		}
	}
	return name, args
}

func parseArg(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
