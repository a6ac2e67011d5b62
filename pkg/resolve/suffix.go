// pkg/resolve/suffix.go
package resolve

import (
	"strings"

	"github.com/creativeyann17/go-pixz/pkg/config"
)

// suffixRule replaces a trailing Strip with Append for one operation
type suffixRule struct {
	Op     config.Operation
	Strip  string
	Append string
}

// Rules are tried in order; the first match wins.
var suffixRules = []suffixRule{
	{config.OpDecompress, ".tar.xz", ".tar"},
	{config.OpDecompress, ".tpxz", ".tar"},
	{config.OpDecompress, ".xz", ""},
	{config.OpCompress, ".tar", ".tpxz"},
	{config.OpCompress, "", ".xz"},
}

// DeriveOutput infers an output path from in for op.
// It returns false when no rule matches or the result would be empty.
func DeriveOutput(op config.Operation, in string) (string, bool) {
	for _, rule := range suffixRules {
		if rule.Op != op {
			continue
		}
		if out, ok := substituteSuffix(in, rule.Strip, rule.Append); ok && out != "" {
			return out, true
		}
	}
	return "", false
}

// substituteSuffix is a plain, case-sensitive string comparison; it knows
// nothing about path separators or extension boundaries.
func substituteSuffix(in, strip, add string) (string, bool) {
	if len(in) < len(strip) || !strings.HasSuffix(in, strip) {
		return "", false
	}
	return in[:len(in)-len(strip)] + add, true
}
