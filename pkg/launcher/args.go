package launcher

import "strings"

// SerializeActivationArgs flattens an argument list into the single
// string the application activation service takes. Each argument is
// double-quoted; literal quotes are escaped by tripling them, which is
// how the Windows shell quoting rules round-trip a quote inside a quoted
// region. See https://stackoverflow.com/questions/7760545
func SerializeActivationArgs(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		quoted = append(quoted, `"`+strings.ReplaceAll(arg, `"`, `"""`)+`"`)
	}
	return strings.Join(quoted, " ")
}
