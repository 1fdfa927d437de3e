package domain

// PrefixFlags prepends the compiler's flag marker to each aggregated option
// word, e.g. "deprecation" becomes "-deprecation".
func PrefixFlags(opts []string) []string {
	if len(opts) == 0 {
		return nil
	}
	out := make([]string, len(opts))
	for i, opt := range opts {
		out[i] = "-" + opt
	}
	return out
}
