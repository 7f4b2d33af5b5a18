package builder

import "fmt"

// UnsupportedFeatureError reports a construct the builder does not model
// yet. It marks valid JavaScript outside the supported subset, never a
// malformed program: syntax errors surface from the parser instead.
type UnsupportedFeatureError struct {
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("%s is not supported yet", e.Feature)
}

// MissingResultError reports a production none of whose alternatives
// produced a result. A well-formed parse matches exactly one alternative
// per production, so this is a defect in the tree or the dispatch tables,
// not in the input.
type MissingResultError struct {
	Rule string
}

func (e *MissingResultError) Error() string {
	return fmt.Sprintf("no alternative of %s produced a result", e.Rule)
}
