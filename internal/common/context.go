package common

import "context"

type contextKey string

const BranchRIFKey contextKey = "branch_rif"

// WithBranchRIF attaches the current branch identifier to the context.
// Data access never reads the branch from anywhere else.
func WithBranchRIF(ctx context.Context, rif string) context.Context {
	return context.WithValue(ctx, BranchRIFKey, rif)
}

func GetBranchRIF(ctx context.Context) (string, bool) {
	rif, ok := ctx.Value(BranchRIFKey).(string)
	if !ok || rif == "" {
		return "", false
	}
	return rif, true
}
