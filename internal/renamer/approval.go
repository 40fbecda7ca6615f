package renamer

import "context"

// Approver decides whether a single planned rename may proceed. It may block
// for as long as it needs; traversal waits for the answer.
type Approver interface {
	Approve(ctx context.Context, plan Plan) (bool, error)
}

// ApproverFunc adapts a function to the Approver interface.
type ApproverFunc func(ctx context.Context, plan Plan) (bool, error)

// Approve calls f.
func (f ApproverFunc) Approve(ctx context.Context, plan Plan) (bool, error) {
	return f(ctx, plan)
}

// AutoApprove accepts every plan without asking.
var AutoApprove Approver = ApproverFunc(func(context.Context, Plan) (bool, error) {
	return true, nil
})

// DeclineAll rejects every plan. The engine falls back to it when no approver
// is configured.
var DeclineAll Approver = ApproverFunc(func(context.Context, Plan) (bool, error) {
	return false, nil
})
