package leave

import "context"

type LeaveRequestRepository interface {
	GetDetail(ctx context.Context, requestID string) (RequestDetail, error)
}
