package branch

import "context"

type BranchService interface {
	List(ctx context.Context) ([]BranchResponse, error)
	Create(ctx context.Context, req CreateBranchRequest) (BranchResponse, error)
}
