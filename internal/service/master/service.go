package master

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/master/branch"
	"github.com/google/uuid"
)

type BranchServiceImpl struct {
	branchRepo branch.BranchRepository
}

func NewBranchService(branchRepo branch.BranchRepository) branch.BranchService {
	return &BranchServiceImpl{branchRepo: branchRepo}
}

// ==================== BRANCH OPERATIONS ====================

func (s *BranchServiceImpl) List(ctx context.Context) ([]branch.BranchResponse, error) {
	branches, err := s.branchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })

	responses := make([]branch.BranchResponse, 0, len(branches))
	for _, b := range branches {
		responses = append(responses, branch.ToResponse(b))
	}
	return responses, nil
}

func (s *BranchServiceImpl) Create(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	exists, err := s.branchRepo.ExistsByCode(ctx, code)
	if err != nil {
		return branch.BranchResponse{}, fmt.Errorf("failed to check branch code: %w", err)
	}
	if exists {
		return branch.BranchResponse{}, branch.ErrBranchCodeExists
	}

	created, err := s.branchRepo.Create(ctx, branch.Branch{
		ID:   uuid.NewString(),
		Name: strings.TrimSpace(req.Name),
		Code: code,
	})
	if err != nil {
		return branch.BranchResponse{}, fmt.Errorf("failed to create branch: %w", err)
	}

	slog.Info("branch created", "branch_id", created.ID, "code", created.Code)
	return branch.ToResponse(created), nil
}
