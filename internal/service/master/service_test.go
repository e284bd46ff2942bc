package master

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/nomina-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/nomina-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) branch.BranchService {
	t.Helper()
	store := memory.NewStore(fixtures.MustDefault())
	return NewBranchService(memory.NewBranchRepository(store))
}

func TestBranchService_List_SortedByName(t *testing.T) {
	t.Parallel()

	svc := setupTest(t)

	branches, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, branches, 3)
	assert.Equal(t, "Corporativo CDMX", branches[0].Name)
	assert.Equal(t, "Sucursal Guadalajara", branches[1].Name)
	assert.Equal(t, "Sucursal Monterrey", branches[2].Name)
}

func TestBranchService_Create_Success(t *testing.T) {
	t.Parallel()

	// Setup
	svc := setupTest(t)
	ctx := context.Background()

	// Act
	created, err := svc.Create(ctx, branch.CreateBranchRequest{Name: " Sucursal Puebla ", Code: "pue-centro"})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Sucursal Puebla", created.Name)
	assert.Equal(t, "PUE-CENTRO", created.Code)

	branches, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, branches, 4)
}

func TestBranchService_Create_DuplicateCode(t *testing.T) {
	t.Parallel()

	svc := setupTest(t)

	_, err := svc.Create(context.Background(), branch.CreateBranchRequest{Name: "Otra", Code: "mty-norte"})

	assert.ErrorIs(t, err, branch.ErrBranchCodeExists)
}

func TestBranchService_Create_ValidationError(t *testing.T) {
	t.Parallel()

	svc := setupTest(t)

	_, err := svc.Create(context.Background(), branch.CreateBranchRequest{Name: "", Code: "WITH SPACE"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}
