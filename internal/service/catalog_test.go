package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sandwichapi/internal/model"
	"sandwichapi/internal/repository"
	repoMocks "sandwichapi/internal/repository/mocks"
	"sandwichapi/internal/testutil"
)

type resourceRepoMock = repoMocks.MockRepository[model.Resource, model.ResourceCreate, model.ResourceUpdate]

func TestResourceService_Scenario(t *testing.T) {
	ctx := context.Background()
	svc := NewResourceService(testutil.NewDB(t))

	created, err := svc.Create(ctx, model.ResourceCreate{Name: testutil.Ptr("Bolt"), Description: testutil.Ptr("M4x10"), Quantity: testutil.Ptr(100)})
	require.NoError(t, err)
	assert.Equal(t, &model.Resource{ID: 1, Name: "Bolt", Description: "M4x10", Quantity: 100}, created)

	updated, err := svc.Update(ctx, 1, model.ResourceUpdate{Quantity: testutil.Ptr(80)})
	require.NoError(t, err)
	assert.Equal(t, &model.Resource{ID: 1, Name: "Bolt", Description: "M4x10", Quantity: 80}, updated)

	require.NoError(t, svc.Delete(ctx, 1))

	_, ok, err := svc.ReadOne(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	rows, err := svc.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	assert.ErrorIs(t, svc.Delete(ctx, 1), repository.ErrNotFound)
}

func TestResourceService_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	svc := NewResourceService(testutil.NewDB(t))

	got, err := svc.Update(ctx, 999, model.ResourceUpdate{Name: testutil.Ptr("ghost")})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, got)

	rows, err := svc.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSandwichService(t *testing.T) {
	ctx := context.Background()
	svc := NewSandwichService(testutil.NewDB(t))

	price := decimal.RequireFromString("6.00")
	club, err := svc.Create(ctx, model.SandwichCreate{Name: testutil.Ptr("Club"), Description: testutil.Ptr("triple decker"), Price: &price})
	require.NoError(t, err)

	reuben, err := svc.Create(ctx, model.SandwichCreate{Name: testutil.Ptr("Reuben"), Description: testutil.Ptr("corned beef"), Price: testutil.Ptr(decimal.RequireFromString("9.75"))})
	require.NoError(t, err)

	rows, err := svc.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, club.ID, rows[0].ID)
	assert.Equal(t, reuben.ID, rows[1].ID)

	got, ok, err := svc.ReadOne(ctx, reuben.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "corned beef", got.Description)
	assert.True(t, decimal.RequireFromString("9.75").Equal(got.Price))

	_, ok, err = svc.ReadOne(ctx, 404)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCatalog_WriteRollsBack(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	seed, err := NewResourceService(db).Create(ctx, model.ResourceCreate{Name: testutil.Ptr("Bolt"), Description: testutil.Ptr("M4x10"), Quantity: testutil.Ptr(100)})
	require.NoError(t, err)

	repo := new(resourceRepoMock)
	svc := NewCatalog[model.Resource, model.ResourceCreate, model.ResourceUpdate](db, repo)

	repo.On("Update", mock.Anything, seed.ID, mock.Anything).
		Run(func(args mock.Arguments) {
			tx := args.Get(0).(*gorm.DB)
			require.NoError(t, tx.Model(&model.Resource{}).Where("id = ?", seed.ID).Update("quantity", 0).Error)
		}).
		Return(nil, errors.New("boom")).Once()

	got, err := svc.Update(ctx, seed.ID, model.ResourceUpdate{Quantity: testutil.Ptr(0)})
	assert.EqualError(t, err, "boom")
	assert.Nil(t, got)
	repo.AssertExpectations(t)

	after, ok, err := NewResourceService(db).ReadOne(ctx, seed.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 100, after.Quantity)
}

func TestCatalog_PropagatesRepositoryErrors(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	dbErr := errors.New("connection reset")

	tests := []struct {
		name string
		call func(svc ResourceService) error
		mock func(repo *resourceRepoMock)
	}{
		{
			name: "create",
			mock: func(repo *resourceRepoMock) {
				repo.On("Create", mock.Anything, mock.Anything).Return(nil, dbErr)
			},
			call: func(svc ResourceService) error {
				_, err := svc.Create(ctx, model.ResourceCreate{Name: testutil.Ptr("x"), Description: testutil.Ptr("y"), Quantity: testutil.Ptr(1)})
				return err
			},
		},
		{
			name: "read all",
			mock: func(repo *resourceRepoMock) {
				repo.On("ReadAll", mock.Anything).Return(nil, dbErr)
			},
			call: func(svc ResourceService) error {
				_, err := svc.ReadAll(ctx)
				return err
			},
		},
		{
			name: "read one",
			mock: func(repo *resourceRepoMock) {
				repo.On("ReadOne", mock.Anything, int64(3)).Return(nil, false, dbErr)
			},
			call: func(svc ResourceService) error {
				_, _, err := svc.ReadOne(ctx, 3)
				return err
			},
		},
		{
			name: "delete",
			mock: func(repo *resourceRepoMock) {
				repo.On("Delete", mock.Anything, int64(3)).Return(dbErr)
			},
			call: func(svc ResourceService) error {
				return svc.Delete(ctx, 3)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(resourceRepoMock)
			tt.mock(repo)
			svc := NewCatalog[model.Resource, model.ResourceCreate, model.ResourceUpdate](db, repo)

			assert.ErrorIs(t, tt.call(svc), dbErr)
			repo.AssertExpectations(t)
		})
	}
}
