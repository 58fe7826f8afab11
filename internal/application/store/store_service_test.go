package store

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lmsales/backend/internal/domain/identity"
	"github.com/lmsales/backend/internal/domain/shared"
	"github.com/lmsales/backend/internal/domain/store"
	"github.com/lmsales/backend/internal/infrastructure/csvio"
)

// MockStoreRepository is a mock implementation of store.Repository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) FindAll(ctx context.Context) ([]*store.Store, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*store.Store), args.Error(1)
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *MockStoreRepository) FindByCode(ctx context.Context, code string) (*store.Store, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *MockStoreRepository) Save(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByStoreID(ctx context.Context, storeID uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, u *identity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByStoreID(ctx context.Context, storeID uuid.UUID) error {
	args := m.Called(ctx, storeID)
	return args.Error(0)
}

func adminActor() identity.Actor {
	return identity.Actor{UserID: uuid.New(), Username: "hq", Role: identity.RoleAdmin}
}

func storeActor(storeID uuid.UUID) identity.Actor {
	return identity.Actor{UserID: uuid.New(), Username: "shop", Role: identity.RoleStore, StoreID: &storeID}
}

func TestStoreService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("provisions store and bound user", func(t *testing.T) {
		storeRepo := new(MockStoreRepository)
		userRepo := new(MockUserRepository)
		storeRepo.On("FindByCode", ctx, "LM-001").Return(nil, shared.ErrNotFound)
		userRepo.On("FindByUsername", ctx, "shibuya").Return(nil, shared.ErrNotFound)
		storeRepo.On("Save", ctx, mock.AnythingOfType("*store.Store")).Return(nil)
		userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)
		userRepo.On("FindByStoreID", ctx, mock.Anything).Return(nil, shared.ErrNotFound).Maybe()

		svc := NewStoreService(storeRepo, userRepo, zap.NewNop())
		view, err := svc.Create(ctx, adminActor(), CreateStoreInput{
			Name:     "渋谷店",
			Code:     "lm-001",
			Username: "shibuya",
			Password: "pass1234",
		})

		require.NoError(t, err)
		assert.Equal(t, "LM-001", view.Code)
		assert.Equal(t, "渋谷店", view.Name)
		assert.True(t, view.TaxRate.Equal(decimal.New(10, -2)))
		storeRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate store code", func(t *testing.T) {
		existing, err := store.NewStore("LM-001", "既存店")
		require.NoError(t, err)

		storeRepo := new(MockStoreRepository)
		userRepo := new(MockUserRepository)
		storeRepo.On("FindByCode", ctx, "LM-001").Return(existing, nil)

		svc := NewStoreService(storeRepo, userRepo, zap.NewNop())
		_, err = svc.Create(ctx, adminActor(), CreateStoreInput{
			Name: "新店", Code: "LM-001", Username: "new", Password: "pass1234",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "STORE_CODE_TAKEN", domainErr.Code)
	})

	t.Run("rolls back the store when the user cannot be saved", func(t *testing.T) {
		storeRepo := new(MockStoreRepository)
		userRepo := new(MockUserRepository)
		storeRepo.On("FindByCode", ctx, "LM-002").Return(nil, shared.ErrNotFound)
		userRepo.On("FindByUsername", ctx, "ebisu").Return(nil, shared.ErrNotFound)
		storeRepo.On("Save", ctx, mock.AnythingOfType("*store.Store")).Return(nil)
		userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(assert.AnError)
		storeRepo.On("Delete", ctx, mock.Anything).Return(nil)

		svc := NewStoreService(storeRepo, userRepo, zap.NewNop())
		_, err := svc.Create(ctx, adminActor(), CreateStoreInput{
			Name: "恵比寿店", Code: "LM-002", Username: "ebisu", Password: "pass1234",
		})

		require.Error(t, err)
		storeRepo.AssertCalled(t, "Delete", ctx, mock.Anything)
	})

	t.Run("store users may not provision", func(t *testing.T) {
		svc := NewStoreService(new(MockStoreRepository), new(MockUserRepository), zap.NewNop())
		_, err := svc.Create(ctx, storeActor(uuid.New()), CreateStoreInput{
			Name: "x", Code: "X", Username: "xxx", Password: "pass1234",
		})
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})
}

func TestStoreService_Update(t *testing.T) {
	ctx := context.Background()

	st, err := store.NewStore("LM-001", "旧店名")
	require.NoError(t, err)
	user, err := identity.NewStoreUser("oldname", "pass1234", st.ID)
	require.NoError(t, err)

	storeRepo := new(MockStoreRepository)
	userRepo := new(MockUserRepository)
	storeRepo.On("FindByID", ctx, st.ID).Return(st, nil)
	storeRepo.On("Save", ctx, st).Return(nil)
	userRepo.On("FindByStoreID", ctx, st.ID).Return(user, nil)
	userRepo.On("FindByUsername", ctx, "newname").Return(nil, shared.ErrNotFound)
	userRepo.On("Save", ctx, user).Return(nil)

	newName := "新店名"
	newRate := decimal.New(8, -2)
	newUsername := "newname"

	svc := NewStoreService(storeRepo, userRepo, zap.NewNop())
	view, err := svc.Update(ctx, adminActor(), st.ID, UpdateStoreInput{
		Name:     &newName,
		TaxRate:  &newRate,
		Username: &newUsername,
	})

	require.NoError(t, err)
	assert.Equal(t, "新店名", view.Name)
	assert.True(t, view.TaxRate.Equal(newRate))
	assert.Equal(t, "newname", user.Username)
}

func TestStoreService_Delete(t *testing.T) {
	ctx := context.Background()

	st, err := store.NewStore("LM-001", "店")
	require.NoError(t, err)

	storeRepo := new(MockStoreRepository)
	userRepo := new(MockUserRepository)
	storeRepo.On("FindByID", ctx, st.ID).Return(st, nil)
	userRepo.On("DeleteByStoreID", ctx, st.ID).Return(nil)
	storeRepo.On("Delete", ctx, st.ID).Return(nil)

	svc := NewStoreService(storeRepo, userRepo, zap.NewNop())
	require.NoError(t, svc.Delete(ctx, adminActor(), st.ID))

	userRepo.AssertCalled(t, "DeleteByStoreID", ctx, st.ID)
	storeRepo.AssertCalled(t, "Delete", ctx, st.ID)
}

func TestStoreService_ImportProvisioning(t *testing.T) {
	ctx := context.Background()

	t.Run("creates new stores and updates existing ones", func(t *testing.T) {
		existing, err := store.NewStore("LM-001", "旧渋谷店")
		require.NoError(t, err)
		existingUser, err := identity.NewStoreUser("shibuya", "oldpass", existing.ID)
		require.NoError(t, err)

		storeRepo := new(MockStoreRepository)
		userRepo := new(MockUserRepository)
		storeRepo.On("FindByCode", ctx, "LM-001").Return(existing, nil)
		storeRepo.On("FindByCode", ctx, "LM-002").Return(nil, shared.ErrNotFound)
		storeRepo.On("Save", ctx, mock.AnythingOfType("*store.Store")).Return(nil)
		userRepo.On("FindByStoreID", ctx, existing.ID).Return(existingUser, nil)
		userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		csv := strings.Join([]string{
			"店舗名,店舗コード,ユーザー名,パスワード",
			"渋谷店,LM-001,shibuya,newpass",
			"恵比寿店,LM-002,ebisu,pass1234",
		}, "\n")

		svc := NewStoreService(storeRepo, userRepo, zap.NewNop())
		result, err := svc.ImportProvisioning(ctx, adminActor(), strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, 2, result.SuccessCount)
		assert.Equal(t, 1, result.CreatedCount)
		assert.Equal(t, 1, result.UpdatedCount)
		assert.Equal(t, 0, result.ErrorCount)
		assert.Equal(t, "渋谷店", existing.Name)
		assert.True(t, existingUser.CheckPassword("newpass"))
	})

	t.Run("placeholder password leaves credentials untouched", func(t *testing.T) {
		existing, err := store.NewStore("LM-001", "渋谷店")
		require.NoError(t, err)
		existingUser, err := identity.NewStoreUser("shibuya", "realpass", existing.ID)
		require.NoError(t, err)

		storeRepo := new(MockStoreRepository)
		userRepo := new(MockUserRepository)
		storeRepo.On("FindByCode", ctx, "LM-001").Return(existing, nil)
		storeRepo.On("Save", ctx, mock.Anything).Return(nil)
		userRepo.On("FindByStoreID", ctx, existing.ID).Return(existingUser, nil)
		userRepo.On("Save", ctx, mock.Anything).Return(nil)

		csv := "店舗名,店舗コード,ユーザー名,パスワード\n" +
			"渋谷店,LM-001,shibuya," + csvio.PasswordPlaceholder + "\n"

		svc := NewStoreService(storeRepo, userRepo, zap.NewNop())
		result, err := svc.ImportProvisioning(ctx, adminActor(), strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, 1, result.SuccessCount)
		assert.True(t, existingUser.CheckPassword("realpass"))
	})

	t.Run("bad rows are reported and the rest still apply", func(t *testing.T) {
		storeRepo := new(MockStoreRepository)
		userRepo := new(MockUserRepository)
		storeRepo.On("FindByCode", ctx, "LM-002").Return(nil, shared.ErrNotFound)
		storeRepo.On("Save", ctx, mock.Anything).Return(nil)
		userRepo.On("Save", ctx, mock.Anything).Return(nil)

		csv := strings.Join([]string{
			"店舗名,店舗コード,ユーザー名,パスワード",
			"欠損店,,missing,pass1234",
			"恵比寿店,LM-002,ebisu,pass1234",
		}, "\n")

		svc := NewStoreService(storeRepo, userRepo, zap.NewNop())
		result, err := svc.ImportProvisioning(ctx, adminActor(), strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, 1, result.SuccessCount)
		assert.Equal(t, 1, result.ErrorCount)
		require.Len(t, result.ErrorDetails, 1)
		assert.Equal(t, csvio.ErrCodeEmptyField, result.ErrorDetails[0].Code)
	})
}

func TestStoreService_ExportProvisioning(t *testing.T) {
	ctx := context.Background()

	st, err := store.NewStore("LM-001", "渋谷店")
	require.NoError(t, err)
	user, err := identity.NewStoreUser("shibuya", "pass1234", st.ID)
	require.NoError(t, err)

	storeRepo := new(MockStoreRepository)
	userRepo := new(MockUserRepository)
	storeRepo.On("FindAll", ctx).Return([]*store.Store{st}, nil)
	userRepo.On("FindByStoreID", ctx, st.ID).Return(user, nil)

	svc := NewStoreService(storeRepo, userRepo, zap.NewNop())
	data, err := svc.ExportProvisioning(ctx, adminActor())

	require.NoError(t, err)
	body := string(data)
	assert.Contains(t, body, "店舗名,店舗コード,ユーザー名,パスワード")
	assert.Contains(t, body, "渋谷店,LM-001,shibuya,"+csvio.PasswordPlaceholder)
	assert.NotContains(t, body, "pass1234")
}
