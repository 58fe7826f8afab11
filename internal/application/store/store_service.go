package store

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lmsales/backend/internal/domain/identity"
	"github.com/lmsales/backend/internal/domain/shared"
	"github.com/lmsales/backend/internal/domain/store"
	"github.com/lmsales/backend/internal/infrastructure/csvio"
)

// StoreService handles admin store provisioning: stores and their bound
// login accounts are managed together.
type StoreService struct {
	storeRepo store.Repository
	userRepo  identity.UserRepository
	logger    *zap.Logger
}

// NewStoreService creates a new store provisioning service
func NewStoreService(storeRepo store.Repository, userRepo identity.UserRepository, logger *zap.Logger) *StoreService {
	return &StoreService{
		storeRepo: storeRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// List returns every store with its login account.
func (s *StoreService) List(ctx context.Context, actor identity.Actor) ([]StoreView, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	stores, err := s.storeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]StoreView, 0, len(stores))
	for _, st := range stores {
		views = append(views, s.toView(ctx, st))
	}
	return views, nil
}

// Get returns one store by ID.
func (s *StoreService) Get(ctx context.Context, actor identity.Actor, id uuid.UUID) (*StoreView, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	st, err := s.storeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.toView(ctx, st)
	return &view, nil
}

// Create provisions a new store and its login account. The store code and
// the username must both be unused.
func (s *StoreService) Create(ctx context.Context, actor identity.Actor, input CreateStoreInput) (*StoreView, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	if _, err := s.storeRepo.FindByCode(ctx, input.Code); err == nil {
		return nil, shared.NewDomainError("STORE_CODE_TAKEN", "A store with this code already exists")
	}
	if _, err := s.userRepo.FindByUsername(ctx, input.Username); err == nil {
		return nil, shared.NewDomainError("USERNAME_TAKEN", "A user with this username already exists")
	}

	st, err := store.NewStore(input.Code, input.Name)
	if err != nil {
		return nil, err
	}
	if input.TaxRate != nil {
		if err := st.SetTaxRate(*input.TaxRate); err != nil {
			return nil, err
		}
	}

	user, err := identity.NewStoreUser(input.Username, input.Password, st.ID)
	if err != nil {
		return nil, err
	}

	if err := s.storeRepo.Save(ctx, st); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		// Roll the store back so a half-provisioned store does not linger.
		if delErr := s.storeRepo.Delete(ctx, st.ID); delErr != nil {
			s.logger.Error("Failed to roll back store after user save failure",
				zap.String("store_id", st.ID.String()), zap.Error(delErr))
		}
		return nil, err
	}

	s.logger.Info("Store provisioned",
		zap.String("store_id", st.ID.String()),
		zap.String("code", st.Code),
		zap.String("username", user.Username))

	view := s.toView(ctx, st)
	return &view, nil
}

// Update changes a store's name, tax rate, or its account's credentials.
func (s *StoreService) Update(ctx context.Context, actor identity.Actor, id uuid.UUID, input UpdateStoreInput) (*StoreView, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	st, err := s.storeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := st.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.TaxRate != nil {
		if err := st.SetTaxRate(*input.TaxRate); err != nil {
			return nil, err
		}
	}
	if err := s.storeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	if input.Username != nil || input.Password != nil {
		user, err := s.userRepo.FindByStoreID(ctx, id)
		if err != nil {
			return nil, err
		}
		if input.Username != nil && *input.Username != user.Username {
			if _, err := s.userRepo.FindByUsername(ctx, *input.Username); err == nil {
				return nil, shared.NewDomainError("USERNAME_TAKEN", "A user with this username already exists")
			}
			if err := user.Rename(*input.Username); err != nil {
				return nil, err
			}
		}
		if input.Password != nil {
			if err := user.ChangePassword(*input.Password); err != nil {
				return nil, err
			}
		}
		if err := s.userRepo.Save(ctx, user); err != nil {
			return nil, err
		}
	}

	view := s.toView(ctx, st)
	return &view, nil
}

// Delete removes a store and its login account. The database cascades
// the store's records and targets.
func (s *StoreService) Delete(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}

	if _, err := s.storeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.DeleteByStoreID(ctx, id); err != nil {
		return err
	}
	if err := s.storeRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Store deleted", zap.String("store_id", id.String()))
	return nil
}

// ImportProvisioning applies a provisioning CSV: each row upserts a store
// by code, creating the store and its account or updating both in place.
// Rows are processed independently; one bad row never stops the rest.
func (s *StoreService) ImportProvisioning(ctx context.Context, actor identity.Actor, r io.Reader) (*ProvisionResult, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	rows, errs, err := csvio.ParseStoreProvisioning(r)
	if err != nil {
		return nil, err
	}

	result := &ProvisionResult{}
	for _, row := range rows {
		created, err := s.applyProvisionRow(ctx, row)
		if err != nil {
			s.logger.Warn("Provisioning row failed",
				zap.Int("row", row.Row), zap.String("code", row.Code), zap.Error(err))
			errs.Add(csvio.NewRowError(row.Row, csvio.ErrCodePersistence, err.Error(), row.Code))
			continue
		}
		result.SuccessCount++
		if created {
			result.CreatedCount++
		} else {
			result.UpdatedCount++
		}
	}

	result.ErrorCount = errs.TotalCount()
	result.ErrorDetails = errs.Errors()
	result.IsTruncated = errs.IsTruncated()

	s.logger.Info("Provisioning import finished",
		zap.Int("success", result.SuccessCount),
		zap.Int("created", result.CreatedCount),
		zap.Int("updated", result.UpdatedCount),
		zap.Int("errors", result.ErrorCount))

	return result, nil
}

func (s *StoreService) applyProvisionRow(ctx context.Context, row csvio.ParsedStore) (created bool, err error) {
	st, err := s.storeRepo.FindByCode(ctx, row.Code)
	switch {
	case err == nil:
		if err := st.Rename(row.Name); err != nil {
			return false, err
		}
		if err := s.storeRepo.Save(ctx, st); err != nil {
			return false, err
		}

		user, err := s.userRepo.FindByStoreID(ctx, st.ID)
		if err != nil {
			return false, err
		}
		if row.Username != user.Username {
			if err := user.Rename(row.Username); err != nil {
				return false, err
			}
		}
		// The export writes a placeholder in the password column; a file
		// re-imported unchanged must not clobber real credentials.
		if row.Password != csvio.PasswordPlaceholder {
			if err := user.ChangePassword(row.Password); err != nil {
				return false, err
			}
		}
		return false, s.userRepo.Save(ctx, user)

	case errors.Is(err, shared.ErrNotFound):
		st, err := store.NewStore(row.Code, row.Name)
		if err != nil {
			return false, err
		}
		if row.Password == csvio.PasswordPlaceholder {
			return false, shared.NewDomainError("PASSWORD_REQUIRED",
				"A real password is required when creating a new store")
		}
		user, err := identity.NewStoreUser(row.Username, row.Password, st.ID)
		if err != nil {
			return false, err
		}
		if err := s.storeRepo.Save(ctx, st); err != nil {
			return false, err
		}
		if err := s.userRepo.Save(ctx, user); err != nil {
			return false, err
		}
		return true, nil

	default:
		return false, err
	}
}

// ExportProvisioning renders every store as a provisioning CSV row. The
// password column always carries the placeholder.
func (s *StoreService) ExportProvisioning(ctx context.Context, actor identity.Actor) ([]byte, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	stores, err := s.storeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]csvio.StoreExportRow, 0, len(stores))
	for _, st := range stores {
		username := ""
		if user, err := s.userRepo.FindByStoreID(ctx, st.ID); err == nil {
			username = user.Username
		}
		rows = append(rows, csvio.StoreExportRow{
			Name:     st.Name,
			Code:     st.Code,
			Username: username,
		})
	}
	return csvio.SerializeStores(rows)
}

func (s *StoreService) toView(ctx context.Context, st *store.Store) StoreView {
	username := ""
	if user, err := s.userRepo.FindByStoreID(ctx, st.ID); err == nil {
		username = user.Username
	}
	return StoreView{
		ID:        st.ID,
		Code:      st.Code,
		Name:      st.Name,
		TaxRate:   st.TaxRate,
		Username:  username,
		CreatedAt: st.CreatedAt,
		UpdatedAt: st.UpdatedAt,
	}
}
