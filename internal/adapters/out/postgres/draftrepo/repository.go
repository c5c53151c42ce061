package draftrepo

import (
	"context"
	"errors"

	"errand/internal/core/domain/model/draft"
	"errand/internal/core/domain/model/kernel"
	"errand/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDraftSessionRepository implements DraftSessionRepository using GORM.
type GormDraftSessionRepository struct {
	db *gorm.DB
}

func NewGormDraftSessionRepository(db *gorm.DB) *GormDraftSessionRepository {
	return &GormDraftSessionRepository{db: db}
}

func (r *GormDraftSessionRepository) Add(ctx context.Context, session *draft.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	dto := fromDomain(session)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update replaces the stored contents of a session.
func (r *GormDraftSessionRepository) Update(ctx context.Context, session *draft.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	dto := fromDomain(session)
	result := r.db.WithContext(ctx).Model(&SessionDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"payload":    dto.Payload,
		"updated_at": dto.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("draft session", session.ID().String())
	}

	return nil
}

func (r *GormDraftSessionRepository) Get(ctx context.Context, id kernel.UUID) (*draft.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("draft session", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete clears a session. A missing session is not an error.
func (r *GormDraftSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&SessionDTO{}, "id = ?", id.Bytes()).Error
}
