package postgres

import (
	"context"

	"guideflow/internal/domain/entity"
	domainerrors "guideflow/internal/domain/errors"
	"guideflow/internal/domain/repository"
	"guideflow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// guideRepository implements the repository.GuideRepository interface using GORM.
type guideRepository struct {
	db *gorm.DB
}

// NewGuideRepository is the constructor for guideRepository.
func NewGuideRepository(db *gorm.DB) repository.GuideRepository {
	return &guideRepository{db: db}
}

// Create persists a new guide document, steps embedded as JSONB.
func (repo *guideRepository) Create(ctx context.Context, guide *entity.Guide) error {
	guideM := fromGuideDomain(guide)

	if err := repo.db.WithContext(ctx).Create(guideM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required guide information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create guide")
	}

	// Update the entity with generated values
	guide.ID = guideM.ID
	guide.CreatedAt = guideM.CreatedAt
	guide.UpdatedAt = guideM.UpdatedAt

	return nil
}

// FindByID retrieves a single guide by its unique ID.
func (repo *guideRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guide, error) {
	var guideM model.GuideModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&guideM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGuideNotFound
		}

		return nil, errors.Wrap(err, "failed to find guide by id")
	}

	return toGuideDomain(&guideM), nil
}

// ListByOwner retrieves all guides owned by the given account, newest first.
func (repo *guideRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Guide, error) {
	var guideModels []model.GuideModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&guideModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list guides by owner")
	}

	guides := make([]*entity.Guide, 0, len(guideModels))
	for i := range guideModels {
		guides = append(guides, toGuideDomain(&guideModels[i]))
	}

	return guides, nil
}

// Update wholesale-replaces the guide's title, description, and steps.
// Owner and creation timestamp are deliberately excluded from the update set.
func (repo *guideRepository) Update(ctx context.Context, guide *entity.Guide) error {
	guideM := fromGuideDomain(guide)

	result := repo.db.WithContext(ctx).
		Model(&model.GuideModel{}).
		Where("id = ?", guide.ID).
		Updates(map[string]any{
			"title":       guideM.Title,
			"description": guideM.Description,
			"steps":       guideM.Steps,
		})
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "missing required guide information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update guide")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGuideNotFound
	}

	return nil
}

// Delete permanently removes the guide. Feedback rows keep their now-dangling
// guide reference; the orphan policy is documented at the feedback repository.
func (repo *guideRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GuideModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete guide")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGuideNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toGuideDomain converts a GORM GuideModel to a domain Guide entity.
func toGuideDomain(data *model.GuideModel) *entity.Guide {
	if data == nil {
		return nil
	}

	steps := make([]entity.Step, 0, len(data.Steps))
	for _, step := range data.Steps {
		steps = append(steps, entity.Step{
			Title:       step.Title,
			Description: step.Description,
			ImageURL:    step.ImageURL,
			Order:       step.Order,
		})
	}

	return &entity.Guide{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Steps:       steps,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromGuideDomain converts a domain Guide entity to a GORM GuideModel.
func fromGuideDomain(data *entity.Guide) *model.GuideModel {
	if data == nil {
		return nil
	}

	steps := make(model.StepList, 0, len(data.Steps))
	for _, step := range data.Steps {
		steps = append(steps, model.StepDocument{
			Title:       step.Title,
			Description: step.Description,
			ImageURL:    step.ImageURL,
			Order:       step.Order,
		})
	}

	return &model.GuideModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Steps:       steps,
		OwnerID:     data.OwnerID,
	}
}
