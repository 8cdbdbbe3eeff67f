package postgres

import (
	"context"
	"time"

	"guideflow/internal/domain/entity"
	domainerrors "guideflow/internal/domain/errors"
	"guideflow/internal/domain/repository"
	"guideflow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// feedbackRepository implements the repository.FeedbackRepository interface using GORM.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create persists a new feedback record. The guide reference is not verified
// against the guides table; feedback survives guide deletion as orphaned rows.
func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrRatingOutOfRange.WrapMessage("rating rejected by storage constraint")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required feedback information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.ID = feedbackM.ID
	feedback.CreatedAt = feedbackM.CreatedAt

	return nil
}

// feedbackWithAuthorRow is the scan target for the read-only author-name join.
type feedbackWithAuthorRow struct {
	ID         uuid.UUID
	GuideID    uuid.UUID
	AuthorID   uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
	AuthorName string
}

// ListByGuide retrieves all feedback for a guide with the author's display
// name joined in, ordered by creation time ascending for deterministic
// listings. Authors removed out-of-band surface with an empty name.
func (repo *feedbackRepository) ListByGuide(ctx context.Context, guideID uuid.UUID) ([]*entity.FeedbackWithAuthor, error) {
	var rows []feedbackWithAuthorRow

	if err := repo.db.WithContext(ctx).
		Model(&model.FeedbackModel{}).
		Select("feedback.id, feedback.guide_id, feedback.author_id, feedback.rating, feedback.comment, feedback.created_at, COALESCE(users.name, '') AS author_name").
		Joins("LEFT JOIN users ON users.id = feedback.author_id").
		Where("feedback.guide_id = ?", guideID).
		Order("feedback.created_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feedback by guide")
	}

	entries := make([]*entity.FeedbackWithAuthor, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &entity.FeedbackWithAuthor{
			Feedback: entity.Feedback{
				ID:        row.ID,
				GuideID:   row.GuideID,
				AuthorID:  row.AuthorID,
				Rating:    row.Rating,
				Comment:   row.Comment,
				CreatedAt: row.CreatedAt,
			},
			AuthorName: row.AuthorName,
		})
	}

	return entries, nil
}

// fromFeedbackDomain converts a domain Feedback entity to a GORM FeedbackModel.
func fromFeedbackDomain(data *entity.Feedback) *model.FeedbackModel {
	if data == nil {
		return nil
	}

	return &model.FeedbackModel{
		ID:       data.ID,
		GuideID:  data.GuideID,
		AuthorID: data.AuthorID,
		Rating:   data.Rating,
		Comment:  data.Comment,
	}
}
