package relation

import (
	"context"

	"github.com/bogdanpracticum/foodgram-project-react/domain"
	"github.com/bogdanpracticum/foodgram-project-react/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// RelationRepository stores user edges of every RelationKind. Favorite and
	// shopping cart rows live in recipe_relations, subscriptions in their own
	// table because of the self-reference check.
	RelationRepository interface {
		Exists(ctx context.Context, kind domain.RelationKind, subjectID, objectID string) (bool, error)
		Create(ctx context.Context, kind domain.RelationKind, subjectID, objectID uuid.UUID) error
		Delete(ctx context.Context, kind domain.RelationKind, subjectID, objectID string) (int64, error)
		RelatedObjectIDs(ctx context.Context, kind domain.RelationKind, subjectID string, objectIDs []string) (map[string]bool, error)
	}

	relationRepository struct {
		db *gorm.DB
	}
)

func NewRelationRepository(db *gorm.DB) RelationRepository {
	return &relationRepository{db: db}
}

func (r *relationRepository) scope(ctx context.Context, kind domain.RelationKind) (*gorm.DB, string, error) {
	switch {
	case kind.IsRecipeRelation():
		return r.db.WithContext(ctx).
			Model(&entities.RecipeRelation{}).
			Where("kind = ?", string(kind)), "recipe_id", nil
	case kind == domain.RelationSubscription:
		return r.db.WithContext(ctx).Model(&entities.Subscription{}), "author_id", nil
	default:
		return nil, "", domain.ErrUnknownRelation
	}
}

func (r *relationRepository) Exists(ctx context.Context, kind domain.RelationKind, subjectID, objectID string) (bool, error) {
	query, objectColumn, err := r.scope(ctx, kind)
	if err != nil {
		return false, err
	}

	var count int64
	if err := query.
		Where("user_id = ? AND "+objectColumn+" = ?", subjectID, objectID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *relationRepository) Create(ctx context.Context, kind domain.RelationKind, subjectID, objectID uuid.UUID) error {
	switch {
	case kind.IsRecipeRelation():
		return r.db.WithContext(ctx).Create(&entities.RecipeRelation{
			UserID:   subjectID,
			RecipeID: objectID,
			Kind:     string(kind),
		}).Error
	case kind == domain.RelationSubscription:
		return r.db.WithContext(ctx).Create(&entities.Subscription{
			UserID:   subjectID,
			AuthorID: objectID,
		}).Error
	default:
		return domain.ErrUnknownRelation
	}
}

func (r *relationRepository) Delete(ctx context.Context, kind domain.RelationKind, subjectID, objectID string) (int64, error) {
	var result *gorm.DB
	switch {
	case kind.IsRecipeRelation():
		result = r.db.WithContext(ctx).
			Where("user_id = ? AND recipe_id = ? AND kind = ?", subjectID, objectID, string(kind)).
			Delete(&entities.RecipeRelation{})
	case kind == domain.RelationSubscription:
		result = r.db.WithContext(ctx).
			Where("user_id = ? AND author_id = ?", subjectID, objectID).
			Delete(&entities.Subscription{})
	default:
		return 0, domain.ErrUnknownRelation
	}
	return result.RowsAffected, result.Error
}

// RelatedObjectIDs returns the subset of objectIDs the subject is linked to.
func (r *relationRepository) RelatedObjectIDs(ctx context.Context, kind domain.RelationKind, subjectID string, objectIDs []string) (map[string]bool, error) {
	related := make(map[string]bool)
	if len(objectIDs) == 0 {
		return related, nil
	}

	query, objectColumn, err := r.scope(ctx, kind)
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := query.
		Where("user_id = ? AND "+objectColumn+" IN ?", subjectID, objectIDs).
		Pluck(objectColumn, &ids).Error; err != nil {
		return nil, err
	}

	for _, id := range ids {
		related[id] = true
	}
	return related, nil
}
