package relation

import (
	"context"
	"errors"
	"strings"

	"github.com/bogdanpracticum/foodgram-project-react/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RelationService interface {
		AddRelation(ctx context.Context, kind domain.RelationKind, subjectID, objectID string) error
		RemoveRelation(ctx context.Context, kind domain.RelationKind, subjectID, objectID string) error
	}

	RecipeLookup interface {
		RecipeExists(ctx context.Context, id string) (bool, error)
	}

	UserLookup interface {
		UserExists(ctx context.Context, id string) (bool, error)
	}

	relationService struct {
		relationRepository RelationRepository
		recipes            RecipeLookup
		users              UserLookup
	}
)

func NewRelationService(relationRepository RelationRepository, recipes RecipeLookup, users UserLookup) RelationService {
	return &relationService{
		relationRepository: relationRepository,
		recipes:            recipes,
		users:              users,
	}
}

func (s *relationService) AddRelation(ctx context.Context, kind domain.RelationKind, subjectID, objectID string) error {
	if kind == domain.RelationSubscription && strings.EqualFold(subjectID, objectID) {
		return domain.ErrSelfSubscription
	}

	subjectUUID, err := uuid.Parse(subjectID)
	if err != nil {
		return domain.ErrTokenInvalid
	}
	objectUUID, err := s.resolveObject(ctx, kind, objectID)
	if err != nil {
		return err
	}

	exists, err := s.relationRepository.Exists(ctx, kind, subjectUUID.String(), objectUUID.String())
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrRelationExists
	}

	if err := s.relationRepository.Create(ctx, kind, subjectUUID, objectUUID); err != nil {
		// a concurrent request inserted the same pair after the check above
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrRelationExists
		}
		return err
	}
	return nil
}

func (s *relationService) RemoveRelation(ctx context.Context, kind domain.RelationKind, subjectID, objectID string) error {
	objectUUID, err := s.resolveObject(ctx, kind, objectID)
	if err != nil {
		return err
	}

	deleted, err := s.relationRepository.Delete(ctx, kind, subjectID, objectUUID.String())
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrRelationNotFound
	}
	return nil
}

// resolveObject parses objectID and checks that the recipe or user exists.
func (s *relationService) resolveObject(ctx context.Context, kind domain.RelationKind, objectID string) (uuid.UUID, error) {
	var (
		notFound error
		lookup   func(context.Context, string) (bool, error)
	)
	switch {
	case kind.IsRecipeRelation():
		notFound, lookup = domain.ErrRecipeNotFound, s.recipes.RecipeExists
	case kind == domain.RelationSubscription:
		notFound, lookup = domain.ErrUserNotFound, s.users.UserExists
	default:
		return uuid.Nil, domain.ErrUnknownRelation
	}

	objectUUID, err := uuid.Parse(objectID)
	if err != nil {
		return uuid.Nil, notFound
	}

	exists, err := lookup(ctx, objectUUID.String())
	if err != nil {
		return uuid.Nil, err
	}
	if !exists {
		return uuid.Nil, notFound
	}
	return objectUUID, nil
}
