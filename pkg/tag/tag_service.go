package tag

import (
	"context"
	"errors"
	"strings"

	"github.com/bogdanpracticum/foodgram-project-react/domain"
	"github.com/bogdanpracticum/foodgram-project-react/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TagService interface {
		GetTags(ctx context.Context) ([]domain.TagResponse, error)
		GetTag(ctx context.Context, id string) (domain.TagResponse, error)
		CreateTag(ctx context.Context, req domain.CreateTagRequest, viewer *domain.Viewer) (domain.TagResponse, error)
	}

	tagService struct {
		tagRepository TagRepository
	}
)

func NewTagService(tagRepository TagRepository) TagService {
	return &tagService{tagRepository: tagRepository}
}

func (s *tagService) GetTags(ctx context.Context) ([]domain.TagResponse, error) {
	tags, err := s.tagRepository.GetTags(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.TagResponse, 0, len(tags))
	for _, tag := range tags {
		responses = append(responses, domain.NewTagResponse(tag))
	}
	return responses, nil
}

func (s *tagService) GetTag(ctx context.Context, id string) (domain.TagResponse, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return domain.TagResponse{}, domain.ErrTagNotFound
	}

	tag, err := s.tagRepository.GetTagByID(ctx, parsed.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TagResponse{}, domain.ErrTagNotFound
		}
		return domain.TagResponse{}, err
	}
	return domain.NewTagResponse(tag), nil
}

func (s *tagService) CreateTag(ctx context.Context, req domain.CreateTagRequest, viewer *domain.Viewer) (domain.TagResponse, error) {
	if !viewer.IsAuthenticated() {
		return domain.TagResponse{}, domain.ErrTokenNotFound
	}
	if !viewer.IsAdmin() {
		return domain.TagResponse{}, domain.ErrNotAdmin
	}

	tag := &entities.Tag{
		Name:  req.Name,
		Color: strings.ToUpper(req.Color),
		Slug:  req.Slug,
	}
	if err := s.tagRepository.CreateTag(ctx, tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.TagResponse{}, domain.ErrTagExists
		}
		return domain.TagResponse{}, err
	}
	return domain.NewTagResponse(tag), nil
}
