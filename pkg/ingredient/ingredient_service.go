package ingredient

import (
	"context"
	"errors"
	"strings"

	"github.com/bogdanpracticum/foodgram-project-react/domain"
	"github.com/bogdanpracticum/foodgram-project-react/entities"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		SearchIngredients(ctx context.Context, namePrefix string) ([]domain.IngredientResponse, error)
		GetIngredient(ctx context.Context, id string) (domain.IngredientResponse, error)
		ImportIngredients(ctx context.Context, items []domain.IngredientImportItem) (domain.IngredientImportResult, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) SearchIngredients(ctx context.Context, namePrefix string) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.SearchIngredients(ctx, strings.TrimSpace(namePrefix))
	if err != nil {
		return nil, err
	}

	responses := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		responses = append(responses, domain.NewIngredientResponse(ingredient))
	}
	return responses, nil
}

func (s *ingredientService) GetIngredient(ctx context.Context, id string) (domain.IngredientResponse, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return domain.IngredientResponse{}, domain.ErrIngredientNotFound
	}

	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, parsed.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}
	return domain.NewIngredientResponse(ingredient), nil
}

// ImportIngredients loads catalog items. Blank items, repeats inside the batch
// and pairs already stored are counted as skipped, so running the same
// catalog twice creates nothing the second time.
func (s *ingredientService) ImportIngredients(ctx context.Context, items []domain.IngredientImportItem) (domain.IngredientImportResult, error) {
	type key struct{ name, unit string }

	seen := make(map[key]struct{}, len(items))
	ingredients := make([]*entities.Ingredient, 0, len(items))
	for _, item := range items {
		k := key{strings.TrimSpace(item.Name), strings.TrimSpace(item.MeasurementUnit)}
		if k.name == "" || k.unit == "" {
			log.Warnf("skipping incomplete ingredient %q (%q)", item.Name, item.MeasurementUnit)
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		ingredients = append(ingredients, &entities.Ingredient{Name: k.name, MeasurementUnit: k.unit})
	}

	created, err := s.ingredientRepository.CreateIngredientsIgnoreExisting(ctx, ingredients)
	if err != nil {
		return domain.IngredientImportResult{}, err
	}

	return domain.IngredientImportResult{
		Created: int(created),
		Skipped: len(items) - int(created),
	}, nil
}
