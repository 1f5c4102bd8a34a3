package recipe

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bogdanpracticum/foodgram-project-react/domain"
	"github.com/bogdanpracticum/foodgram-project-react/entities"
	"github.com/bogdanpracticum/foodgram-project-react/internal/testutil"
	"github.com/bogdanpracticum/foodgram-project-react/pkg/relation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const pngDataURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

type userLookup struct {
	db *gorm.DB
}

func (l userLookup) UserExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := l.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

type failingCreateRepository struct {
	RecipeRepository
}

func (r failingCreateRepository) CreateRecipe(context.Context, *entities.Recipe, []*entities.Tag, []*entities.IngredientInRecipe) error {
	return errors.New("connection reset")
}

type fixture struct {
	db        *gorm.DB
	repo      RecipeRepository
	relations relation.RelationService
	s3        *testutil.FakeS3
	service   RecipeService

	alice, bob, admin *entities.User
	breakfast, lunch  *entities.Tag
	salt, sugar, egg  *entities.Ingredient
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewTestDB(t)
	f := &fixture{
		db:        db,
		repo:      NewRecipeRepository(db),
		s3:        &testutil.FakeS3{},
		alice:     testutil.CreateUser(t, db, "alice"),
		bob:       testutil.CreateUser(t, db, "bob"),
		admin:     testutil.CreateUser(t, db, "admin"),
		breakfast: testutil.CreateTag(t, db, "breakfast", "#E26C2D"),
		lunch:     testutil.CreateTag(t, db, "lunch", "#49B64E"),
		salt:      testutil.CreateIngredient(t, db, "Salt", "g"),
		sugar:     testutil.CreateIngredient(t, db, "Sugar", "g"),
		egg:       testutil.CreateIngredient(t, db, "Egg", "pcs"),
	}
	require.NoError(t, db.Model(f.admin).Update("role", entities.RoleAdmin).Error)
	f.admin.Role = entities.RoleAdmin

	relationRepository := relation.NewRelationRepository(db)
	f.relations = relation.NewRelationService(relationRepository, f.repo, userLookup{db})
	f.service = NewRecipeService(f.repo, f.relations, NewPresenter(relationRepository), f.s3)
	return f
}

func viewerOf(user *entities.User) *domain.Viewer {
	return &domain.Viewer{UserID: user.ID.String(), Role: user.Role}
}

func (f *fixture) createRequest() domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Ingredients: []domain.IngredientAmountRequest{
			{ID: f.sugar.ID.String(), Amount: 2},
			{ID: f.salt.ID.String(), Amount: 3},
		},
		Tags:        []string{f.lunch.ID.String(), f.breakfast.ID.String()},
		Image:       pngDataURI,
		Name:        "Omelette",
		Text:        "Beat and fry.",
		CookingTime: 15,
	}
}

func (f *fixture) countRecipes(t *testing.T) int64 {
	var count int64
	require.NoError(t, f.db.Model(&entities.Recipe{}).Count(&count).Error)
	return count
}

func tagIDs(tags []domain.TagResponse) []string {
	ids := make([]string, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}
	return ids
}

func TestCreateRecipe_Success(t *testing.T) {
	f := newFixture(t)

	res, err := f.service.CreateRecipe(context.Background(), f.createRequest(), viewerOf(f.alice))
	require.NoError(t, err)

	assert.Equal(t, "Omelette", res.Name)
	assert.Equal(t, 15, res.CookingTime)
	assert.Equal(t, f.alice.ID.String(), res.Author.ID)
	assert.False(t, res.Author.IsSubscribed)
	assert.False(t, res.IsFavorited)
	assert.False(t, res.IsInShoppingCart)
	assert.ElementsMatch(t, []string{f.breakfast.ID.String(), f.lunch.ID.String()}, tagIDs(res.Tags))

	require.Len(t, res.Ingredients, 2)
	assert.Equal(t, "Sugar", res.Ingredients[0].Name)
	assert.Equal(t, 2, res.Ingredients[0].Amount)
	assert.Equal(t, "Salt", res.Ingredients[1].Name)
	assert.Equal(t, "g", res.Ingredients[1].MeasurementUnit)

	require.Len(t, f.s3.Uploaded, 1)
	assert.Equal(t, testutil.FakeMediaURL+f.s3.Uploaded[0], res.Image)
}

func TestCreateRecipe_RequiresAuthentication(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.CreateRecipe(context.Background(), f.createRequest(), nil)
	assert.ErrorIs(t, err, domain.ErrAuthenticationRequired)
	assert.Zero(t, f.countRecipes(t))
}

func TestCreateRecipe_ValidationLeavesNoRows(t *testing.T) {
	f := newFixture(t)

	cases := map[string]struct {
		mutate func(req *domain.CreateRecipeRequest)
		err    error
	}{
		"empty tags": {
			mutate: func(req *domain.CreateRecipeRequest) { req.Tags = nil },
			err:    domain.ErrTagsRequired,
		},
		"duplicate tags": {
			mutate: func(req *domain.CreateRecipeRequest) { req.Tags = []string{f.lunch.ID.String(), f.lunch.ID.String()} },
			err:    domain.ErrTagsRequired,
		},
		"unknown tag": {
			mutate: func(req *domain.CreateRecipeRequest) { req.Tags = []string{f.alice.ID.String()} },
			err:    domain.ErrTagNotExist,
		},
		"empty ingredients": {
			mutate: func(req *domain.CreateRecipeRequest) { req.Ingredients = nil },
			err:    domain.ErrIngredientsRequired,
		},
		"duplicate ingredient": {
			mutate: func(req *domain.CreateRecipeRequest) {
				req.Ingredients = []domain.IngredientAmountRequest{
					{ID: f.salt.ID.String(), Amount: 1},
					{ID: f.salt.ID.String(), Amount: 2},
				}
			},
			err: domain.ErrDuplicateIngredient,
		},
		"unknown ingredient": {
			mutate: func(req *domain.CreateRecipeRequest) {
				req.Ingredients = []domain.IngredientAmountRequest{{ID: f.bob.ID.String(), Amount: 1}}
			},
			err: domain.ErrIngredientNotExist,
		},
		"amount zero": {
			mutate: func(req *domain.CreateRecipeRequest) { req.Ingredients[0].Amount = 0 },
			err:    domain.ErrAmountOutOfRange,
		},
		"amount above max": {
			mutate: func(req *domain.CreateRecipeRequest) { req.Ingredients[0].Amount = 32001 },
			err:    domain.ErrAmountOutOfRange,
		},
		"cooking time zero": {
			mutate: func(req *domain.CreateRecipeRequest) { req.CookingTime = 0 },
			err:    domain.ErrCookingTimeOutOfRange,
		},
		"blank name": {
			mutate: func(req *domain.CreateRecipeRequest) { req.Name = "  " },
			err:    domain.ErrNameRequired,
		},
		"missing image": {
			mutate: func(req *domain.CreateRecipeRequest) { req.Image = "" },
			err:    domain.ErrImageRequired,
		},
		"image not a data uri": {
			mutate: func(req *domain.CreateRecipeRequest) { req.Image = "https://example.com/cat.png" },
			err:    domain.ErrInvalidImage,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := f.createRequest()
			tc.mutate(&req)

			_, err := f.service.CreateRecipe(context.Background(), req, viewerOf(f.alice))
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Zero(t, f.countRecipes(t))
		})
	}
	assert.Empty(t, f.s3.Uploaded)
}

func TestCreateRecipe_AmountBoundsAccepted(t *testing.T) {
	f := newFixture(t)
	req := f.createRequest()
	req.Ingredients[0].Amount = entities.MinAmount
	req.Ingredients[1].Amount = entities.MaxAmount

	res, err := f.service.CreateRecipe(context.Background(), req, viewerOf(f.alice))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Ingredients[0].Amount)
	assert.Equal(t, 32000, res.Ingredients[1].Amount)
}

func TestCreateRecipe_StoreFailureDeletesUploadedImage(t *testing.T) {
	f := newFixture(t)
	relationRepository := relation.NewRelationRepository(f.db)
	service := NewRecipeService(failingCreateRepository{f.repo}, f.relations, NewPresenter(relationRepository), f.s3)

	_, err := service.CreateRecipe(context.Background(), f.createRequest(), viewerOf(f.alice))
	require.Error(t, err)
	require.Len(t, f.s3.Uploaded, 1)
	assert.Equal(t, f.s3.Uploaded, f.s3.Deleted)
}

func TestRecipeRepository_CreateRollsBack(t *testing.T) {
	f := newFixture(t)
	recipe := &entities.Recipe{AuthorID: f.alice.ID, Name: "Broken", Text: "x", Image: "img", CookingTime: 1}

	err := f.repo.CreateRecipe(context.Background(), recipe, []*entities.Tag{f.lunch}, []*entities.IngredientInRecipe{
		{IngredientID: f.salt.ID, Amount: 1},
		{IngredientID: f.salt.ID, Amount: 2},
	})
	require.Error(t, err)
	assert.Zero(t, f.countRecipes(t))

	var links int64
	require.NoError(t, f.db.Table("recipe_tags").Count(&links).Error)
	assert.Zero(t, links)
}

func TestUpdateRecipe_ReplacesIngredientsAndTags(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.service.CreateRecipe(ctx, f.createRequest(), viewerOf(f.alice))
	require.NoError(t, err)

	ingredients := []domain.IngredientAmountRequest{{ID: f.egg.ID.String(), Amount: 5}}
	tags := []string{f.breakfast.ID.String()}
	name := "Boiled egg"

	updated, err := f.service.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{
		Ingredients: &ingredients,
		Tags:        &tags,
		Name:        &name,
	}, viewerOf(f.alice))
	require.NoError(t, err)

	assert.Equal(t, "Boiled egg", updated.Name)
	assert.Equal(t, created.Text, updated.Text)
	assert.Equal(t, created.Image, updated.Image)
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, "Egg", updated.Ingredients[0].Name)
	assert.Equal(t, 5, updated.Ingredients[0].Amount)
	assert.Equal(t, []string{f.breakfast.ID.String()}, tagIDs(updated.Tags))

	var rows int64
	require.NoError(t, f.db.Model(&entities.IngredientInRecipe{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestUpdateRecipe_NewImageDeletesOld(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.service.CreateRecipe(ctx, f.createRequest(), viewerOf(f.alice))
	require.NoError(t, err)

	image := pngDataURI
	updated, err := f.service.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{Image: &image}, viewerOf(f.alice))
	require.NoError(t, err)

	require.Len(t, f.s3.Uploaded, 2)
	assert.Equal(t, testutil.FakeMediaURL+f.s3.Uploaded[1], updated.Image)
	assert.Equal(t, []string{f.s3.Uploaded[0]}, f.s3.Deleted)
}

func TestUpdateRecipe_InvalidSetKeepsStoredState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.service.CreateRecipe(ctx, f.createRequest(), viewerOf(f.alice))
	require.NoError(t, err)

	empty := []string{}
	_, err = f.service.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{Tags: &empty}, viewerOf(f.alice))
	assert.ErrorIs(t, err, domain.ErrTagsRequired)

	got, err := f.service.GetRecipeDetail(ctx, created.ID, nil)
	require.NoError(t, err)
	assert.Len(t, got.Tags, 2)
	assert.Len(t, got.Ingredients, 2)
}

func TestUpdateRecipe_Permissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.service.CreateRecipe(ctx, f.createRequest(), viewerOf(f.alice))
	require.NoError(t, err)
	name := "Renamed"

	_, err = f.service.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{Name: &name}, viewerOf(f.bob))
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = f.service.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{Name: &name}, nil)
	assert.ErrorIs(t, err, domain.ErrAuthenticationRequired)

	updated, err := f.service.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{Name: &name}, viewerOf(f.admin))
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	_, err = f.service.UpdateRecipe(ctx, "not-a-uuid", domain.UpdateRecipeRequest{Name: &name}, viewerOf(f.alice))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteRecipe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.service.CreateRecipe(ctx, f.createRequest(), viewerOf(f.alice))
	require.NoError(t, err)
	_, err = f.service.AddRelation(ctx, domain.RelationFavorite, created.ID, viewerOf(f.bob))
	require.NoError(t, err)

	assert.ErrorIs(t, f.service.DeleteRecipe(ctx, created.ID, viewerOf(f.bob)), domain.ErrPermissionDenied)
	require.NoError(t, f.service.DeleteRecipe(ctx, created.ID, viewerOf(f.alice)))

	assert.Zero(t, f.countRecipes(t))
	var relations int64
	require.NoError(t, f.db.Model(&entities.RecipeRelation{}).Count(&relations).Error)
	assert.Zero(t, relations)
	assert.Equal(t, f.s3.Uploaded, f.s3.Deleted)

	_, err = f.service.GetRecipeDetail(ctx, created.ID, nil)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetRecipeDetail_ViewerFlags(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	recipe := testutil.CreateRecipe(t, f.db, f.bob, "pancakes", []*entities.Tag{f.breakfast}, map[*entities.Ingredient]int{f.egg: 2})
	id := recipe.ID.String()

	_, err := f.service.AddRelation(ctx, domain.RelationFavorite, id, viewerOf(f.alice))
	require.NoError(t, err)
	_, err = f.service.AddRelation(ctx, domain.RelationShoppingCart, id, viewerOf(f.alice))
	require.NoError(t, err)
	require.NoError(t, f.relations.AddRelation(ctx, domain.RelationSubscription, f.alice.ID.String(), f.bob.ID.String()))

	mine, err := f.service.GetRecipeDetail(ctx, id, viewerOf(f.alice))
	require.NoError(t, err)
	assert.True(t, mine.IsFavorited)
	assert.True(t, mine.IsInShoppingCart)
	assert.True(t, mine.Author.IsSubscribed)

	anonymous, err := f.service.GetRecipeDetail(ctx, id, nil)
	require.NoError(t, err)
	assert.False(t, anonymous.IsFavorited)
	assert.False(t, anonymous.IsInShoppingCart)
	assert.False(t, anonymous.Author.IsSubscribed)

	other, err := f.service.GetRecipeDetail(ctx, id, viewerOf(f.admin))
	require.NoError(t, err)
	assert.False(t, other.IsFavorited)
}

func TestAddRelation_ReturnsSummaryAndConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	recipe := testutil.CreateRecipe(t, f.db, f.bob, "pancakes", []*entities.Tag{f.breakfast}, nil)

	summary, err := f.service.AddRelation(ctx, domain.RelationShoppingCart, recipe.ID.String(), viewerOf(f.alice))
	require.NoError(t, err)
	assert.Equal(t, domain.RecipeSummary{
		ID:          recipe.ID.String(),
		Name:        "pancakes",
		Image:       recipe.Image,
		CookingTime: 10,
	}, summary)

	_, err = f.service.AddRelation(ctx, domain.RelationShoppingCart, recipe.ID.String(), viewerOf(f.alice))
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.service.AddRelation(ctx, domain.RelationSubscription, recipe.ID.String(), viewerOf(f.alice))
	assert.ErrorIs(t, err, domain.ErrUnknownRelation)

	_, err = f.service.AddRelation(ctx, domain.RelationFavorite, recipe.ID.String(), nil)
	assert.ErrorIs(t, err, domain.ErrAuthenticationRequired)

	assert.ErrorIs(t, f.service.RemoveRelation(ctx, domain.RelationFavorite, recipe.ID.String(), viewerOf(f.alice)), domain.ErrNotFound)
	assert.NoError(t, f.service.RemoveRelation(ctx, domain.RelationShoppingCart, recipe.ID.String(), viewerOf(f.alice)))
}

func TestRecipeID_CaseInsensitive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	recipe := testutil.CreateRecipe(t, f.db, f.bob, "pancakes", []*entities.Tag{f.breakfast}, nil)
	upper := strings.ToUpper(recipe.ID.String())

	detail, err := f.service.GetRecipeDetail(ctx, upper, nil)
	require.NoError(t, err)
	assert.Equal(t, recipe.ID.String(), detail.ID)

	summary, err := f.service.AddRelation(ctx, domain.RelationFavorite, upper, viewerOf(f.alice))
	require.NoError(t, err)
	assert.Equal(t, recipe.ID.String(), summary.ID)

	_, err = f.service.AddRelation(ctx, domain.RelationFavorite, recipe.ID.String(), viewerOf(f.alice))
	assert.ErrorIs(t, err, domain.ErrConflict)

	var stored int64
	require.NoError(t, f.db.Model(&entities.RecipeRelation{}).Where("recipe_id = ?", recipe.ID.String()).Count(&stored).Error)
	assert.Equal(t, int64(1), stored)

	byAuthor, count, err := f.service.GetRecipes(ctx, domain.RecipeFilter{AuthorID: strings.ToUpper(f.bob.ID.String())}, domain.PaginationRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Len(t, byAuthor, 1)

	require.NoError(t, f.service.RemoveRelation(ctx, domain.RelationFavorite, upper, viewerOf(f.alice)))
}

func TestGetRecipes_FiltersAndPagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pancakes := testutil.CreateRecipe(t, f.db, f.bob, "pancakes", []*entities.Tag{f.breakfast}, nil)
	testutil.CreateRecipe(t, f.db, f.bob, "soup", []*entities.Tag{f.lunch}, nil)
	testutil.CreateRecipe(t, f.db, f.alice, "salad", []*entities.Tag{f.lunch, f.breakfast}, nil)

	_, err := f.service.AddRelation(ctx, domain.RelationFavorite, pancakes.ID.String(), viewerOf(f.alice))
	require.NoError(t, err)

	all, count, err := f.service.GetRecipes(ctx, domain.RecipeFilter{}, domain.PaginationRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Len(t, all, 3)

	page, count, err := f.service.GetRecipes(ctx, domain.RecipeFilter{}, domain.PaginationRequest{Page: 2, Limit: 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Len(t, page, 1)

	byAuthor, count, err := f.service.GetRecipes(ctx, domain.RecipeFilter{AuthorID: f.bob.ID.String()}, domain.PaginationRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Len(t, byAuthor, 2)

	lunch, count, err := f.service.GetRecipes(ctx, domain.RecipeFilter{Tags: []string{"lunch"}}, domain.PaginationRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Len(t, lunch, 2)

	favorites, count, err := f.service.GetRecipes(ctx, domain.RecipeFilter{IsFavorited: true}, domain.PaginationRequest{}, viewerOf(f.alice))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, favorites, 1)
	assert.Equal(t, pancakes.ID.String(), favorites[0].ID)
	assert.True(t, favorites[0].IsFavorited)

	// ignored for anonymous viewers
	_, count, err = f.service.GetRecipes(ctx, domain.RecipeFilter{IsFavorited: true}, domain.PaginationRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestBuildShoppingList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := testutil.CreateRecipe(t, f.db, f.bob, "first", []*entities.Tag{f.lunch}, map[*entities.Ingredient]int{f.salt: 10, f.sugar: 5})
	second := testutil.CreateRecipe(t, f.db, f.bob, "second", []*entities.Tag{f.lunch}, map[*entities.Ingredient]int{f.salt: 15})
	favoriteOnly := testutil.CreateRecipe(t, f.db, f.bob, "third", []*entities.Tag{f.lunch}, map[*entities.Ingredient]int{f.egg: 3})

	for _, recipe := range []*entities.Recipe{first, second} {
		_, err := f.service.AddRelation(ctx, domain.RelationShoppingCart, recipe.ID.String(), viewerOf(f.alice))
		require.NoError(t, err)
	}
	_, err := f.service.AddRelation(ctx, domain.RelationFavorite, favoriteOnly.ID.String(), viewerOf(f.alice))
	require.NoError(t, err)

	items, err := f.service.BuildShoppingList(ctx, viewerOf(f.alice))
	require.NoError(t, err)
	assert.Equal(t, []domain.ShoppingListItem{
		{Name: "Salt", TotalAmount: 25, MeasurementUnit: "g"},
		{Name: "Sugar", TotalAmount: 5, MeasurementUnit: "g"},
	}, items)
	assert.Equal(t, "Salt - 25 g\nSugar - 5 g", RenderShoppingList(items))

	empty, err := f.service.BuildShoppingList(ctx, viewerOf(f.bob))
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
	assert.Equal(t, "", RenderShoppingList(empty))

	_, err = f.service.BuildShoppingList(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrAuthenticationRequired)
}

func TestBuildShoppingList_OrdersByNameThenUnit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	saltKg := testutil.CreateIngredient(t, f.db, "Salt", "kg")
	apple := testutil.CreateIngredient(t, f.db, "Apple", "pcs")
	recipe := testutil.CreateRecipe(t, f.db, f.bob, "mix", []*entities.Tag{f.lunch}, map[*entities.Ingredient]int{
		f.salt: 1, saltKg: 2, apple: 3,
	})
	_, err := f.service.AddRelation(ctx, domain.RelationShoppingCart, recipe.ID.String(), viewerOf(f.alice))
	require.NoError(t, err)

	items, err := f.service.BuildShoppingList(ctx, viewerOf(f.alice))
	require.NoError(t, err)
	assert.Equal(t, "Apple - 3 pcs\nSalt - 1 g\nSalt - 2 kg", RenderShoppingList(items))
}
