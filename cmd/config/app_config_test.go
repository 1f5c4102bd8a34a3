package config

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bogdanpracticum/foodgram-project-react/entities"
	"github.com/bogdanpracticum/foodgram-project-react/internal/testutil"
	"github.com/bogdanpracticum/foodgram-project-react/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const pngDataURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

type nopMailer struct{}

func (nopMailer) SendMail(string, string, string) error { return nil }

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors"`
}

type apiClient struct {
	t   *testing.T
	app *fiber.App
	db  *gorm.DB
}

func newAPIClient(t *testing.T) *apiClient {
	t.Setenv("CONFIG_FILE", t.TempDir()+"/missing.yaml")
	t.Setenv("JWT_SECRET", "test-secret")

	db := testutil.NewTestDB(t)
	app, err := NewAppWithDependencies(db, Dependencies{
		S3:         &testutil.FakeS3{},
		Mailer:     nopMailer{},
		JWTService: jwt.NewJWTService(),
		LogOutput:  io.Discard,
	})
	require.NoError(t, err)
	return &apiClient{t: t, app: app, db: db}
}

func (a *apiClient) do(method, path, token string, body any) (*http.Response, envelope) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Token "+token)
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	if len(raw) > 0 && resp.Header.Get(fiber.HeaderContentType) == fiber.MIMEApplicationJSON {
		require.NoError(a.t, json.Unmarshal(raw, &env))
	} else {
		env.Data = raw
	}
	return resp, env
}

func (a *apiClient) signUp(username string) (id, token string) {
	resp, env := a.do(fiber.MethodPost, "/api/users/", "", map[string]string{
		"email":      username + "@foodgram.test",
		"username":   username,
		"first_name": "First",
		"last_name":  "Last",
		"password":   "s3cret-password",
	})
	require.Equal(a.t, fiber.StatusCreated, resp.StatusCode, env.Error)

	var profile struct {
		ID string `json:"id"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &profile))

	resp, env = a.do(fiber.MethodPost, "/api/auth/token/login/", "", map[string]string{
		"email":    username + "@foodgram.test",
		"password": "s3cret-password",
	})
	require.Equal(a.t, fiber.StatusOK, resp.StatusCode, env.Error)

	var login struct {
		AuthToken string `json:"auth_token"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &login))
	return profile.ID, login.AuthToken
}

func (a *apiClient) recipeBody(tag *entities.Tag, ingredient *entities.Ingredient, amount int) map[string]any {
	return map[string]any{
		"ingredients":  []map[string]any{{"id": ingredient.ID.String(), "amount": amount}},
		"tags":         []string{tag.ID.String()},
		"image":        pngDataURI,
		"name":         "Porridge",
		"text":         "Boil the oats.",
		"cooking_time": 10,
	}
}

func TestPing(t *testing.T) {
	api := newAPIClient(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/ping", nil)
	resp, err := api.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRecipeLifecycle(t *testing.T) {
	api := newAPIClient(t)
	tag := testutil.CreateTag(t, api.db, "breakfast", "#E26C2D")
	oats := testutil.CreateIngredient(t, api.db, "Oats", "g")
	_, alice := api.signUp("alice")
	_, bob := api.signUp("bob")

	resp, _ := api.do(fiber.MethodPost, "/api/recipes/", "", api.recipeBody(tag, oats, 100))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, env := api.do(fiber.MethodPost, "/api/recipes/", alice, api.recipeBody(tag, oats, 0))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "amount out of range", env.Errors["ingredients"])

	resp, env = api.do(fiber.MethodPost, "/api/recipes/", alice, api.recipeBody(tag, oats, 100))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, env.Error)

	var created struct {
		ID          string `json:"id"`
		IsFavorited bool   `json:"is_favorited"`
		Image       string `json:"image"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Contains(t, created.Image, testutil.FakeMediaURL)
	path := "/api/recipes/" + created.ID + "/"

	resp, _ = api.do(fiber.MethodPatch, path, bob, map[string]any{"name": "Stolen"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, env = api.do(fiber.MethodPatch, path, alice, map[string]any{"cooking_time": 5})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, env.Error)

	resp, _ = api.do(fiber.MethodGet, "/api/recipes/4b7b1c1e-0000-4000-8000-000000000000/", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = api.do(fiber.MethodPost, path+"favorite/", bob, nil)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, env = api.do(fiber.MethodPost, path+"favorite/", bob, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.False(t, env.Status)

	resp, env = api.do(fiber.MethodGet, path, bob, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.True(t, created.IsFavorited)

	resp, env = api.do(fiber.MethodGet, path, "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.False(t, created.IsFavorited)

	resp, _ = api.do(fiber.MethodDelete, path+"favorite/", bob, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp, _ = api.do(fiber.MethodDelete, path+"favorite/", bob, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = api.do(fiber.MethodDelete, path, alice, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestDownloadShoppingCart(t *testing.T) {
	api := newAPIClient(t)
	tag := testutil.CreateTag(t, api.db, "lunch", "#49B64E")
	salt := testutil.CreateIngredient(t, api.db, "Salt", "g")
	_, alice := api.signUp("alice")

	resp, env := api.do(fiber.MethodPost, "/api/recipes/", alice, api.recipeBody(tag, salt, 25))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, env.Error)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	resp, _ = api.do(fiber.MethodGet, "/api/recipes/download_shopping_cart/", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, env = api.do(fiber.MethodGet, "/api/recipes/download_shopping_cart/", alice, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, string(env.Data))

	resp, _ = api.do(fiber.MethodPost, "/api/recipes/"+created.ID+"/shopping_cart/", alice, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, env = api.do(fiber.MethodGet, "/api/recipes/download_shopping_cart/", alice, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, fiber.MIMETextPlainCharsetUTF8, resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="shopping_list.txt"`, resp.Header.Get(fiber.HeaderContentDisposition))
	assert.Equal(t, "Salt - 25 g", string(env.Data))
}

func TestSubscriptionsAPI(t *testing.T) {
	api := newAPIClient(t)
	aliceID, alice := api.signUp("alice")
	bobID, _ := api.signUp("bob")

	resp, env := api.do(fiber.MethodPost, "/api/users/"+aliceID+"/subscribe/", alice, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "self-subscription forbidden", env.Error)

	resp, _ = api.do(fiber.MethodPost, "/api/users/"+bobID+"/subscribe/", alice, nil)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, env = api.do(fiber.MethodGet, "/api/users/subscriptions/", alice, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var page struct {
		Count   int64 `json:"count"`
		Results []struct {
			Username     string `json:"username"`
			IsSubscribed bool   `json:"is_subscribed"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(1), page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "bob", page.Results[0].Username)
	assert.True(t, page.Results[0].IsSubscribed)

	resp, env = api.do(fiber.MethodGet, "/api/users/me/", alice, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"username":"alice"`)

	resp, _ = api.do(fiber.MethodGet, "/api/users/me/", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCreateTag_AdminOnly(t *testing.T) {
	api := newAPIClient(t)
	aliceID, alice := api.signUp("alice")
	body := map[string]string{"name": "dinner", "color": "#A52A2A", "slug": "dinner"}

	resp, _ := api.do(fiber.MethodPost, "/api/tags/", alice, body)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// the role is baked into the token, so log in again after promotion
	require.NoError(t, api.db.Model(&entities.User{}).Where("id = ?", aliceID).Update("role", entities.RoleAdmin).Error)
	resp, env := api.do(fiber.MethodPost, "/api/auth/token/login/", "", map[string]string{
		"email": "alice@foodgram.test", "password": "s3cret-password",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var login struct {
		AuthToken string `json:"auth_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))

	resp, _ = api.do(fiber.MethodPost, "/api/tags/", login.AuthToken, body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, _ = api.do(fiber.MethodPost, "/api/tags/", login.AuthToken, body)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, env = api.do(fiber.MethodGet, "/api/tags/", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"slug":"dinner"`)
}
