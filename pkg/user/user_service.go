package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bogdanpracticum/foodgram-project-react/domain"
	"github.com/bogdanpracticum/foodgram-project-react/entities"
	"github.com/bogdanpracticum/foodgram-project-react/internal/utils/mailing"
	"github.com/bogdanpracticum/foodgram-project-react/pkg/jwt"
	"github.com/bogdanpracticum/foodgram-project-react/pkg/recipe"
	"github.com/bogdanpracticum/foodgram-project-react/pkg/relation"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	resetPasswordDuration = time.Minute * 30
	resetPasswordSubject  = "Foodgram password reset"

	// passwordStampLength is how much of the stored hash a reset token
	// carries; changing the password invalidates outstanding tokens.
	passwordStampLength = 12
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		GetUsers(ctx context.Context, page domain.PaginationRequest, viewer *domain.Viewer) ([]domain.UserProfile, int64, error)
		GetUser(ctx context.Context, id string, viewer *domain.Viewer) (domain.UserProfile, error)
		Me(ctx context.Context, viewer *domain.Viewer) (domain.UserProfile, error)
		SetPassword(ctx context.Context, req domain.SetPasswordRequest, viewer *domain.Viewer) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		ResetPasswordConfirm(ctx context.Context, req domain.ResetPasswordConfirmRequest) error
		GetSubscriptions(ctx context.Context, page domain.PaginationRequest, recipesLimit int, viewer *domain.Viewer) ([]domain.SubscriptionResponse, int64, error)
		Subscribe(ctx context.Context, authorID string, recipesLimit int, viewer *domain.Viewer) (domain.SubscriptionResponse, error)
		Unsubscribe(ctx context.Context, authorID string, viewer *domain.Viewer) error
	}

	userService struct {
		userRepository     UserRepository
		recipeRepository   recipe.RecipeRepository
		relationRepository relation.RelationRepository
		relationService    relation.RelationService
		jwtService         jwt.JWTService
		mailer             mailing.Mailer
		appURL             string
	}
)

func NewUserService(
	userRepository UserRepository,
	recipeRepository recipe.RecipeRepository,
	relationRepository relation.RelationRepository,
	relationService relation.RelationService,
	jwtService jwt.JWTService,
	mailer mailing.Mailer,
	appURL string,
) UserService {
	return &userService{
		userRepository:     userRepository,
		recipeRepository:   recipeRepository,
		relationRepository: relationRepository,
		relationService:    relationService,
		jwtService:         jwtService,
		mailer:             mailer,
		appURL:             strings.TrimRight(appURL, "/"),
	}
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func passwordStamp(hash string) string {
	if len(hash) <= passwordStampLength {
		return hash
	}
	return hash[len(hash)-passwordStampLength:]
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	taken, err := s.userRepository.CheckEmail(ctx, req.Email)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if taken {
		return domain.RegisterResponse{}, domain.ErrEmailTaken
	}

	taken, err = s.userRepository.CheckUsername(ctx, req.Username)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if taken {
		return domain.RegisterResponse{}, domain.ErrUsernameTaken
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  hashed,
		Role:      entities.RoleUser,
	}
	if err := s.userRepository.RegisterUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RegisterResponse{}, domain.ErrUserExists
		}
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		Email:     user.Email,
		ID:        user.ID.String(),
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if !checkPassword(user.Password, req.Password) {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateAuthToken(user.ID.String(), user.Role)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	return domain.LoginResponse{AuthToken: token}, nil
}

func (s *userService) GetUsers(ctx context.Context, page domain.PaginationRequest, viewer *domain.Viewer) ([]domain.UserProfile, int64, error) {
	page = page.Normalize()

	users, count, err := s.userRepository.GetUsers(ctx, page)
	if err != nil {
		return nil, 0, err
	}

	subscribed, err := s.subscribedTo(ctx, users, viewer)
	if err != nil {
		return nil, 0, err
	}

	profiles := make([]domain.UserProfile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, domain.NewUserProfile(user, subscribed[user.ID.String()]))
	}
	return profiles, count, nil
}

func (s *userService) GetUser(ctx context.Context, id string, viewer *domain.Viewer) (domain.UserProfile, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return domain.UserProfile{}, err
	}

	subscribed, err := s.subscribedTo(ctx, []*entities.User{user}, viewer)
	if err != nil {
		return domain.UserProfile{}, err
	}
	return domain.NewUserProfile(user, subscribed[user.ID.String()]), nil
}

func (s *userService) Me(ctx context.Context, viewer *domain.Viewer) (domain.UserProfile, error) {
	if !viewer.IsAuthenticated() {
		return domain.UserProfile{}, domain.ErrTokenNotFound
	}
	return s.GetUser(ctx, viewer.UserID, viewer)
}

func (s *userService) SetPassword(ctx context.Context, req domain.SetPasswordRequest, viewer *domain.Viewer) error {
	if !viewer.IsAuthenticated() {
		return domain.ErrTokenNotFound
	}

	user, err := s.getUser(ctx, viewer.UserID)
	if err != nil {
		return err
	}
	if !checkPassword(user.Password, req.CurrentPassword) {
		return domain.ErrWrongPassword
	}

	hashed, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepository.UpdatePassword(ctx, viewer.UserID, hashed)
}

// ResetPassword mails a reset link to the owner of req.Email. Unknown
// addresses succeed silently so the endpoint does not reveal who is
// registered.
func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, err := s.jwtService.GenerateResetToken(user.ID.String(), passwordStamp(user.Password), resetPasswordDuration)
	if err != nil {
		return err
	}

	body, err := mailing.RenderResetPassword(mailing.ResetPasswordData{
		Username:     user.Username,
		Link:         s.appURL + "/reset-password?token=" + token,
		ValidMinutes: int(resetPasswordDuration.Minutes()),
	})
	if err != nil {
		return err
	}

	if err := s.mailer.SendMail(user.Email, resetPasswordSubject, body); err != nil {
		log.Errorf("failed to send reset password email to %s: %v", user.Email, err)
		return err
	}
	return nil
}

func (s *userService) ResetPasswordConfirm(ctx context.Context, req domain.ResetPasswordConfirmRequest) error {
	claims, err := s.jwtService.ParseResetToken(req.Token)
	if err != nil {
		return err
	}

	user, err := s.getUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrTokenInvalid
		}
		return err
	}
	if claims.Stamp != passwordStamp(user.Password) {
		return domain.ErrTokenInvalid
	}

	hashed, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepository.UpdatePassword(ctx, claims.UserID, hashed)
}

func (s *userService) GetSubscriptions(ctx context.Context, page domain.PaginationRequest, recipesLimit int, viewer *domain.Viewer) ([]domain.SubscriptionResponse, int64, error) {
	if !viewer.IsAuthenticated() {
		return nil, 0, domain.ErrTokenNotFound
	}
	page = page.Normalize()

	authors, count, err := s.userRepository.GetSubscribedAuthors(ctx, viewer.UserID, page)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.SubscriptionResponse, 0, len(authors))
	for _, author := range authors {
		res, err := s.subscriptionResponse(ctx, author, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		responses = append(responses, res)
	}
	return responses, count, nil
}

func (s *userService) Subscribe(ctx context.Context, authorID string, recipesLimit int, viewer *domain.Viewer) (domain.SubscriptionResponse, error) {
	if !viewer.IsAuthenticated() {
		return domain.SubscriptionResponse{}, domain.ErrTokenNotFound
	}

	if err := s.relationService.AddRelation(ctx, domain.RelationSubscription, viewer.UserID, authorID); err != nil {
		return domain.SubscriptionResponse{}, err
	}

	author, err := s.getUser(ctx, authorID)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}
	return s.subscriptionResponse(ctx, author, recipesLimit)
}

func (s *userService) Unsubscribe(ctx context.Context, authorID string, viewer *domain.Viewer) error {
	if !viewer.IsAuthenticated() {
		return domain.ErrTokenNotFound
	}
	return s.relationService.RemoveRelation(ctx, domain.RelationSubscription, viewer.UserID, authorID)
}

// subscriptionResponse renders an author the viewer follows, so
// is_subscribed is always true.
func (s *userService) subscriptionResponse(ctx context.Context, author *entities.User, recipesLimit int) (domain.SubscriptionResponse, error) {
	if recipesLimit <= 0 {
		recipesLimit = domain.DefaultRecipesLimit
	}

	recipes, err := s.recipeRepository.GetRecipesByAuthor(ctx, author.ID.String(), recipesLimit)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}
	count, err := s.recipeRepository.CountRecipesByAuthor(ctx, author.ID.String())
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}

	summaries := make([]domain.RecipeSummary, 0, len(recipes))
	for _, item := range recipes {
		summaries = append(summaries, domain.NewRecipeSummary(item))
	}

	return domain.SubscriptionResponse{
		UserProfile:  domain.NewUserProfile(author, true),
		Recipes:      summaries,
		RecipesCount: count,
	}, nil
}

func (s *userService) getUser(ctx context.Context, id string) (*entities.User, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	user, err := s.userRepository.GetUserByID(ctx, parsed.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) subscribedTo(ctx context.Context, users []*entities.User, viewer *domain.Viewer) (map[string]bool, error) {
	if !viewer.IsAuthenticated() || len(users) == 0 {
		return map[string]bool{}, nil
	}

	ids := make([]string, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID.String())
	}
	return s.relationRepository.RelatedObjectIDs(ctx, domain.RelationSubscription, viewer.UserID, ids)
}
