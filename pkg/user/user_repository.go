package user

import (
	"context"

	"github.com/bogdanpracticum/foodgram-project-react/domain"
	"github.com/bogdanpracticum/foodgram-project-react/entities"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		RegisterUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		CheckEmail(ctx context.Context, email string) (bool, error)
		CheckUsername(ctx context.Context, username string) (bool, error)
		UserExists(ctx context.Context, id string) (bool, error)
		GetUsers(ctx context.Context, page domain.PaginationRequest) ([]*entities.User, int64, error)
		GetSubscribedAuthors(ctx context.Context, userID string, page domain.PaginationRequest) ([]*entities.User, int64, error)
		UpdatePassword(ctx context.Context, userID string, passwordHash string) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) RegisterUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CheckEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "LOWER(email) = LOWER(?)", email)
}

func (r *userRepository) CheckUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *userRepository) UserExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, "id = ?", id)
}

func (r *userRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where(query, args...).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) GetUsers(ctx context.Context, page domain.PaginationRequest) ([]*entities.User, int64, error) {
	var users []*entities.User
	var count int64

	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Order("username asc").Offset(page.Offset()).Limit(page.Limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

// GetSubscribedAuthors lists the authors userID follows, most recent
// subscription first.
func (r *userRepository) GetSubscribedAuthors(ctx context.Context, userID string, page domain.PaginationRequest) ([]*entities.User, int64, error) {
	var users []*entities.User
	var count int64

	query := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&entities.User{}).
			Joins("JOIN subscriptions ON subscriptions.author_id = users.id").
			Where("subscriptions.user_id = ?", userID)
	}

	if err := query().Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query().
		Select("users.*").
		Order("subscriptions.created_at desc").
		Order("users.username asc").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Update("password", passwordHash).Error
}
