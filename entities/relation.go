package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kinds stored in RecipeRelation.Kind.
const (
	RelationFavorite     = "favorite"
	RelationShoppingCart = "shopping_cart"
)

// RecipeRelation is a typed user -> recipe edge. Favorites and the shopping
// cart share the table and differ only by Kind.
type RecipeRelation struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_relations_unique" json:"user_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_relations_unique" json:"recipe_id"`
	Kind     string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_recipe_relations_unique" json:"kind"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Timestamp
}

func (r *RecipeRelation) BeforeCreate(tx *gorm.DB) error {
	newID(&r.ID)
	return nil
}

// Subscription is a follower (UserID) -> author edge.
type Subscription struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_unique;check:chk_subscriptions_no_self,user_id <> author_id" json:"user_id"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_unique" json:"author_id"`

	User   *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Author *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Timestamp
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	newID(&s.ID)
	return nil
}
