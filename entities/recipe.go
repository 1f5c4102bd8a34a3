package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinCookingTime = 1
	MaxCookingTime = 32000
	MinAmount      = 1
	MaxAmount      = 32000
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	Image       string    `gorm:"not null" json:"image"`
	CookingTime int       `gorm:"not null;check:chk_recipes_cooking_time,cooking_time >= 1 AND cooking_time <= 32000" json:"cooking_time"`

	Author      *User                 `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Tags        []*Tag                `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
	Ingredients []*IngredientInRecipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Timestamp
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	newID(&r.ID)
	return nil
}

// IngredientInRecipe holds the amount of one ingredient in one recipe.
type IngredientInRecipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ingredient_in_recipe_unique" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ingredient_in_recipe_unique" json:"ingredient_id"`
	Amount       int       `gorm:"not null;check:chk_ingredient_in_recipes_amount,amount >= 1 AND amount <= 32000" json:"amount"`
	// Position keeps the order the author listed the ingredients in.
	Position int `gorm:"not null;default:0" json:"position"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
	Timestamp
}

func (i *IngredientInRecipe) BeforeCreate(tx *gorm.DB) error {
	newID(&i.ID)
	return nil
}
