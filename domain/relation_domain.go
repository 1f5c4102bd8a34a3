package domain

// RelationKind names one of the user edges handled by the relation service.
type RelationKind string

const (
	RelationFavorite     RelationKind = "favorite"
	RelationShoppingCart RelationKind = "shopping_cart"
	RelationSubscription RelationKind = "subscription"
)

var (
	ErrRelationExists   = NewConflictError("already exists")
	ErrRelationNotFound = NewNotFoundError("relation does not exist")
	ErrUnknownRelation  = NewValidationError("", "unknown relation kind")
)

// IsRecipeRelation reports whether the kind links a user to a recipe.
func (k RelationKind) IsRecipeRelation() bool {
	return k == RelationFavorite || k == RelationShoppingCart
}
