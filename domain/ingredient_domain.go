package domain

var (
	MessageSuccessGetIngredients = "success get ingredients"
	MessageSuccessGetIngredient  = "success get ingredient"
	MessageFailedGetIngredients  = "failed to get ingredients"
	MessageFailedGetIngredient   = "failed to get ingredient"

	ErrIngredientNotFound = NewNotFoundError("ingredient not found")
)

type (
	IngredientResponse struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
	}

	// IngredientImportItem is one element of the ingredient catalog file.
	IngredientImportItem struct {
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
	}

	IngredientImportResult struct {
		Created int
		Skipped int
	}
)
