package review

import (
	"errors"
	"time"

	"marketplace-client/internal/product"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrEmptyReview    = errors.New("review text is required")
	ErrMissingProduct = errors.New("product id is required")
	ErrMissingUser    = errors.New("user id is required")
)

type Review struct {
	ID        string      `json:"_id"`
	Product   product.Ref `json:"product_id"`
	User      product.Ref `json:"user_id"`
	Rating    int         `json:"rating"`
	Text      string      `json:"review"`
	CreatedAt *time.Time  `json:"created_at,omitempty"`
}

// Input is the body of POST /api/reviews/createreview.
type Input struct {
	ProductID string `json:"product_id" validate:"required"`
	UserID    string `json:"user_id" validate:"required"`
	Rating    int    `json:"rating" validate:"min=1,max=5"`
	Text      string `json:"review" validate:"required"`
}

var validate = validator.New()

func (in Input) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	switch verrs[0].StructField() {
	case "ProductID":
		return ErrMissingProduct
	case "UserID":
		return ErrMissingUser
	case "Rating":
		return ErrInvalidRating
	case "Text":
		return ErrEmptyReview
	}
	return err
}
