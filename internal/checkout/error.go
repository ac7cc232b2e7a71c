package checkout

import (
	"errors"
	"fmt"
	"strings"

	"marketplace-client/internal/api"
)

// stockExceededMarker is the backend's message for an over-stock line.
const stockExceededMarker = "quantity exceeds available stock"

var (
	// ErrEmptySelection is returned before any request when nothing was selected.
	ErrEmptySelection = errors.New("no items selected for checkout")

	// ErrNetworkUnavailable matches submissions that got no response at all.
	ErrNetworkUnavailable = api.ErrNetworkUnavailable
)

// SubmissionError reports the seller whose order failed. Orders of the
// Succeeded groups before it were created and are not rolled back.
type SubmissionError struct {
	SellerID   string
	Succeeded  int
	HTTPStatus int
	Message    string
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.HTTPStatus != 0 {
		return fmt.Sprintf("order for seller %s failed (status %d): %s", e.SellerID, e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("order for seller %s failed: %v", e.SellerID, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// StockExceeded reports whether the backend rejected the order because a
// quantity is above the available stock.
func (e *SubmissionError) StockExceeded() bool {
	return e.HTTPStatus != 0 && strings.Contains(e.Message, stockExceededMarker)
}

// IsStockExceeded unwraps err and checks for a stock rejection.
func IsStockExceeded(err error) bool {
	var subErr *SubmissionError
	return errors.As(err, &subErr) && subErr.StockExceeded()
}

func newSubmissionError(sellerID string, succeeded int, err error) *SubmissionError {
	subErr := &SubmissionError{SellerID: sellerID, Succeeded: succeeded, Err: err}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		subErr.HTTPStatus = apiErr.StatusCode
		subErr.Message = apiErr.Message
	} else {
		subErr.Message = err.Error()
	}
	return subErr
}
