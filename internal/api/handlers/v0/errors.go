package v0

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/fermm870-del/prompt-system-pro/internal/store"
)

// mapStoreError translates store sentinels into Huma status errors so every
// handler reports the same stable codes: invalid input is 400, a missing
// prompt is 404, anything else is a 500 storage fault.
func mapStoreError(err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound(notFoundMsg)
	default:
		return huma.Error500InternalServerError("Storage failure", err)
	}
}
