package views

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/useradmin/internal/client/api"
	"github.com/dmitrijs2005/useradmin/internal/client/models"
)

const lookupFailedMessage = "Could not load ranks and roles"

// loadPickers fetches both LOVs and wraps them in a rank picker and a role
// picker.
func loadPickers(ctx context.Context, c api.Client) (rank, roles *Picker, err error) {
	ranks, err := c.GetRanks(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("ranks: %w", err)
	}
	roleOptions, err := c.GetRoles(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("roles: %w", err)
	}
	return NewSinglePicker(ranks), NewMultiPicker(roleOptions), nil
}

func lookupText(err error) string {
	if isLookupFailure(err) {
		return lookupFailedMessage
	}
	return GenericErrorMessage
}

// emptyPickers keeps forms usable when the LOVs could not be loaded.
func emptyPickers() (*Picker, *Picker) {
	return NewSinglePicker([]models.LovRef{}), NewMultiPicker([]models.LovRef{})
}
