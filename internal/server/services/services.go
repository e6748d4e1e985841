// Package services contains server-side business logic. Each service holds
// the connection pool and a repository manager, and binds repositories to
// either the pool or a transaction per call.
package services

import (
	"fmt"

	"github.com/dmitrijs2005/foodie/internal/common"
	"github.com/dmitrijs2005/foodie/internal/dbx"
)

func validateID(id string) error {
	if !dbx.ValidID(id) {
		return fmt.Errorf("%w: malformed id %q", common.ErrorValidation, id)
	}
	return nil
}
