package service

import "github.com/recruitme/recruitme-go/internal/model"

var errForbidden = model.NewError(model.KindForbidden, model.CodeForbidden,
	"you do not have permission to perform this action")

// Authorize permits an action only when the caller owns the resource.
func Authorize(callerID, ownerID string) error {
	if callerID == "" || callerID != ownerID {
		return errForbidden
	}
	return nil
}
