package cli

import "clinic-scheduler/pkg/apperrors"

// Domain errors are recovered at this boundary: the menus show the message
// and re-prompt. Only storage failures mean the attempted save was lost.
func isValidationErr(err error) bool {
	return apperrors.IsValidation(err)
}

func renderError(p *Prompter, err error) {
	if apperrors.IsStorage(err) {
		p.Printf("Could not save changes: %v\n", err)
		return
	}
	p.Printf("%v\n", err)
}
