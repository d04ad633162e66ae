package service

import "errors"

// ErrCompanyNotFound reports that the requested company, or the implied
// default company, does not exist. Handlers match it with errors.Is rather
// than inspecting message text.
var ErrCompanyNotFound = errors.New("company not found")
