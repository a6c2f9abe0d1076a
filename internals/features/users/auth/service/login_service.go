package service

import (
	"errors"
	"strings"

	"labtraining_backend/internals/constants"
	labModel "labtraining_backend/internals/features/laboratories/model"
	userModel "labtraining_backend/internals/features/users/user/model"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUnknownUser      = errors.New("user not found")
	ErrLabCodeRequired  = errors.New("lab code is required for trainees")
	ErrLabCodeMismatch  = errors.New("invalid lab code")
)

// EvaluateLogin decides a login attempt. The caller looks up user (nil when
// the username matched nothing) and lab (the user's laboratory, nil when the
// user has none). Only trainees attached to a laboratory must present the
// matching lab code; a trainee without a laboratory passes on username alone.
func EvaluateLogin(user *userModel.UserModel, lab *labModel.LaboratoryModel, username, labCode string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameRequired
	}
	if user == nil {
		return ErrUnknownUser
	}
	if user.Role != constants.RoleTrainee {
		return nil
	}

	if strings.TrimSpace(labCode) == "" {
		return ErrLabCodeRequired
	}
	if user.LaboratoryID != nil {
		if lab == nil || lab.Code != labCode {
			return ErrLabCodeMismatch
		}
	}
	return nil
}
