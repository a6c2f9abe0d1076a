package service

import (
	"errors"
	"testing"

	labModel "labtraining_backend/internals/features/laboratories/model"
	userModel "labtraining_backend/internals/features/users/user/model"
)

func TestEvaluateLogin(t *testing.T) {
	labID := "l1"
	lab := &labModel.LaboratoryModel{ID: labID, Code: "LAB001", Name: "CHU Lyon"}
	traineeWithLab := &userModel.UserModel{ID: "t1", Username: "jean.dupont", Role: "trainee", LaboratoryID: &labID}
	traineeWithoutLab := &userModel.UserModel{ID: "t2", Username: "floating", Role: "trainee"}
	trainer := &userModel.UserModel{ID: "tr1", Username: "trainer", Role: "trainer"}

	tests := []struct {
		name     string
		user     *userModel.UserModel
		lab      *labModel.LaboratoryModel
		username string
		labCode  string
		want     error
	}{
		{"missing username", nil, nil, "   ", "", ErrUsernameRequired},
		{"unknown user", nil, nil, "nobody", "", ErrUnknownUser},
		{"trainee without lab code", traineeWithLab, lab, "jean.dupont", "", ErrLabCodeRequired},
		{"trainee with wrong lab code", traineeWithLab, lab, "jean.dupont", "LAB999", ErrLabCodeMismatch},
		{"trainee with matching lab code", traineeWithLab, lab, "jean.dupont", "LAB001", nil},
		{"trainee with no laboratory", traineeWithoutLab, nil, "floating", "LAB001", nil},
		{"trainer needs no lab code", trainer, nil, "trainer", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := EvaluateLogin(tt.user, tt.lab, tt.username, tt.labCode); !errors.Is(err, tt.want) {
				t.Errorf("EvaluateLogin() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEvaluateLoginMissingLabRecordFails(t *testing.T) {
	labID := "l-gone"
	trainee := &userModel.UserModel{ID: "t1", Username: "jean.dupont", Role: "trainee", LaboratoryID: &labID}

	// user points at a laboratory the store no longer has
	if err := EvaluateLogin(trainee, nil, "jean.dupont", "LAB001"); !errors.Is(err, ErrLabCodeMismatch) {
		t.Fatalf("err = %v, want ErrLabCodeMismatch", err)
	}
}
