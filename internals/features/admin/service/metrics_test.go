package service

import (
	"testing"
	"time"

	labModel "labtraining_backend/internals/features/laboratories/model"
	trackingModel "labtraining_backend/internals/features/tracking/model"
	userModel "labtraining_backend/internals/features/users/user/model"
)

func lab(id, code, name string) labModel.LaboratoryModel {
	return labModel.LaboratoryModel{ID: id, Code: code, Name: name}
}

func trainee(id, name string, labID *string) userModel.UserModel {
	return userModel.UserModel{ID: id, Username: id, Name: name, Role: "trainee", LaboratoryID: labID}
}

func rating(traineeID, elementID string, value int) trackingModel.ComfortRatingModel {
	return trackingModel.ComfortRatingModel{TraineeID: traineeID, TrainingElementID: elementID, Rating: value}
}

func validation(traineeID, elementID string, at time.Time) trackingModel.ValidationModel {
	return trackingModel.ValidationModel{TraineeID: traineeID, TrainingElementID: elementID, TrainerID: "tr-1", ValidatedAt: at}
}

func TestComputeMetricsEmptyLab(t *testing.T) {
	labs := []labModel.LaboratoryModel{lab("l1", "LAB001", "CHU Lyon")}

	m := ComputeMetrics(labs, nil, nil, nil, DefaultAlertThreshold)

	if m.LabCount != 1 || m.TraineeCount != 0 || m.AlertCount != 0 {
		t.Fatalf("unexpected counts: %+v", m)
	}
	if m.GlobalAvgComfort != 0 {
		t.Errorf("global avg with no ratings = %v, want 0", m.GlobalAvgComfort)
	}
	if len(m.Laboratories) != 1 {
		t.Fatalf("laboratories = %d, want 1", len(m.Laboratories))
	}
	summary := m.Laboratories[0]
	if summary.UserCount != 0 || summary.AvgComfort != 0 || summary.TrainingCount != 0 {
		t.Errorf("empty lab summary = %+v, want zeros", summary)
	}
}

func TestComputeMetricsDistinctTrainingDays(t *testing.T) {
	labID := "l1"
	labs := []labModel.LaboratoryModel{lab(labID, "LAB001", "CHU Lyon")}
	trainees := []userModel.UserModel{trainee("t1", "Jean Dupont", &labID)}

	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	day1Later := time.Date(2025, 3, 10, 16, 30, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	validations := []trackingModel.ValidationModel{
		validation("t1", "e1", day1),
		validation("t1", "e2", day1Later),
		validation("t1", "e3", day2),
	}

	m := ComputeMetrics(labs, trainees, nil, validations, DefaultAlertThreshold)

	if got := m.Laboratories[0].TrainingCount; got != 2 {
		t.Errorf("trainingCount = %d, want 2 distinct days from 3 validations", got)
	}
}

func TestComputeMetricsAlertThresholdIsStrict(t *testing.T) {
	labID := "l1"
	labs := []labModel.LaboratoryModel{lab(labID, "LAB001", "CHU Lyon")}
	trainees := []userModel.UserModel{
		trainee("low", "Low Comfort", &labID),
		trainee("high", "High Comfort", &labID),
		trainee("edge", "At Threshold", &labID),
	}
	ratings := []trackingModel.ComfortRatingModel{
		rating("low", "e1", 1),
		rating("low", "e2", 2), // mean 1.5 → alerted
		rating("high", "e1", 4),
		rating("high", "e2", 5), // mean 4.5 → fine
		rating("edge", "e1", 2),
		rating("edge", "e2", 3), // mean 2.5 → not alerted (strictly below only)
	}

	m := ComputeMetrics(labs, trainees, ratings, nil, 2.5)

	if m.AlertCount != 1 {
		t.Fatalf("alertCount = %d, want 1; alerts: %+v", m.AlertCount, m.AlertTrainees)
	}
	alert := m.AlertTrainees[0]
	if alert.ID != "low" {
		t.Errorf("alerted trainee = %s, want low", alert.ID)
	}
	if alert.AvgComfort != 1.5 {
		t.Errorf("alert avgComfort = %v, want 1.5", alert.AvgComfort)
	}
	if alert.Lab != "LAB001" {
		t.Errorf("alert lab = %s, want LAB001", alert.Lab)
	}
}

func TestComputeMetricsAveragesRoundToOneDecimal(t *testing.T) {
	labID := "l1"
	labs := []labModel.LaboratoryModel{lab(labID, "LAB001", "CHU Lyon")}
	trainees := []userModel.UserModel{trainee("t1", "Jean Dupont", &labID)}
	ratings := []trackingModel.ComfortRatingModel{
		rating("t1", "e1", 1),
		rating("t1", "e2", 1),
		rating("t1", "e3", 2), // mean 1.333...
	}

	m := ComputeMetrics(labs, trainees, ratings, nil, DefaultAlertThreshold)

	if got := m.Laboratories[0].AvgComfort; got != 1.3 {
		t.Errorf("lab avgComfort = %v, want 1.3", got)
	}
	if m.GlobalAvgComfort != 1.3 {
		t.Errorf("globalAvgComfort = %v, want 1.3", m.GlobalAvgComfort)
	}
	if len(m.AlertTrainees) != 1 || m.AlertTrainees[0].AvgComfort != 1.3 {
		t.Errorf("alert avgComfort = %+v, want 1.3", m.AlertTrainees)
	}
}

func TestComputeMetricsTraineeWithoutLab(t *testing.T) {
	trainees := []userModel.UserModel{trainee("t1", "Floating Trainee", nil)}
	ratings := []trackingModel.ComfortRatingModel{rating("t1", "e1", 1)}

	m := ComputeMetrics(nil, trainees, ratings, nil, DefaultAlertThreshold)

	if m.AlertCount != 1 {
		t.Fatalf("alertCount = %d, want 1", m.AlertCount)
	}
	if got := m.AlertTrainees[0].Lab; got != "N/A" {
		t.Errorf("lab code = %q, want N/A", got)
	}
}

func TestComputeMetricsLastTrainingIsLatestValidation(t *testing.T) {
	labID := "l1"
	labs := []labModel.LaboratoryModel{lab(labID, "LAB001", "CHU Lyon")}
	trainees := []userModel.UserModel{trainee("t1", "Jean Dupont", &labID)}
	ratings := []trackingModel.ComfortRatingModel{rating("t1", "e1", 1)}

	earlier := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)
	latest := time.Date(2025, 2, 20, 14, 0, 0, 0, time.UTC)
	validations := []trackingModel.ValidationModel{
		validation("t1", "e1", latest),
		validation("t1", "e2", earlier),
	}

	m := ComputeMetrics(labs, trainees, ratings, validations, DefaultAlertThreshold)

	if m.AlertCount != 1 {
		t.Fatalf("alertCount = %d, want 1", m.AlertCount)
	}
	last := m.AlertTrainees[0].LastTraining
	if last == nil || !last.Equal(latest) {
		t.Errorf("lastTraining = %v, want %v", last, latest)
	}
}

func TestComputeMetricsAlertWithoutValidationHasNilLastTraining(t *testing.T) {
	trainees := []userModel.UserModel{trainee("t1", "Jean Dupont", nil)}
	ratings := []trackingModel.ComfortRatingModel{rating("t1", "e1", 2)}

	m := ComputeMetrics(nil, trainees, ratings, nil, DefaultAlertThreshold)

	if m.AlertCount != 1 {
		t.Fatalf("alertCount = %d, want 1", m.AlertCount)
	}
	if m.AlertTrainees[0].LastTraining != nil {
		t.Errorf("lastTraining = %v, want nil", m.AlertTrainees[0].LastTraining)
	}
}

func TestComputeMetricsIgnoresUnknownTrainees(t *testing.T) {
	labID := "l1"
	labs := []labModel.LaboratoryModel{lab(labID, "LAB001", "CHU Lyon")}
	trainees := []userModel.UserModel{trainee("t1", "Jean Dupont", &labID)}
	ratings := []trackingModel.ComfortRatingModel{
		rating("t1", "e1", 4),
		rating("ghost", "e1", 1), // deleted user, rows left behind
	}
	validations := []trackingModel.ValidationModel{
		validation("ghost", "e1", time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)),
	}

	m := ComputeMetrics(labs, trainees, ratings, validations, DefaultAlertThreshold)

	if m.GlobalAvgComfort != 4 {
		t.Errorf("globalAvgComfort = %v, want 4 (ghost rating excluded)", m.GlobalAvgComfort)
	}
	if m.AlertCount != 0 {
		t.Errorf("alertCount = %d, want 0", m.AlertCount)
	}
	if got := m.Laboratories[0].TrainingCount; got != 0 {
		t.Errorf("trainingCount = %d, want 0 (ghost validation excluded)", got)
	}
}
