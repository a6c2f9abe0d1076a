package service

import (
	"math"
	"time"

	labModel "labtraining_backend/internals/features/laboratories/model"
	trackingModel "labtraining_backend/internals/features/tracking/model"
	userModel "labtraining_backend/internals/features/users/user/model"
)

// DefaultAlertThreshold on the 1-5 comfort scale.
const DefaultAlertThreshold = 2.5

type AlertTrainee struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Lab          string     `json:"lab"`
	AvgComfort   float64    `json:"avgComfort"`
	LastTraining *time.Time `json:"lastTraining"`
}

type LaboratorySummary struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	UserCount     int     `json:"userCount"`
	AvgComfort    float64 `json:"avgComfort"`
	TrainingCount int     `json:"trainingCount"`
}

type Metrics struct {
	LabCount         int                 `json:"labCount"`
	TraineeCount     int                 `json:"traineeCount"`
	AlertCount       int                 `json:"alertCount"`
	GlobalAvgComfort float64             `json:"globalAvgComfort"`
	AlertThreshold   float64             `json:"alertThreshold"`
	AlertTrainees    []AlertTrainee      `json:"alertTrainees"`
	Laboratories     []LaboratorySummary `json:"laboratories"`
}

// round1 rounds to one decimal.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// dayKey truncates a validation timestamp to its calendar date.
func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ComputeMetrics is a pure read-and-reduce over the four loaded collections:
// per-laboratory summaries, the below-threshold alert list, and the global
// counters. Averages with no ratings are 0, never NaN. A trainee is alerted
// only when the mean is strictly below the threshold. trainingCount is the
// number of distinct training days, not the number of validation rows.
func ComputeMetrics(
	labs []labModel.LaboratoryModel,
	trainees []userModel.UserModel,
	ratings []trackingModel.ComfortRatingModel,
	validations []trackingModel.ValidationModel,
	threshold float64,
) Metrics {
	traineeByID := make(map[string]userModel.UserModel, len(trainees))
	labByTrainee := make(map[string]string, len(trainees))
	for _, t := range trainees {
		traineeByID[t.ID] = t
		if t.LaboratoryID != nil {
			labByTrainee[t.ID] = *t.LaboratoryID
		}
	}
	labByID := make(map[string]labModel.LaboratoryModel, len(labs))
	for _, l := range labs {
		labByID[l.ID] = l
	}

	// per-trainee rating sums; only ratings belonging to known trainees count
	ratingSum := make(map[string]int)
	ratingCount := make(map[string]int)
	globalSum := 0
	globalCount := 0
	for _, r := range ratings {
		if _, ok := traineeByID[r.TraineeID]; !ok {
			continue
		}
		ratingSum[r.TraineeID] += r.Rating
		ratingCount[r.TraineeID]++
		globalSum += r.Rating
		globalCount++
	}

	// per-trainee latest validation, per-lab distinct training days
	lastValidation := make(map[string]time.Time)
	labDays := make(map[string]map[string]bool)
	for _, v := range validations {
		if _, ok := traineeByID[v.TraineeID]; !ok {
			continue
		}
		if last, ok := lastValidation[v.TraineeID]; !ok || v.ValidatedAt.After(last) {
			lastValidation[v.TraineeID] = v.ValidatedAt
		}
		if labID, ok := labByTrainee[v.TraineeID]; ok {
			if labDays[labID] == nil {
				labDays[labID] = make(map[string]bool)
			}
			labDays[labID][dayKey(v.ValidatedAt)] = true
		}
	}

	summaries := make([]LaboratorySummary, 0, len(labs))
	for _, lab := range labs {
		userCount := 0
		sum := 0
		count := 0
		for _, t := range trainees {
			if t.LaboratoryID == nil || *t.LaboratoryID != lab.ID {
				continue
			}
			userCount++
			sum += ratingSum[t.ID]
			count += ratingCount[t.ID]
		}

		avg := 0.0
		if count > 0 {
			avg = round1(float64(sum) / float64(count))
		}
		summaries = append(summaries, LaboratorySummary{
			ID:            lab.ID,
			Code:          lab.Code,
			Name:          lab.Name,
			UserCount:     userCount,
			AvgComfort:    avg,
			TrainingCount: len(labDays[lab.ID]),
		})
	}

	alerts := make([]AlertTrainee, 0)
	for _, t := range trainees {
		count := ratingCount[t.ID]
		if count == 0 {
			continue
		}
		mean := float64(ratingSum[t.ID]) / float64(count)
		if !(mean < threshold) {
			continue
		}

		labCode := "N/A"
		if t.LaboratoryID != nil {
			if lab, ok := labByID[*t.LaboratoryID]; ok {
				labCode = lab.Code
			}
		}
		var last *time.Time
		if ts, ok := lastValidation[t.ID]; ok {
			tsCopy := ts
			last = &tsCopy
		}
		alerts = append(alerts, AlertTrainee{
			ID:           t.ID,
			Name:         t.Name,
			Lab:          labCode,
			AvgComfort:   round1(mean),
			LastTraining: last,
		})
	}

	globalAvg := 0.0
	if globalCount > 0 {
		globalAvg = round1(float64(globalSum) / float64(globalCount))
	}

	return Metrics{
		LabCount:         len(labs),
		TraineeCount:     len(trainees),
		AlertCount:       len(alerts),
		GlobalAvgComfort: globalAvg,
		AlertThreshold:   threshold,
		AlertTrainees:    alerts,
		Laboratories:     summaries,
	}
}
