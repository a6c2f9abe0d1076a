package seeds

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogModel "labtraining_backend/internals/features/catalog/model"
	labModel "labtraining_backend/internals/features/laboratories/model"
	trackingModel "labtraining_backend/internals/features/tracking/model"
	userModel "labtraining_backend/internals/features/users/user/model"
)

func strPtr(s string) *string { return &s }

// RunAllSeeds loads the demo dataset. Idempotent: a database that already has
// users is left untouched.
func RunAllSeeds(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&userModel.UserModel{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		log.Println("[INFO] Seed skipped: users already present")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// Laboratories
		lab1 := labModel.LaboratoryModel{ID: uuid.NewString(), Code: "LAB001", Name: "CHU Lyon"}
		lab2 := labModel.LaboratoryModel{ID: uuid.NewString(), Code: "LAB002", Name: "Institut Pasteur"}
		lab3 := labModel.LaboratoryModel{ID: uuid.NewString(), Code: "LAB003", Name: "CNRS Marseille"}
		if err := tx.Create(&[]labModel.LaboratoryModel{lab1, lab2, lab3}).Error; err != nil {
			return err
		}

		// Users
		trainer := userModel.UserModel{
			ID: uuid.NewString(), Username: "trainer", Password: "pass",
			Role: "trainer", Name: "Dr. Sophie Laurent", Email: strPtr("sophie.laurent@bdbfrance.com"),
		}
		admin := userModel.UserModel{
			ID: uuid.NewString(), Username: "admin", Password: "pass",
			Role: "admin", Name: "Admin System", Email: strPtr("admin@bdbfrance.com"),
		}
		trainee1 := userModel.UserModel{
			ID: uuid.NewString(), Username: "jean.dupont", Password: "pass",
			Role: "trainee", Name: "Jean Dupont", LaboratoryID: &lab1.ID, Email: strPtr("jean.dupont@chu-lyon.fr"),
		}
		trainee2 := userModel.UserModel{
			ID: uuid.NewString(), Username: "marie.martin", Password: "pass",
			Role: "trainee", Name: "Marie Martin", LaboratoryID: &lab1.ID, Email: strPtr("marie.martin@chu-lyon.fr"),
		}
		trainee3 := userModel.UserModel{
			ID: uuid.NewString(), Username: "pierre.bernard", Password: "pass",
			Role: "trainee", Name: "Pierre Bernard", LaboratoryID: &lab2.ID, Email: strPtr("pierre.bernard@pasteur.fr"),
		}
		if err := tx.Create(&[]userModel.UserModel{trainer, admin, trainee1, trainee2, trainee3}).Error; err != nil {
			return err
		}

		// Instruments
		canto := catalogModel.InstrumentModel{ID: uuid.NewString(), Name: "FACS Canto II", Description: strPtr("Cytometre analyseur 8 couleurs")}
		fortessa := catalogModel.InstrumentModel{ID: uuid.NewString(), Name: "LSR Fortessa", Description: strPtr("Cytometre analyseur 18 couleurs")}
		aria := catalogModel.InstrumentModel{ID: uuid.NewString(), Name: "FACS Aria III", Description: strPtr("Trieur cellulaire 4 voies")}
		melody := catalogModel.InstrumentModel{ID: uuid.NewString(), Name: "FACS Melody", Description: strPtr("Trieur cellulaire compact")}
		if err := tx.Create(&[]catalogModel.InstrumentModel{canto, fortessa, aria, melody}).Error; err != nil {
			return err
		}

		// FACS Canto II chapter tree
		ch1 := catalogModel.ChapterModel{ID: uuid.NewString(), InstrumentID: canto.ID, Name: "Demarrage de l'instrument", Order: 1}
		ch2 := catalogModel.ChapterModel{ID: uuid.NewString(), InstrumentID: canto.ID, Name: "Acquisition des donnees", Order: 2}
		ch3 := catalogModel.ChapterModel{ID: uuid.NewString(), InstrumentID: canto.ID, Name: "Arret de l'instrument", Order: 3}
		if err := tx.Create(&[]catalogModel.ChapterModel{ch1, ch2, ch3}).Error; err != nil {
			return err
		}

		sub1 := catalogModel.SubChapterModel{ID: uuid.NewString(), ChapterID: ch1.ID, Name: "Mise en route", Order: 1}
		sub2 := catalogModel.SubChapterModel{ID: uuid.NewString(), ChapterID: ch1.ID, Name: "Controle qualite", Order: 2}
		sub3 := catalogModel.SubChapterModel{ID: uuid.NewString(), ChapterID: ch2.ID, Name: "Configuration du protocole", Order: 1}
		sub4 := catalogModel.SubChapterModel{ID: uuid.NewString(), ChapterID: ch3.ID, Name: "Procedure d'arret", Order: 1}
		if err := tx.Create(&[]catalogModel.SubChapterModel{sub1, sub2, sub3, sub4}).Error; err != nil {
			return err
		}

		elements := []catalogModel.TrainingElementModel{
			{ID: uuid.NewString(), SubChapterID: sub1.ID, Name: "Allumage du cytometre", Description: strPtr("Procedure d'allumage"), ExternalLink: strPtr("https://facsuniversity.com/allumage"), Order: 1},
			{ID: uuid.NewString(), SubChapterID: sub1.ID, Name: "Verification des fluides", Description: strPtr("Controle des niveaux"), ExternalLink: strPtr("https://facsuniversity.com/fluides"), Order: 2},
			{ID: uuid.NewString(), SubChapterID: sub1.ID, Name: "Lancement du logiciel", Description: strPtr("Demarrage de FACSDiva"), Order: 3},
			{ID: uuid.NewString(), SubChapterID: sub2.ID, Name: "CST quotidien", Description: strPtr("Cytometer Setup & Tracking"), ExternalLink: strPtr("https://facsuniversity.com/cst"), Order: 1},
			{ID: uuid.NewString(), SubChapterID: sub2.ID, Name: "Validation des resultats CST", Description: strPtr("Analyse des resultats"), Order: 2},
			{ID: uuid.NewString(), SubChapterID: sub3.ID, Name: "Creation d'experience", Description: strPtr("Nouveau projet dans FACSDiva"), ExternalLink: strPtr("https://facsuniversity.com/experience"), Order: 1},
			{ID: uuid.NewString(), SubChapterID: sub3.ID, Name: "Configuration des parametres", Description: strPtr("Voltages et compensations"), Order: 2},
			{ID: uuid.NewString(), SubChapterID: sub3.ID, Name: "Creation des portes", Description: strPtr("Strategie de gating"), ExternalLink: strPtr("https://facsuniversity.com/gating"), Order: 3},
			{ID: uuid.NewString(), SubChapterID: sub4.ID, Name: "Nettoyage fluidique", Description: strPtr("Rincage du systeme"), Order: 1},
			{ID: uuid.NewString(), SubChapterID: sub4.ID, Name: "Extinction du cytometre", Description: strPtr("Procedure d'arret"), Order: 2},
		}
		if err := tx.Create(&elements).Error; err != nil {
			return err
		}

		// Jean Dupont: the first sub-chapter fully validated plus the daily CST
		validations := make([]trackingModel.ValidationModel, 0, 4)
		for i := 0; i < 4; i++ {
			validations = append(validations, trackingModel.ValidationModel{
				ID:                uuid.NewString(),
				TraineeID:         trainee1.ID,
				TrainingElementID: elements[i].ID,
				TrainerID:         trainer.ID,
				TrainingLocation:  strPtr("Rungis"),
			})
		}
		if err := tx.Create(&validations).Error; err != nil {
			return err
		}

		ratingValues := []int{4, 5, 3, 4}
		ratings := make([]trackingModel.ComfortRatingModel, 0, len(ratingValues))
		for i, v := range ratingValues {
			ratings = append(ratings, trackingModel.ComfortRatingModel{
				ID:                uuid.NewString(),
				TraineeID:         trainee1.ID,
				TrainingElementID: elements[i].ID,
				Rating:            v,
			})
		}
		if err := tx.Create(&ratings).Error; err != nil {
			return err
		}

		log.Println("[INFO] ✅ Demo dataset seeded")
		return nil
	})
}
