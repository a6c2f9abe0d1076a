package service

import (
	"testing"

	catalogModel "labtraining_backend/internals/features/catalog/model"
	trackingModel "labtraining_backend/internals/features/tracking/model"
)

func fixtureTree() (catalogModel.InstrumentModel, []catalogModel.ChapterModel, []catalogModel.SubChapterModel, []catalogModel.TrainingElementModel) {
	instrument := catalogModel.InstrumentModel{ID: "inst-1", Name: "FACS Canto II"}
	chapters := []catalogModel.ChapterModel{
		{ID: "ch-2", InstrumentID: "inst-1", Name: "Acquisition", Order: 2},
		{ID: "ch-1", InstrumentID: "inst-1", Name: "Demarrage", Order: 1},
	}
	subChapters := []catalogModel.SubChapterModel{
		{ID: "sub-2", ChapterID: "ch-1", Name: "Controle qualite", Order: 2},
		{ID: "sub-1", ChapterID: "ch-1", Name: "Mise en route", Order: 1},
		{ID: "sub-3", ChapterID: "ch-2", Name: "Protocole", Order: 1},
	}
	elements := []catalogModel.TrainingElementModel{
		{ID: "el-2", SubChapterID: "sub-1", Name: "Verification des fluides", Order: 2},
		{ID: "el-1", SubChapterID: "sub-1", Name: "Allumage", Order: 1},
		{ID: "el-3", SubChapterID: "sub-3", Name: "Creation d'experience", Order: 1},
	}
	return instrument, chapters, subChapters, elements
}

func TestBuildInstrumentTreeOrdersEveryLevel(t *testing.T) {
	instrument, chapters, subChapters, elements := fixtureTree()

	tree := BuildInstrumentTree(instrument, chapters, subChapters, elements, nil, nil)

	if len(tree.Chapters) != 2 {
		t.Fatalf("chapters = %d, want 2", len(tree.Chapters))
	}
	if tree.Chapters[0].ID != "ch-1" || tree.Chapters[1].ID != "ch-2" {
		t.Errorf("chapter order = [%s %s], want [ch-1 ch-2]", tree.Chapters[0].ID, tree.Chapters[1].ID)
	}

	subs := tree.Chapters[0].SubChapters
	if len(subs) != 2 || subs[0].ID != "sub-1" || subs[1].ID != "sub-2" {
		t.Fatalf("sub-chapter order wrong: %+v", subs)
	}

	els := subs[0].Elements
	if len(els) != 2 || els[0].ID != "el-1" || els[1].ID != "el-2" {
		t.Errorf("element order wrong: %+v", els)
	}
}

func TestBuildInstrumentTreeEmptyBranchesAreSlices(t *testing.T) {
	instrument, chapters, subChapters, _ := fixtureTree()

	tree := BuildInstrumentTree(instrument, chapters, subChapters, nil, nil, nil)

	for _, ch := range tree.Chapters {
		if ch.SubChapters == nil {
			t.Fatalf("chapter %s has nil subChapters", ch.ID)
		}
		for _, sub := range ch.SubChapters {
			if sub.Elements == nil {
				t.Errorf("sub-chapter %s has nil elements", sub.ID)
			}
		}
	}
}

func TestBuildInstrumentTreeSkipsForeignChapters(t *testing.T) {
	instrument, chapters, subChapters, elements := fixtureTree()
	chapters = append(chapters, catalogModel.ChapterModel{ID: "ch-x", InstrumentID: "inst-other", Name: "Foreign", Order: 0})

	tree := BuildInstrumentTree(instrument, chapters, subChapters, elements, nil, nil)

	for _, ch := range tree.Chapters {
		if ch.ID == "ch-x" {
			t.Fatal("chapter from another instrument leaked into the tree")
		}
	}
}

func TestBuildInstrumentTreeDeduplicatesElements(t *testing.T) {
	instrument, chapters, subChapters, elements := fixtureTree()
	elements = append(elements, elements[0]) // duplicate row

	tree := BuildInstrumentTree(instrument, chapters, subChapters, elements, nil, nil)

	seen := map[string]int{}
	for _, ch := range tree.Chapters {
		for _, sub := range ch.SubChapters {
			for _, el := range sub.Elements {
				seen[el.ID]++
			}
		}
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("element %s appears %d times, want 1", id, n)
		}
	}
}

func TestBuildInstrumentTreeAnnotatesTraineeState(t *testing.T) {
	instrument, chapters, subChapters, elements := fixtureTree()
	validations := []trackingModel.ValidationModel{
		{ID: "v-1", TraineeID: "t1", TrainingElementID: "el-1", TrainerID: "tr-1"},
	}
	ratings := []trackingModel.ComfortRatingModel{
		{ID: "r-1", TraineeID: "t1", TrainingElementID: "el-2", Rating: 4},
	}

	tree := BuildInstrumentTree(instrument, chapters, subChapters, elements, validations, ratings)

	byID := map[string]ElementNode{}
	for _, ch := range tree.Chapters {
		for _, sub := range ch.SubChapters {
			for _, el := range sub.Elements {
				byID[el.ID] = el
			}
		}
	}

	if byID["el-1"].Validation == nil || byID["el-1"].Validation.ID != "v-1" {
		t.Errorf("el-1 validation = %+v, want v-1", byID["el-1"].Validation)
	}
	if byID["el-1"].ComfortRating != nil {
		t.Errorf("el-1 comfortRating = %+v, want nil", byID["el-1"].ComfortRating)
	}
	if byID["el-2"].ComfortRating == nil || byID["el-2"].ComfortRating.Rating != 4 {
		t.Errorf("el-2 comfortRating = %+v, want rating 4", byID["el-2"].ComfortRating)
	}
	if byID["el-3"].Validation != nil || byID["el-3"].ComfortRating != nil {
		t.Errorf("el-3 should carry no annotations: %+v", byID["el-3"])
	}
}
