package service

import (
	"sort"

	catalogModel "labtraining_backend/internals/features/catalog/model"
	trackingModel "labtraining_backend/internals/features/tracking/model"
)

// ElementNode is a training element optionally annotated with the requesting
// trainee's validation and comfort rating. Missing annotations are omitted
// from JSON entirely so consumers can tell "not yet validated" apart from
// "validated".
type ElementNode struct {
	catalogModel.TrainingElementModel
	Validation    *trackingModel.ValidationModel    `json:"validation,omitempty"`
	ComfortRating *trackingModel.ComfortRatingModel `json:"comfortRating,omitempty"`
}

type SubChapterNode struct {
	catalogModel.SubChapterModel
	Elements []ElementNode `json:"elements"`
}

type ChapterNode struct {
	catalogModel.ChapterModel
	SubChapters []SubChapterNode `json:"subChapters"`
}

type InstrumentTree struct {
	catalogModel.InstrumentModel
	Chapters []ChapterNode `json:"chapters"`
}

// BuildInstrumentTree materializes the Instrument→Chapter→SubChapter→Element
// tree. Siblings at every level are sorted ascending by their order field;
// an element appears at most once even if the input carries duplicates.
// The validations/ratings slices are expected to be scoped to one trainee
// already; they are matched to elements by training element id.
func BuildInstrumentTree(
	instrument catalogModel.InstrumentModel,
	chapters []catalogModel.ChapterModel,
	subChapters []catalogModel.SubChapterModel,
	elements []catalogModel.TrainingElementModel,
	validations []trackingModel.ValidationModel,
	ratings []trackingModel.ComfortRatingModel,
) InstrumentTree {
	validationByElement := make(map[string]trackingModel.ValidationModel, len(validations))
	for _, v := range validations {
		validationByElement[v.TrainingElementID] = v
	}
	ratingByElement := make(map[string]trackingModel.ComfortRatingModel, len(ratings))
	for _, r := range ratings {
		ratingByElement[r.TrainingElementID] = r
	}

	elementsBySubChapter := make(map[string][]ElementNode)
	seenElements := make(map[string]bool, len(elements))
	for _, el := range elements {
		if seenElements[el.ID] {
			continue
		}
		seenElements[el.ID] = true

		node := ElementNode{TrainingElementModel: el}
		if v, ok := validationByElement[el.ID]; ok {
			vc := v
			node.Validation = &vc
		}
		if r, ok := ratingByElement[el.ID]; ok {
			rc := r
			node.ComfortRating = &rc
		}
		elementsBySubChapter[el.SubChapterID] = append(elementsBySubChapter[el.SubChapterID], node)
	}

	subChaptersByChapter := make(map[string][]SubChapterNode)
	for _, sc := range subChapters {
		children := elementsBySubChapter[sc.ID]
		if children == nil {
			children = []ElementNode{}
		}
		sort.SliceStable(children, func(i, j int) bool {
			return children[i].Order < children[j].Order
		})
		subChaptersByChapter[sc.ChapterID] = append(subChaptersByChapter[sc.ChapterID], SubChapterNode{
			SubChapterModel: sc,
			Elements:        children,
		})
	}

	tree := InstrumentTree{
		InstrumentModel: instrument,
		Chapters:        []ChapterNode{},
	}
	sorted := append([]catalogModel.ChapterModel(nil), chapters...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	for _, ch := range sorted {
		if ch.InstrumentID != instrument.ID {
			continue
		}
		children := subChaptersByChapter[ch.ID]
		if children == nil {
			children = []SubChapterNode{}
		}
		sort.SliceStable(children, func(i, j int) bool {
			return children[i].Order < children[j].Order
		})
		tree.Chapters = append(tree.Chapters, ChapterNode{
			ChapterModel: ch,
			SubChapters:  children,
		})
	}

	return tree
}
