package curriculum

import (
	"disciplehub_backend/internals/constants"
	helper "disciplehub_backend/internals/helpers"
)

// LessonDef is one catalog entry: position and title within a curriculum.
type LessonDef struct {
	Number int
	Title  string
}

// The catalog is fixed at build time. Lesson numbers are 1-based and
// contiguous; studies materialize one lesson record per entry.
var catalog = map[string][]LessonDef{
	constants.CurriculumNewBelievers: {
		{Number: 1, Title: "Salvation and the New Birth"},
		{Number: 2, Title: "Repentance"},
		{Number: 3, Title: "Water Baptism"},
		{Number: 4, Title: "The Gift of the Holy Ghost"},
		{Number: 5, Title: "Prayer and Devotion"},
		{Number: 6, Title: "Reading the Word"},
		{Number: 7, Title: "Life in the Church"},
		{Number: 8, Title: "Sharing Your Testimony"},
	},
	constants.CurriculumFoundations: {
		{Number: 1, Title: "The Nature of God"},
		{Number: 2, Title: "The Authority of Scripture"},
		{Number: 3, Title: "Sin and Grace"},
		{Number: 4, Title: "Faith and Obedience"},
		{Number: 5, Title: "The Church and Its Mission"},
		{Number: 6, Title: "Worship"},
		{Number: 7, Title: "Stewardship"},
		{Number: 8, Title: "Spiritual Disciplines"},
		{Number: 9, Title: "The Second Coming"},
		{Number: 10, Title: "Living as a Disciple"},
	},
	constants.CurriculumSpiritualGrowth: {
		{Number: 1, Title: "Walking in the Spirit"},
		{Number: 2, Title: "Overcoming Temptation"},
		{Number: 3, Title: "The Fruit of the Spirit"},
		{Number: 4, Title: "Hearing God's Voice"},
		{Number: 5, Title: "Serving Others"},
		{Number: 6, Title: "Mentoring New Believers"},
	},
}

// Lessons returns the ordered lesson definitions for a curriculum.
// The returned slice is a copy; callers may not mutate the catalog.
func Lessons(curriculumID string) ([]LessonDef, error) {
	defs, ok := catalog[curriculumID]
	if !ok {
		return nil, helper.ErrUnknownCurriculum
	}
	out := make([]LessonDef, len(defs))
	copy(out, defs)
	return out, nil
}

// Exists reports whether the curriculum id is in the catalog.
func Exists(curriculumID string) bool {
	_, ok := catalog[curriculumID]
	return ok
}
