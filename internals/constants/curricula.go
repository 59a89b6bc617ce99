package constants

// Curriculum identifiers accepted on bible study creation.
const (
	CurriculumNewBelievers    = "new-believers"
	CurriculumFoundations     = "foundations"
	CurriculumSpiritualGrowth = "spiritual-growth"
)

var KnownCurricula = []string{
	CurriculumNewBelievers,
	CurriculumFoundations,
	CurriculumSpiritualGrowth,
}
