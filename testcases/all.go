package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"fill":      fillCases,
	"curve":     curveCases,
	"subpath":   subpathCases,
	"precision": precisionCases,
	"clip":      clipCases,
	"ctm":       ctmCases,
	"large":     largeCases,
	"stroke":    strokeCases,
	"dash":      dashCases,
	"complex":   complexCases,
}
