package floor

// tablePlans maps a section count to the floor plan for that many servers:
// one ordered group of table numbers per section. The groups for a given
// count partition the whole floor; different counts repartition it rather
// than splitting existing sections. A single server has no curated plan and
// takes the whole floor via the fallback in ResolvePlan.
var tablePlans = map[int][][]int{
	2: {
		{31, 32, 33, 34, 35, 36, 37, 41, 42, 43},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 51, 52, 53, 54, 55, 61, 62, 63, 64, 65},
	},
	3: {
		{31, 32, 33, 34, 35, 36, 37, 41, 42, 43},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30},
		{51, 52, 53, 54, 55, 61, 62, 63, 64, 65},
	},
	4: {
		{31, 32, 33, 34, 35, 36, 37, 41, 42, 43},
		{1, 2, 3, 4, 5, 6, 21, 22, 23, 24, 25},
		{51, 52, 53, 54, 55, 61, 62, 63, 64, 65},
		{7, 8, 9, 10, 11, 26, 27, 28, 29, 30},
	},
	5: {
		{31, 32, 33, 34, 35, 36, 37, 41, 42, 43},
		{4, 5, 6, 7, 8, 25, 26},
		{51, 52, 53, 54, 55, 61, 62, 63, 64, 65},
		{9, 10, 11, 27, 28, 29, 30},
		{1, 2, 3, 21, 22, 23, 24},
	},
	6: {
		{31, 32, 33, 34, 35},
		{4, 5, 6, 7, 8, 25, 26},
		{51, 52, 53, 54, 55, 61, 62, 63, 64, 65},
		{9, 10, 11, 27, 28, 29, 30},
		{1, 2, 3, 21, 22, 23, 24},
		{36, 37, 41, 42, 43},
	},
	7: {
		{31, 32, 33, 34, 35},
		{4, 5, 6, 7, 8, 25, 26},
		{54, 55, 63, 64, 65},
		{9, 10, 11, 27, 28, 29, 30},
		{1, 2, 3, 21, 22, 23, 24},
		{36, 37, 41, 42, 43},
		{51, 52, 53, 61, 62},
	},
	8: {
		{31, 32, 33, 34, 35},
		{4, 5, 6, 7, 24, 25},
		{54, 55, 63, 64, 65},
		{10, 11, 28, 29, 30},
		{1, 2, 3, 21, 22, 23},
		{36, 37, 41, 42, 43},
		{51, 52, 53, 61, 62},
		{8, 9, 26, 27},
	},
	9: {
		{31, 32, 33, 34, 35},
		{4, 5, 6, 7, 26},
		{54, 55, 64, 65},
		{10, 11, 29, 30},
		{1, 2, 21, 22},
		{36, 37, 41, 42, 43},
		{51, 52, 53, 61, 62, 63},
		{8, 9, 27, 28},
		{3, 23, 24, 25},
	},
}

// MinSections and MaxSections bound the number of floor sections: one per
// server, at least one section, at most nine (the floor plan tops out at 9).
const (
	MinSections = 1
	MaxSections = 9
)

// ResolvePlan returns the table groups for sectionCount, one group per
// section in section order (section 1 first). Counts without a curated plan
// collapse to a single section holding every table on the floor. Pure and
// deterministic; callers get a fresh copy each time.
func ResolvePlan(sectionCount int) [][]int {
	plan, ok := tablePlans[sectionCount]
	if !ok {
		// Fallback: whole floor as one section.
		var all []int
		for _, group := range tablePlans[3] {
			all = append(all, group...)
		}
		return [][]int{all}
	}
	out := make([][]int, len(plan))
	for i, group := range plan {
		out[i] = append([]int(nil), group...)
	}
	return out
}

// ClampSections maps a server count onto the valid section range.
func ClampSections(n int) int {
	if n < MinSections {
		return MinSections
	}
	if n > MaxSections {
		return MaxSections
	}
	return n
}
