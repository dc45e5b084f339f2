package theme

// Spacing is the spacing scale in design points.
type Spacing int

const (
	ExtraSmall Spacing = 4
	Small      Spacing = 8
	Regular    Spacing = 16
	Medium     Spacing = 24
	Large      Spacing = 32
)

// DefaultSpacing is the spacing used between stacked elements.
const DefaultSpacing = Regular

// pointsPerCell converts design points to terminal cells.
const pointsPerCell = 4

// Cells returns the spacing in terminal columns.
func (s Spacing) Cells() int {
	return int(s) / pointsPerCell
}

// Lines returns the spacing in terminal rows. Rows are roughly twice as tall
// as columns are wide, so the vertical scale is halved.
func (s Spacing) Lines() int {
	return int(s) / (pointsPerCell * 2)
}

// SpacingFromPoints snaps an arbitrary point value onto the scale, falling
// back to Regular when it does not match a step.
func SpacingFromPoints(points float64) Spacing {
	switch Spacing(points) {
	case ExtraSmall, Small, Regular, Medium, Large:
		if float64(int(points)) == points {
			return Spacing(points)
		}
	}
	return Regular
}
