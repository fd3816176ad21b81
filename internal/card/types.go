package card

// Color is the amoeba color axis.
type Color uint8

const (
	Red Color = iota
	Blue
)

// Pattern is the amoeba pattern axis.
type Pattern uint8

const (
	Striped Pattern = iota
	Dotty
)

// Eye is the amoeba eye axis.
type Eye uint8

const (
	Single Eye = iota
	Double
)

// LabColor identifies a lab card. It never takes part in matching.
type LabColor uint8

const (
	LabRed LabColor = iota
	LabGreen
	LabYellow
)

// Declaration order of each axis; Next advances through these lists.
var (
	Colors    = [...]Color{Red, Blue}
	Patterns  = [...]Pattern{Striped, Dotty}
	Eyes      = [...]Eye{Single, Double}
	LabColors = [...]LabColor{LabRed, LabGreen, LabYellow}
)

var (
	colorNames    = [...]string{Red: "Red", Blue: "Blue"}
	patternNames  = [...]string{Striped: "Striped", Dotty: "Dotty"}
	eyeNames      = [...]string{Single: "Single", Double: "Double"}
	labColorNames = [...]string{LabRed: "Red", LabGreen: "Green", LabYellow: "Yellow"}
)

func (c Color) String() string    { return name(colorNames[:], int(c)) }
func (p Pattern) String() string  { return name(patternNames[:], int(p)) }
func (e Eye) String() string      { return name(eyeNames[:], int(e)) }
func (l LabColor) String() string { return name(labColorNames[:], int(l)) }

// Next returns the following color, wrapping after the last one.
func (c Color) Next() Color { return Colors[(int(c)+1)%len(Colors)] }

// Next returns the following pattern, wrapping after the last one.
func (p Pattern) Next() Pattern { return Patterns[(int(p)+1)%len(Patterns)] }

// Next returns the following eye value, wrapping after the last one.
func (e Eye) Next() Eye { return Eyes[(int(e)+1)%len(Eyes)] }

func name(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "Unknown"
	}
	return names[i]
}
