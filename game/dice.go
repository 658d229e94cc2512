package game

// Outcome is the effect of a single die.
type Outcome int

const (
	Keep Outcome = iota
	Left
	Right
	Center
)

const dieFaces = 6

var outcomeNames = [...]string{"Keep", "Left", "Right", "Center"}

func (o Outcome) String() string {
	if o < Keep || o > Center {
		return "Unknown"
	}
	return outcomeNames[o]
}

// faceOutcome maps a die face in [0, 6) to its outcome. Half the faces are Keep.
func faceOutcome(face int) Outcome {
	switch face {
	case 5:
		return Center
	case 4:
		return Right
	case 3:
		return Left
	default:
		return Keep
	}
}

// Roll rolls num dice and returns their outcomes in order. Players never roll
// more than three, but Roll itself does not cap num.
func Roll(src Source, num int) []Outcome {
	outcomes := make([]Outcome, num)
	RollInto(src, outcomes)
	return outcomes
}

// RollInto fills dst with one outcome per die.
func RollInto(src Source, dst []Outcome) {
	for i := range dst {
		dst[i] = faceOutcome(src.Intn(dieFaces))
	}
}
