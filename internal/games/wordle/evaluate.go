package wordle

// Status is the evaluation result of a single letter.
type Status string

const (
	StatusEmpty   Status = "empty"
	StatusAbsent  Status = "absent"
	StatusPresent Status = "present"
	StatusCorrect Status = "correct"

	// StatusUnused is reported for keys that no guess has touched.
	// It never appears in an evaluated row.
	StatusUnused Status = "unused"
)

// rank orders statuses for keyboard merging: correct > present > absent.
func (s Status) rank() int {
	switch s {
	case StatusCorrect:
		return 3
	case StatusPresent:
		return 2
	case StatusAbsent:
		return 1
	default:
		return 0
	}
}

// Letter is one evaluated grid cell.
type Letter struct {
	Letter rune
	Status Status
}

// Row is one line of the grid.
type Row [WordLength]Letter

// consumed marks a position already matched in either word.
const consumed = 0

// Evaluate scores guess against target.
//
// Exact positions are marked first and consume their target letter. Only
// then are the remaining guess letters matched against unconsumed target
// letters, each target occurrence satisfying at most one guess position.
// Both words are expected to be upper-case and WordLength letters long.
func Evaluate(guess, target string) Row {
	g := toRunes(guess)
	t := toRunes(target)

	var row Row
	for i := range row {
		row[i] = Letter{Letter: g[i], Status: StatusEmpty}
	}

	for i := range g {
		if g[i] != consumed && g[i] == t[i] {
			row[i].Status = StatusCorrect
			g[i] = consumed
			t[i] = consumed
		}
	}

	for i := range g {
		if g[i] == consumed {
			continue
		}
		row[i].Status = StatusAbsent
		for j := range t {
			if t[j] != consumed && t[j] == g[i] {
				row[i].Status = StatusPresent
				t[j] = consumed
				break
			}
		}
	}

	return row
}

// Solved reports whether every letter of the row is correct.
func (r Row) Solved() bool {
	for _, l := range r {
		if l.Status != StatusCorrect {
			return false
		}
	}
	return true
}

// Word returns the letters of the row as a string.
func (r Row) Word() string {
	b := make([]rune, 0, WordLength)
	for _, l := range r {
		if l.Letter != 0 {
			b = append(b, l.Letter)
		}
	}
	return string(b)
}

func toRunes(s string) [WordLength]rune {
	var out [WordLength]rune
	i := 0
	for _, r := range s {
		if i == WordLength {
			break
		}
		out[i] = r
		i++
	}
	return out
}
