// internal/viewmodel/viewmodel.go
//
// Presentation data shared by the adapters.
//
// Responsibilities:
//   - Turn a game.State into a plain Snapshot: the tile grid, the colored
//     keyboard and the header counters.
//   - Stay free of rendering; HTTP encodes it as JSON, the terminal draws it.

package viewmodel

import (
	"github.com/robalobadob/wordle/apps/go-solo/internal/game"
)

// KeyRows is the on-screen keyboard layout.
var KeyRows = [][]rune{
	[]rune("qwertyuiop"),
	[]rune("asdfghjkl"),
	[]rune("zxcvbnm"),
}

// Tile is one filled board cell. Active tiles belong to the row being typed
// and carry no mark.
type Tile struct {
	Char   string    `json:"char"`
	Mark   game.Mark `json:"mark,omitempty"`
	Active bool      `json:"active,omitempty"`
}

// Key is one keyboard key with the best mark its letter has received.
type Key struct {
	Char string    `json:"char"`
	Mark game.Mark `json:"mark,omitempty"`
}

// Snapshot is everything an adapter needs to redraw after an event.
type Snapshot struct {
	Status        game.Status `json:"status"`
	Score         int         `json:"score"`
	Streak        int         `json:"streak"`
	WordLength    int         `json:"wordLength"`
	TotalAttempts int         `json:"totalAttempts"`
	AttemptsUsed  int         `json:"attemptsUsed"`
	Board         [][]*Tile   `json:"board"`
	Keyboard      [][]Key     `json:"keyboard"`
	Error         string      `json:"error,omitempty"`
	Answer        string      `json:"answer,omitempty"`
}

// Build reads g densely: every row and column of the board is present, with
// nil for cells not typed yet. The answer is included once the round is
// over, won or lost; after a win it is the last completed row.
func Build(g *game.State) Snapshot {
	s := Snapshot{
		Status:        g.Status(),
		Score:         g.Score(),
		Streak:        g.Streak(),
		WordLength:    g.WordLength(),
		TotalAttempts: g.TotalAttempts(),
		AttemptsUsed:  g.AttemptsUsed(),
		Error:         g.Validation().Message(),
	}
	if s.Status != game.StatusInProgress {
		s.Answer = g.Target()
	}

	s.Board = make([][]*Tile, s.TotalAttempts)
	for row := range s.Board {
		s.Board[row] = make([]*Tile, s.WordLength)
		for col := range s.Board[row] {
			l, ok := g.LetterAt(row, col)
			if !ok {
				continue
			}
			t := &Tile{Char: string(l.Char), Active: l.Active}
			if !l.Active {
				t.Mark = l.Mark
			}
			s.Board[row][col] = t
		}
	}

	s.Keyboard = make([][]Key, len(KeyRows))
	for i, keys := range KeyRows {
		s.Keyboard[i] = make([]Key, len(keys))
		for j, r := range keys {
			k := Key{Char: string(r)}
			if m, ok := g.KeyboardMark(r); ok {
				k.Mark = m
			}
			s.Keyboard[i][j] = k
		}
	}
	return s
}
