// assets/embed.go
//
// Default dictionary bundled into the binary.
//
// Responsibilities:
//   - Embed words.txt so the game runs with no word list file or database.
//   - Hand out the raw file; cleaning it up (comments, blanks, case) is left
//     to the words package, which applies the same rules to every source.

package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.txt
var FS embed.FS

// WordsFile is the name of the bundled word list inside FS.
const WordsFile = "words.txt"

// Open returns the bundled word list for reading.
func Open() (fs.File, error) {
	return FS.Open(WordsFile)
}
