// internal/game/scoring.go
//
// Letter scoring.
//
// Two strategies:
//   - Positional: each letter judged on its own against the target.
//   - Two-pass: exact matches first, then present marks limited by how many
//     of that letter the target still has.

package game

// Classify marks letter as typed at index against target, on its own:
// correct if target has it at index, present if target has it anywhere
// else, absent otherwise.
func Classify(letter rune, index int, target string) Mark {
	return classify(letter, index, []rune(target))
}

func classify(letter rune, index int, target []rune) Mark {
	if index >= 0 && index < len(target) && target[index] == letter {
		return MarkCorrect
	}
	for _, r := range target {
		if r == letter {
			return MarkPresent
		}
	}
	return MarkAbsent
}

// positionalMarks classifies every letter of guess independently.
func positionalMarks(target, guess []rune) []Mark {
	res := make([]Mark, len(guess))
	for i, r := range guess {
		res[i] = classify(r, i, target)
	}
	return res
}

// scoreGuess implements the duplicate-aware two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count the remaining (non-correct) target letters.
//
// Pass 2:
//   - For each other guess letter: if a count remains for it, mark present
//     and decrement; otherwise mark absent.
func scoreGuess(target, guess []rune) []Mark {
	n := len(guess)
	res := make([]Mark, n)
	counts := make(map[rune]int, len(target))

	for i := 0; i < n; i++ {
		if i < len(target) && guess[i] == target[i] {
			res[i] = MarkCorrect
		} else if i < len(target) {
			counts[target[i]]++
		}
	}
	for i := n; i < len(target); i++ {
		counts[target[i]]++
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		if counts[guess[i]] > 0 {
			res[i] = MarkPresent
			counts[guess[i]]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}
