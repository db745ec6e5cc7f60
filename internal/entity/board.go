package entity

import "strings"

type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	PlayerTie Mark = "-"
)

const BoardSize = 9

// WinCombos - rows top-to-bottom, columns left-to-right, then both diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent - returns the mark that moves after this one.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Board - nine cells in row-major order.
type Board [BoardSize]Mark

func (that *Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}
	return count
}

// NextMark - X always moves first and the marks alternate.
func (that *Board) NextMark() Mark {
	if that.Count(PlayerX) > that.Count(PlayerO) {
		return PlayerO
	}
	return PlayerX
}

// String - renders the board as a text grid, empty cells as blanks.
func (that Board) String() string {
	symbol := func(cell Mark) string {
		if cell == EmptyCell {
			return " "
		}
		return string(cell)
	}

	rows := make([]string, 0, 5)
	for row := 0; row < 3; row++ {
		if row > 0 {
			rows = append(rows, "-----------")
		}
		rows = append(rows, " "+symbol(that[row*3])+" | "+symbol(that[row*3+1])+" | "+symbol(that[row*3+2])+" ")
	}

	return strings.Join(rows, "\n")
}
