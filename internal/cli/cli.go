// Package cli is the terminal front end: a menu, a move prompt and a text board.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const sessionID = "console"

var errQuit = errors.New("player quit")

type computerPlayer interface {
	ChooseMove(board entity.Board, mark entity.Mark) (int, bool)
}

type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	computer computerPlayer
}

func New(in io.Reader, out io.Writer, computer computerPlayer) *Console {
	return &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		computer: computer,
	}
}

// Run - shows the mode menu and plays one game. Quitting or closing the input is not an error.
func (that *Console) Run() error {
	that.println("Tic Tac Toe")
	that.println("1) Human vs Human")
	that.println("2) Human vs Computer (you choose X or O)")
	that.println("Q) Quit")

	err := that.chooseMode()
	switch {
	case errors.Is(err, errQuit):
		that.println("Exiting.")
		return nil
	case errors.Is(err, io.EOF):
		return nil
	default:
		return err
	}
}

func (that *Console) chooseMode() error {
	for {
		choice, err := that.prompt("Choose mode [1/2/Q]: ")
		if err != nil {
			return err
		}

		switch strings.ToLower(choice) {
		case "1":
			return that.play(entity.HumanVsHumanMode, entity.EmptyCell)
		case "2":
			side, err := that.chooseSide()
			if err != nil {
				return err
			}
			return that.play(entity.HumanVsComputerMode, side)
		case "q", "quit", "exit":
			that.println("Goodbye.")
			return nil
		default:
			that.println("Invalid selection.")
		}
	}
}

func (that *Console) chooseSide() (entity.Mark, error) {
	for {
		side, err := that.prompt("Play as X (goes first) or O? [X/O]: ")
		if err != nil {
			return entity.EmptyCell, err
		}

		if mark := entity.Mark(strings.ToUpper(side)); mark.IsPlayer() {
			return mark, nil
		}

		that.println("Invalid choice. Enter X or O.")
	}
}

func (that *Console) play(mode string, humanMark entity.Mark) error {
	game, err := entity.NewGame(sessionID, mode, humanMark)
	if err != nil {
		return err
	}

	for !game.IsFinished() {
		that.println(game.Board.String())

		if game.IsComputerTurn() {
			err = that.computerTurn(game)
		} else {
			err = that.humanTurn(game)
		}

		if err != nil {
			return err
		}
	}

	that.println(game.Board.String())
	that.println(resultMessage(game))

	return nil
}

func (that *Console) humanTurn(game *entity.Game) error {
	if game.IsWithComputer() {
		that.println(fmt.Sprintf("Your turn (%s).", game.Turn))
	} else {
		that.println(fmt.Sprintf("Player %s's turn.", game.Turn))
	}

	cell, err := that.readMove(game.Board)
	if err != nil {
		return err
	}

	return tictactoe.MakeTurn(game, game.Turn, cell)
}

func (that *Console) computerTurn(game *entity.Game) error {
	mark := game.ComputerMark()
	that.println(fmt.Sprintf("Computer's turn (%s). Thinking...", mark))

	cell, ok := that.computer.ChooseMove(game.Board, mark)
	if !ok {
		moves := tictactoe.LegalMoves(game.Board)
		if len(moves) == 0 {
			return nil
		}
		cell = moves[0]
	}

	if err := tictactoe.MakeTurn(game, mark, cell); err != nil {
		return fmt.Errorf("computer failed to make turn: %w", err)
	}

	that.println(fmt.Sprintf("Computer chose %d.", cell+1))

	return nil
}

// readMove - prompts until the player names an empty cell, 1-9 on screen, 0-8 on return.
func (that *Console) readMove(board entity.Board) (int, error) {
	moves := tictactoe.LegalMoves(board)

	for {
		raw, err := that.prompt("Enter move (1-9): ")
		if err != nil {
			return 0, err
		}

		switch strings.ToLower(raw) {
		case "q", "quit", "exit":
			return 0, errQuit
		}

		number, err := strconv.Atoi(raw)
		if err != nil {
			that.println("Please enter a number from 1 to 9.")
			continue
		}

		if cell := number - 1; slices.Contains(moves, cell) {
			return cell, nil
		}

		that.println("Invalid move. Cell occupied or out of range.")
	}
}

func (that *Console) prompt(text string) (string, error) {
	fmt.Fprint(that.out, text)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return strings.TrimSpace(that.in.Text()), nil
}

func (that *Console) println(text string) {
	fmt.Fprintln(that.out, text)
}

func resultMessage(game *entity.Game) string {
	switch {
	case game.Winner == entity.PlayerTie:
		return "It's a tie."
	case !game.IsWithComputer():
		return fmt.Sprintf("Player %s wins!", game.Winner)
	case game.Winner == game.HumanMark:
		return "You win!"
	default:
		return "Computer wins!"
	}
}
