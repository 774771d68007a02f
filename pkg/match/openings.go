package match

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"laptudirm.com/x/corners/pkg/game"
)

// NewBook reads an opening book with one board per line. Empty lines and
// lines starting with '#' are skipped. The strategy is either "random" or
// anything else for sequential order.
func NewBook(name string, strategy string, size int) (*OpeningBook, error) {
	file, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	var boards []game.Board
	for i, entry := range strings.Split(string(file), "\n") {
		entry = strings.Trim(entry, "\n\r\t ")
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}

		board, err := game.ParseBoard(entry)
		if err != nil {
			return nil, fmt.Errorf("opening book %s:%d: %w", name, i+1, err)
		}

		if board.Size() != size {
			return nil, fmt.Errorf("opening book %s:%d: board size %d, expected %d", name, i+1, board.Size(), size)
		}

		boards = append(boards, board)
	}

	return NewBookFromBoards(strategy, boards...)
}

// NewBookFromBoards creates a book with the given boards.
func NewBookFromBoards(strategy string, boards ...game.Board) (*OpeningBook, error) {
	if len(boards) == 0 {
		return nil, errors.New("opening book: no openings")
	}

	return &OpeningBook{
		entries:  boards,
		strategy: strategy,
	}, nil
}

type OpeningBook struct {
	entries  []game.Board
	strategy string
	current  int
}

func (book *OpeningBook) Next() {
	switch book.strategy {
	case "random":
		book.current = rand.Intn(len(book.entries))
	default:
		book.current = (book.current + 1) % len(book.entries)
	}
}

// Current returns a copy of the current opening.
func (book *OpeningBook) Current() game.Board {
	return book.entries[book.current].Clone()
}

func (book *OpeningBook) Len() int {
	return len(book.entries)
}
