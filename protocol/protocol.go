// Package protocol speaks the game engine's text protocol: each turn the
// engine writes a player header, the Anfield grid, and the offered piece
// to the robot's stdin, and the robot answers with a single "X Y" line.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mkalinowski/filler/gamestate"
)

// Move is an anchor coordinate submitted to the engine.
type Move struct {
	X int
	Y int
}

// Fallback is the move submitted when no valid placement exists; the
// engine treats it as a forfeit of the turn, not of the game.
func Fallback() Move { return Move{X: 0, Y: 0} }

func (m Move) String() string {
	return fmt.Sprintf("%d %d", m.X, m.Y)
}

// Write submits the move, newline-terminated.
func (m Move) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d %d\n", m.X, m.Y)
	return err
}

// Reader decodes turn snapshots from an engine stream.
type Reader struct {
	r *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadTurn decodes one complete turn: the "$$$ exec pN : [...]" header,
// the Anfield section, and the Piece section. It returns io.EOF once the
// engine closes the stream between turns.
func (r *Reader) ReadTurn() (*gamestate.GameState, error) {
	header, err := r.line()
	if err != nil {
		return nil, err
	}
	player, err := parsePlayerLine(header)
	if err != nil {
		return nil, err
	}

	grid, err := r.readAnfield()
	if err != nil {
		return nil, err
	}

	piece, err := r.readPiece()
	if err != nil {
		return nil, err
	}

	return gamestate.NewGameState(player, grid, piece), nil
}

// line reads one newline-terminated line. A final unterminated line is
// returned as-is; io.EOF surfaces only when nothing was read.
func (r *Reader) line() (string, error) {
	line, err := r.r.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

// parsePlayerLine extracts the player slot from a header like
// "$$$ exec p1 : [robots/bender]".
func parsePlayerLine(line string) (gamestate.Player, error) {
	trimmed := strings.TrimSpace(line)
	idx := strings.IndexByte(trimmed, 'p')
	if idx < 0 {
		return 0, fmt.Errorf("player header %q: missing player marker", trimmed)
	}
	digits := trimmed[idx+1:]
	end := 0
	for end < len(digits) && digits[end] >= '0' && digits[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(digits[:end])
	if err != nil {
		return 0, fmt.Errorf("player header %q: %w", trimmed, err)
	}
	switch n {
	case 1:
		return gamestate.Player1, nil
	case 2:
		return gamestate.Player2, nil
	}
	return 0, fmt.Errorf("player header %q: player %d out of range", trimmed, n)
}

// parseDimensions extracts W and H from a section header like
// "Anfield 20 15:" or "Piece 4 1:".
func parseDimensions(line, section string) (width, height int, err error) {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) < 3 || parts[0] != section {
		return 0, 0, fmt.Errorf("%s header %q: malformed", section, strings.TrimSpace(line))
	}
	width, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%s width: %w", section, err)
	}
	height, err = strconv.Atoi(strings.TrimSuffix(parts[2], ":"))
	if err != nil {
		return 0, 0, fmt.Errorf("%s height: %w", section, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%s dimensions %dx%d out of range", section, width, height)
	}
	return width, height, nil
}

func (r *Reader) readAnfield() (*gamestate.Grid, error) {
	header, err := r.line()
	if err != nil {
		return nil, fmt.Errorf("anfield header: %w", err)
	}
	width, height, err := parseDimensions(header, "Anfield")
	if err != nil {
		return nil, err
	}

	// The column-index ruler line carries no information.
	if _, err := r.line(); err != nil {
		return nil, fmt.Errorf("anfield ruler: %w", err)
	}

	raw := make([][]rune, height)
	for y := 0; y < height; y++ {
		line, err := r.line()
		if err != nil {
			return nil, fmt.Errorf("anfield row %d: %w", y, err)
		}
		row, err := parseGridRow(line, width)
		if err != nil {
			return nil, fmt.Errorf("anfield row %d: %w", y, err)
		}
		raw[y] = row
	}
	return gamestate.GridFromRunes(width, height, raw), nil
}

// parseGridRow strips the leading row number from "002 ..@........" and
// returns exactly width cells.
func parseGridRow(line string, width int) ([]rune, error) {
	trimmed := strings.TrimSpace(line)
	sep := strings.IndexByte(trimmed, ' ')
	if sep < 0 {
		return nil, fmt.Errorf("row %q: missing row number prefix", trimmed)
	}
	content := []rune(trimmed[sep+1:])
	if len(content) < width {
		return nil, fmt.Errorf("row has %d cells, expected %d", len(content), width)
	}
	return content[:width], nil
}

func (r *Reader) readPiece() (*gamestate.Shape, error) {
	header, err := r.line()
	if err != nil {
		return nil, fmt.Errorf("piece header: %w", err)
	}
	width, height, err := parseDimensions(header, "Piece")
	if err != nil {
		return nil, err
	}

	raw := make([][]rune, height)
	for y := 0; y < height; y++ {
		line, err := r.line()
		if err != nil {
			return nil, fmt.Errorf("piece row %d: %w", y, err)
		}
		row := []rune(strings.TrimSpace(line))
		if len(row) < width {
			return nil, fmt.Errorf("piece row %d has %d cells, expected %d", y, len(row), width)
		}
		raw[y] = row[:width]
	}
	return gamestate.ShapeFromRunes(width, height, raw), nil
}
