package input

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the operator presses Ctrl+C while a key is awaited
var ErrInterrupted = errors.New("interrupted")

var stdinReader *bufio.Reader

// GetInput reads a line of input from stdin
func GetInput() (string, error) {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}
	return ReadLine(stdinReader)
}

// ReadLine reads a line from r without the trailing newline. A final line without newline is
// returned together with io.EOF only if it is empty.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// ReadKey reads a single key press without waiting for Enter. If stdin is not a terminal a whole
// line is read and its first byte returned.
func ReadKey() (byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := GetInput()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return '\n', nil
		}
		return line[0], nil
	}

	// Reset the buffered reader to avoid conflicts with raw mode
	stdinReader = nil

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return 0, err
	}
	defer term.Restore(fd, oldState)

	b, err := readByte()
	if err != nil {
		return 0, err
	}
	// Ctrl+C
	if b == 3 {
		return 0, ErrInterrupted
	}
	return b, nil
}
