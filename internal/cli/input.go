package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input
// from reader. The trailing newline is trimmed. If EOF occurs after
// some input was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetOptionalText behaves like GetSimpleText but shows the current
// value; an empty answer means "keep it" and returns "".
func GetOptionalText(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	return GetSimpleText(reader, fmt.Sprintf("%s [%s, Enter keeps it]", prompt, current), w)
}

// GetPassword prints prompt to w and reads a password from the user's
// terminal without echo. A newline is printed after the read to keep
// the UI tidy.
func GetPassword(prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetConfirm asks a yes/no question and returns true only for an
// explicit "y" or "yes" (case-insensitive).
func GetConfirm(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	answer, err := GetSimpleText(reader, prompt+" (y/n)", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// GetChoice prints a numbered option list and reads one selection.
// It returns the zero-based index, or -1 when the answer is empty,
// not a number, or out of range; the caller decides whether an unmade
// choice is an error (usually the validation schema reports it).
func GetChoice(reader *bufio.Reader, prompt string, options []string, w io.Writer) (int, error) {
	fmt.Fprintln(w, prompt)
	for i, opt := range options {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, opt)
	}
	answer, err := GetSimpleText(reader, "Enter a number", w)
	if err != nil {
		return -1, err
	}

	n, convErr := strconv.Atoi(answer)
	if convErr != nil || n < 1 || n > len(options) {
		return -1, nil
	}
	return n - 1, nil
}

// GetMultiChoice prints a numbered option list and reads a
// comma-separated selection ("1,3,5"). Unparseable or out-of-range
// entries are skipped; duplicates collapse. The returned indexes keep
// the order of first mention.
func GetMultiChoice(reader *bufio.Reader, prompt string, options []string, w io.Writer) ([]int, error) {
	fmt.Fprintln(w, prompt)
	for i, opt := range options {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, opt)
	}
	answer, err := GetSimpleText(reader, "Enter numbers separated by commas", w)
	if err != nil {
		return nil, err
	}
	if answer == "" {
		return nil, nil
	}

	seen := make(map[int]struct{})
	var picked []int
	for _, part := range strings.Split(answer, ",") {
		n, convErr := strconv.Atoi(strings.TrimSpace(part))
		if convErr != nil || n < 1 || n > len(options) {
			continue
		}
		idx := n - 1
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		picked = append(picked, idx)
	}
	return picked, nil
}
