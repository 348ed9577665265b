package view

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Scanner reads the mixed line/token input format: some fields are whole
// lines, others are whitespace-delimited tokens that may span lines.
type Scanner struct {
	r *bufio.Reader
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Token skips leading whitespace, newlines included, and returns the next
// run of non-space bytes. The byte that ends the token is left unread.
// It returns io.EOF when only whitespace remains.
func (s *Scanner) Token() (string, error) {
	var b strings.Builder

	for {
		c, err := s.r.ReadByte()
		if errors.Is(err, io.EOF) {
			if b.Len() == 0 {
				return "", io.EOF
			}
			return b.String(), nil
		}
		if err != nil {
			return "", err
		}

		if isSpace(c) {
			if b.Len() == 0 {
				continue
			}
			if err := s.r.UnreadByte(); err != nil {
				return "", err
			}
			return b.String(), nil
		}

		b.WriteByte(c)
	}
}

// Line returns the rest of the current line without its "\n" or "\r\n"
// terminator. A final line with no terminator is returned as is; io.EOF
// is returned only when nothing is left.
func (s *Scanner) Line() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", io.EOF
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// SkipLine discards input up to and including the next "\n".
func (s *Scanner) SkipLine() error {
	_, err := s.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
