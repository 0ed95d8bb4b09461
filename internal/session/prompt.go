package session

import (
	"bufio"
	"fmt"
	"io"
)

// prompt writes a label and reads one line back, retrying on validator
// failure up to maxTries. A validator returning a message has it written
// before the retry.
func prompt(rw io.ReadWriter, br *bufio.Reader, label string, maxTries int, validate func(string) (bool, string)) (string, error) {
	tries := 0
	for {
		if _, err := rw.Write([]byte(label)); err != nil {
			return "", err
		}

		line, err := br.ReadString('\n')
		if err != nil {
			return "", err
		}
		input := trimLine(line)

		if validate != nil {
			ok, msg := validate(input)
			if !ok {
				if msg != "" {
					rw.Write([]byte(msg))
				}
				tries++
				if maxTries > 0 && tries >= maxTries {
					return "", fmt.Errorf("too many tries")
				}
				continue
			}
		}

		return input, nil
	}
}

// trimLine strips the trailing newline and any telnet CR.
func trimLine(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
