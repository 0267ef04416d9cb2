package ctl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadImage reads a microcode image in hex-listing form: one 36-bit word
// per line as hex digits, with blank lines and "//" comments ignored.
// Count and width are validated by Store.Load, not here.
func ReadImage(input io.Reader) (image []uint64, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		line, _, _ := strings.Cut(text, "//")
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		word, _err := strconv.ParseUint(line, 16, 64)
		if _err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: ErrParseNumber(line)}
			return
		}
		image = append(image, word)
	}
	err = scanner.Err()

	return
}

// WriteImage writes an image in the hex-listing form read by ReadImage,
// nine hex digits per word.
func WriteImage(output io.Writer, image []uint64) (err error) {
	for _, word := range image {
		_, err = fmt.Fprintf(output, "%09x\n", word)
		if err != nil {
			return
		}
	}
	return
}
