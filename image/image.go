// Package image reads and writes memory images as text listings. The
// format is one word per line, "aa: dddd" with hexadecimal address and
// data, ';' starting a comment; the address prefix is optional, in which
// case words load consecutively. It is the same layout the machine's
// diagnostic memory dump produces, so a dump can be loaded back.
package image

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/ttopal/Improved-Simple-Computer-Taub/computer"
)

// Load parses a text listing into a memory image.
func Load(input io.Reader) (image []uint16, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	var line string

	defer func() {
		if err != nil {
			err = &ErrListing{LineNo: lineno, Line: line, Err: err}
		}
	}()

	next := 0
	for scanner.Scan() {
		lineno++
		line = strings.TrimSpace(strings.Split(scanner.Text(), ";")[0])
		if len(line) == 0 {
			continue
		}

		addr := next
		data := line
		if before, after, found := strings.Cut(line, ":"); found {
			var addr64 uint64
			addr64, err = strconv.ParseUint(strings.TrimSpace(before), 16, 16)
			if err != nil {
				err = ErrAddressSyntax
				return
			}
			addr = int(addr64)
			data = after
		}

		for _, word := range strings.Fields(data) {
			var word64 uint64
			word64, err = strconv.ParseUint(word, 16, 16)
			if err != nil {
				err = ErrWordSyntax
				return
			}

			if addr >= computer.MEMORY_WORDS {
				err = ErrImageSize
				return
			}

			for addr >= len(image) {
				image = append(image, 0)
			}
			image[addr] = uint16(word64)
			addr++
		}
		next = addr
	}

	return
}

// LoadFS loads a listing file from a file system.
func LoadFS(filesys fs.FS, name string) (image []uint16, err error) {
	file, err := filesys.Open(name)
	if err != nil {
		return
	}
	defer file.Close()

	return Load(file)
}

// Save writes a memory image as a text listing.
func Save(output io.Writer, image []uint16) (err error) {
	for addr, word := range image {
		_, err = fmt.Fprintf(output, "%02x: %04x\n", addr, word)
		if err != nil {
			return
		}
	}

	return
}
