// Package prompt collects run parameters interactively from the console.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnylez/authenticfinder/internal/config"
)

// Collect prompts for the four run inputs and returns the assembled
// parameters. The API key is not prompted for; it always comes from flags.
// A non-numeric distance fails the run immediately.
func Collect(r io.Reader, w io.Writer) (config.Params, error) {
	scanner := bufio.NewScanner(r)

	start, err := ask(scanner, w, "Enter the starting location: ")
	if err != nil {
		return config.Params{}, err
	}

	end, err := ask(scanner, w, "Enter the ending location: ")
	if err != nil {
		return config.Params{}, err
	}

	keyword, err := ask(scanner, w, "Enter the search keyword (e.g., 'antique stores', 'national parks'): ")
	if err != nil {
		return config.Params{}, err
	}

	distStr, err := ask(scanner, w, "Enter the maximum distance willing to go off the path (in miles): ")
	if err != nil {
		return config.Params{}, err
	}

	dist, err := strconv.ParseFloat(distStr, 64)
	if err != nil {
		return config.Params{}, fmt.Errorf("invalid distance %q: %w", distStr, err)
	}

	return config.Params{
		Start:         start,
		End:           end,
		Keyword:       keyword,
		DistanceMiles: dist,
	}, nil
}

func ask(scanner *bufio.Scanner, w io.Writer, question string) (string, error) {
	if _, err := fmt.Fprint(w, question); err != nil {
		return "", err
	}
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(scanner.Text()), nil
}
