// Command asmgen turns a hand-assembled listing into a flat binary image.
// Each input line has the form:
//
//	XXXX OP [A1 [A2]]
//
// where XXXX is a four hex digit address (informational; lines must already
// be in order) and the remaining tokens are at most three hex bytes.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	cli "gopkg.in/urfave/cli.v2"
)

var lineRE = regexp.MustCompile(`^[0-9A-Fa-f]{4}\s+(.*)$`)

func main() {
	app := &cli.App{
		Name:      "asmgen",
		Usage:     "assemble a hand-written hex listing into a flat binary",
		ArgsUsage: "<input> <output>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "offset",
				Value: 0,
				Usage: "address to start writing assembled data at; everything prior is zero filled",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return fmt.Errorf("usage: asmgen [--offset N] <input> <output>")
			}
			return assemble(c.Args().Get(0), c.Args().Get(1), c.Int("offset"))
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func assemble(inPath, outPath string, offset int) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", inPath, err)
	}
	defer in.Close()

	output := make([]byte, offset)
	scanner := bufio.NewScanner(in)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		m := lineRE.FindStringSubmatch(line)
		if m == nil {
			continue // blank lines, comments, and anything not starting with an address
		}
		rest := m[1]
		if idx := strings.Index(rest, "(*)"); idx >= 0 {
			rest = rest[:idx]
		}
		if idx := strings.Index(rest, "\t"); idx >= 0 {
			rest = rest[:idx]
		}
		toks := strings.Fields(rest)
		if len(toks) > 3 {
			return fmt.Errorf("line %d: too many byte tokens: %q", lineNum, line)
		}
		for _, tok := range toks {
			b, err := strconv.ParseUint(tok, 16, 8)
			if err != nil {
				return fmt.Errorf("line %d: %q is not a hex byte: %w", lineNum, tok, err)
			}
			output = append(output, byte(b))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", inPath, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()
	if _, err := out.Write(output); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
