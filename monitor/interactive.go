// This file is part of Gopherflash.
//
// Gopherflash is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherflash is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherflash.  If not, see <https://www.gnu.org/licenses/>.

package monitor

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gopherflash/monitor/easyterm"
)

const prompt = "> "

// pager stops output every screenful and waits for a key press before
// continuing.
type pager struct {
	term  *easyterm.Terminal
	in    *os.File
	out   io.Writer
	lines int
}

const morePrompt = "-- more --"

func (pg *pager) Write(p []byte) (int, error) {
	rows := pg.term.Geometry().Rows
	if rows <= 1 {
		return pg.out.Write(p)
	}

	n := 0
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			m, err := pg.out.Write(p)
			return n + m, err
		}

		m, err := pg.out.Write(p[:i+1])
		n += m
		if err != nil {
			return n, err
		}
		p = p[i+1:]

		pg.lines++
		if pg.lines >= rows-1 {
			pg.more()
		}
	}
	return n, nil
}

// more waits for a single key press. the terminal is in cbreak mode only for
// the duration of the wait
func (pg *pager) more() {
	pg.lines = 0
	fmt.Fprint(pg.out, morePrompt)
	pg.term.CBreakMode()
	defer pg.term.CanonicalMode()
	b := make([]byte, 1)
	_, _ = pg.in.Read(b)
	fmt.Fprintf(pg.out, "\r%*s\r", len(morePrompt), "")
}

// Interactive reads commands from the input file until the QUIT command is
// executed or the input is exhausted. Errors are printed and do not end the
// session. If the input is a terminal then long output is paged.
func (mon *Monitor) Interactive(input *os.File, output *os.File) error {
	prev := mon.output
	defer func() {
		mon.output = prev
	}()
	mon.output = output

	var pg *pager
	if easyterm.IsTerminal(input) {
		term := &easyterm.Terminal{}
		if err := term.Initialise(input, output); err != nil {
			return err
		}
		defer term.CleanUp()
		pg = &pager{term: term, in: input, out: output}
		mon.output = pg
	}

	scanner := bufio.NewScanner(input)
	for !mon.quit {
		fmt.Fprint(output, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(output)
			break
		}
		if pg != nil {
			pg.lines = 0
		}
		if err := mon.Execute(scanner.Text()); err != nil {
			fmt.Fprintf(output, "* %v\n", err)
		}
	}

	return scanner.Err()
}
