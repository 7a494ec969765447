// SPDX-License-Identifier: MIT

// Package table renders a propagated divisor table as fixed-width text:
// one header line, then one line per index n with n, c(n), a strip of
// DSP_MAX witness marks and a "..." marker for rows that overflow the strip.
//
//	      n:   d(n):divisors2(n, 6)
//	      0:      6:******...
//	      6:      4:***  *
package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/chotto2/amida/divisors"
)

// DefaultDisplayWidth is the number of witness marks printed per row.
const DefaultDisplayWidth = 128

const (
	markSet   = '*'
	markUnset = ' '
	overflow  = "..."
)

// ErrBadDisplayWidth is returned for a negative display width.
var ErrBadDisplayWidth = errors.New("table: display width must be non-negative")

// Write prints the header and every row of p to w. Column d (1-based) of a
// row is '*' when d divides n according to p; columns past p.M() are blank.
func Write(w io.Writer, p *divisors.Propagator, dspMax int) error {
	if dspMax < 0 {
		return fmt.Errorf("%w: %d", ErrBadDisplayWidth, dspMax)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "      n:   d(n):divisors2(n, %d)\n", p.M()); err != nil {
		return err
	}

	strip := make([]byte, dspMax)
	for n := 0; n <= p.N(); n++ {
		c, err := p.Count(n)
		if err != nil {
			return err
		}
		if err = fillStrip(strip, p, n); err != nil {
			return err
		}

		tail := ""
		if c >= dspMax {
			tail = overflow
		}
		if _, err = fmt.Fprintf(bw, "%7d:%7d:%s%s\n", n, c, strip, tail); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func fillStrip(strip []byte, p *divisors.Propagator, n int) error {
	for i := range strip {
		strip[i] = markUnset
		d := i + 1
		if d > p.M() {
			continue
		}
		has, err := p.Has(n, d)
		if err != nil {
			return err
		}
		if has {
			strip[i] = markSet
		}
	}

	return nil
}
