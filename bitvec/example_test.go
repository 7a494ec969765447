// SPDX-License-Identifier: MIT

package bitvec_test

import (
	"fmt"

	"github.com/chotto2/amida/bitvec"
)

// ExampleNew builds a 130-bit vector, wider than any machine word, and
// sets bits on both ends.
func ExampleNew() {
	v, err := bitvec.New(bitvec.KindBig, 130)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	v.Set(0)
	v.Set(129)

	fmt.Println(v.Test(0), v.Test(64), v.Test(129), v.Count())
	// Output: true false true 2
}
