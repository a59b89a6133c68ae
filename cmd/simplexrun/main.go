// Command simplexrun parses a circuit file, executes it, and prints the
// Z-basis measurement of every qubit at the end of the run.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/CQCL/simplex/runner"
	"github.com/CQCL/simplex/stimparse"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-seed N] FILE\n", os.Args[0])
		flag.PrintDefaults()
	}
	seed := flag.Int64("seed", 0, "PRNG seed for non-deterministic measurements")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	n, ops, err := stimparse.Parse(flag.Arg(0))
	if err != nil {
		log.Fatalf("simplexrun: %v", err)
	}

	s, _ := runner.RunState(n, ops, *seed)

	for j := 0; j < n; j++ {
		fmt.Print(s.MeasZ(j, nil))
	}
	fmt.Println()
}
