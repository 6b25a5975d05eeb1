// Command flattice builds F-lattices and queries their neighborhoods and
// Hamming balls from the command line.
//
//	flattice ball --radius 2 --k 3
//	flattice neighborhood --open 0,0 1,0
//	flattice distances --radius 1
//	flattice search --radius 1 --json
//	flattice export --format dot --ball 2 --output lattice.dot
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "flattice:", err)
		stop()
		os.Exit(1)
	}
}
