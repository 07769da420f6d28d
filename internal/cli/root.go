package cli

import (
	"bufio"
	"context"
	"log"
	"os"
)

// Root runs the command loop on stdin until "exit" or EOF.
func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to the enrollment shell (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
