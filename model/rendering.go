package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer draws snapshots as blocks on a writer, stdout by default
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the grid
func (r *TerminalRenderer) Display(g *Grid) {
	var sb strings.Builder
	for y := range g.height {
		for x := range g.width {
			if g.Get(x, y) {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(r.out(), sb.String())
}

// DisplayPatterns prints a classification result in library order, Unknown last
func (r *TerminalRenderer) DisplayPatterns(counts map[string]int, names []string) {
	w := r.out()
	for _, name := range names {
		fmt.Fprintf(w, "  %-10s %d\n", name, counts[name])
	}
	fmt.Fprintf(w, "  %-10s %d\n", UnknownPattern, counts[UnknownPattern])
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	var cmd *exec.Cmd
	cmd = exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
