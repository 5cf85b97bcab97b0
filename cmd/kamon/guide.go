package main

import (
	"fmt"

	"github.com/pppp606/kamon/internal/presentation/tui"
	"github.com/spf13/cobra"
)

const guideMarkdown = `# Kamon quick reference

Place elements, divide them, and walk the history.

## Construction

| Command | Effect |
|---|---|
| ` + "`line x1 y1 x2 y2`" + ` | Commit a line segment |
| ` + "`arc cx cy rx ry`" + ` | Commit a compass arc (center, radius point) |
| ` + "`undo` / `redo`" + ` | Step the edit history |

## Division mode

| Command | Effect |
|---|---|
| ` + "`divide line 0 3`" + ` | Divide element #0 of that kind into 3 parts |
| ` + "`points`" + ` | List the live division points |
| ` + "`cycle`" + ` | Advance the division count (2→3→4→5→2) |
| ` + "`pick x y`" + ` | Snap the pointer to the nearest division point |
| ` + "`done`" + ` | Leave division mode |

## Output

| Command | Effect |
|---|---|
| ` + "`show`" + ` | Preview the drawing in the terminal |
| ` + "`export sheet.svg`" + ` | Export as SVG (or .pdf) |
| ` + "`status`" + ` | Print drawing and division state |
| ` + "`quit`" + ` | Exit |
`

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Print the interactive-mode quick reference",
	Run: func(cmd *cobra.Command, args []string) {
		render := tui.NewRenderer()
		out, err := render(guideMarkdown)
		if err != nil {
			fmt.Print(guideMarkdown + "\n")
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
