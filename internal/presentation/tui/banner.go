package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Kamon.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Blue-to-teal gradient, matching the division-marker palette.
	s1 := termenv.String(" _                                  ").Foreground(p.Color("#2d6cdf"))
	s2 := termenv.String("| | ____ _ _ __ ___   ___  _ __      ").Foreground(p.Color("#3b7de0"))
	s3 := termenv.String("| |/ / _` | '_ ` _ \\ / _ \\| '_ \\   ").Foreground(p.Color("#4a8fe2"))
	s4 := termenv.String("|   < (_| | | | | | | (_) | | | |    ").Foreground(p.Color("#58a0e3"))
	s5 := termenv.String("|_|\\_\\__,_|_| |_| |_|\\___/|_| |_| ").Foreground(p.Color("#66b2e4"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
