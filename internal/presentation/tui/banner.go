package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for Morph.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Subtle gradient-like color scheme (Indigo/Violet)
	s1 := termenv.String(" __  __   ___   ____   ____   _   _ ").Foreground(p.Color("#818cf8"))
	s2 := termenv.String("|  \\/  | / _ \\ |  _ \\ |  _ \\ | | | |").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String("| |\\/| || | | || |_) || |_) || |_| |").Foreground(p.Color("#c084fc"))
	s4 := termenv.String("| |  | || |_| ||  _ < |  __/ |  _  |").Foreground(p.Color("#e879f9"))
	s5 := termenv.String("|_|  |_| \\___/ |_| \\_\\|_|    |_| |_|").Foreground(p.Color("#f472b6"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
