package cli

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// Prompter owns all raw terminal interaction: screen clearing, validated
// choice prompts, free-text prompts and the press-enter pause. Menus never
// touch stdin directly.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Prompter) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

// ClearScreen clears the terminal. Falls back to an ANSI reset when no
// clear command is available.
func (p *Prompter) ClearScreen() {
	name := "clear"
	if runtime.GOOS == "windows" {
		name = "cls"
	}
	cmd := exec.Command(name)
	cmd.Stdout = p.out
	if err := cmd.Run(); err != nil {
		fmt.Fprint(p.out, "\033[H\033[2J")
	}
}

// Text prompts for one trimmed line of input.
func (p *Prompter) Text(message string) string {
	fmt.Fprint(p.out, message)
	line, _ := p.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// Choice re-prompts until the operator enters one of the accepted values.
func (p *Prompter) Choice(message string, options []string) string {
	for {
		answer := p.Text(message)
		for _, option := range options {
			if answer == option {
				return answer
			}
		}
		fmt.Fprintf(p.out, "Invalid option. Choose between: %s.\n", strings.Join(options, ", "))
	}
}

// PickIndex shows a numbered prompt for items 1..n with 0 meaning "back".
// It returns the zero-based index, or back=true when the operator bails.
func (p *Prompter) PickIndex(message string, n int) (index int, back bool) {
	for {
		answer := p.Text(message)
		choice, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input. Enter numbers only.")
			continue
		}
		if choice == 0 {
			return 0, true
		}
		if choice >= 1 && choice <= n {
			return choice - 1, false
		}
		fmt.Fprintf(p.out, "Invalid choice. Enter a number between 0 and %d.\n", n)
	}
}

// Pause blocks until the operator presses enter.
func (p *Prompter) Pause() {
	fmt.Fprint(p.out, "\nPress ENTER to continue...")
	p.in.ReadString('\n')
}

// Confirm asks a yes/no question as a 1/2 choice.
func (p *Prompter) Confirm(message string) bool {
	return p.Choice(message+"\n1 - Yes\n2 - No\nChoose: ", []string{"1", "2"}) == "1"
}
