// Package console is the menu-driven terminal frontend. All prompting,
// raw input parsing and tabular output lives here; the services behind
// it never touch the terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"cinema-chain/internal/wire"
	"cinema-chain/pkg/utils"
)

type Console struct {
	app *wire.App
	in  *bufio.Reader
	out io.Writer
	log *zap.Logger
}

func New(app *wire.App, in io.Reader, out io.Writer, log *zap.Logger) *Console {
	return &Console{
		app: app,
		in:  bufio.NewReader(in),
		out: out,
		log: log.With(zap.String("service", "console")),
	}
}

// Run drives the main menu until the user quits, then returns so the
// caller can flush the snapshot.
func (c *Console) Run() {
	for {
		c.printf("\n===== Cinema Chain =====\n")
		c.printf("1. Customer login\n")
		c.printf("2. Customer registration\n")
		c.printf("3. Admin login\n")
		c.printf("0. Exit\n")

		switch c.promptInt("Choice: ") {
		case 1:
			c.customerLogin()
		case 2:
			c.customerRegister()
		case 3:
			c.adminLogin()
		case 0:
			return
		default:
			c.printf("Invalid choice\n")
		}
	}
}

// ---- prompt helpers ----

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) prompt(label string) string {
	c.printf("%s", label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (c *Console) promptInt(label string) int {
	return utils.ParseInt(c.prompt(label), -1)
}

func (c *Console) promptFloat(label string) float64 {
	return utils.ParseFloat(c.prompt(label), 0)
}

func (c *Console) fmtRating(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func (c *Console) promptList(label string) []string {
	raw := c.prompt(label)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
