package cli

import (
	"errors"
	"slices"
	"strings"

	"github.com/dmitrijs2005/useradmin/internal/client/views"
)

// choose drives a Picker from the prompt. A line starting with "/" searches,
// anything else selects by code or uuid; on a multi picker selecting a chosen
// option again removes it. An empty line finishes.
func (a *App) choose(p *views.Picker, label string) error {
	a.renderOptions(p.Options())
	hint := "code to select, /text to search, empty to finish"
	if !p.Multi() {
		hint = "code to select, /text to search, empty to keep"
	}

	for {
		line, err := getSimpleText(a.reader, label+" ("+hint+")", a.out)
		if err != nil {
			return err
		}
		switch {
		case line == "":
			return nil
		case strings.HasPrefix(line, "/"):
			a.renderOptions(p.Filter(line[1:]))
			continue
		}

		if o, ok := p.Lookup(line); ok && p.Multi() && slices.Contains(p.UUIDs(), o.UUID) {
			p.Deselect(line)
		} else if err := p.Select(line); err != nil {
			if errors.Is(err, views.ErrUnknownOption) {
				a.println("No such option:", line)
				continue
			}
			return err
		}

		a.printf("Selected: %s\n", refNames(p.Selected()))
		if !p.Multi() {
			return nil
		}
	}
}
