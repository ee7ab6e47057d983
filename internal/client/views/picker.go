package views

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/useradmin/internal/client/models"
)

var ErrUnknownOption = errors.New("unknown option")

// Picker is a searchable selector over LOV options. A single picker holds at
// most one selection; a multi picker keeps selections in the order made.
type Picker struct {
	options  []models.LovRef
	multi    bool
	selected []string
}

func NewSinglePicker(options []models.LovRef) *Picker {
	return &Picker{options: options}
}

func NewMultiPicker(options []models.LovRef) *Picker {
	return &Picker{options: options, multi: true}
}

func (p *Picker) Multi() bool { return p.multi }

func (p *Picker) Options() []models.LovRef { return p.options }

// Filter returns options whose code or name contains query, ignoring case.
// An empty query returns everything.
func (p *Picker) Filter(query string) []models.LovRef {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return p.options
	}

	var out []models.LovRef
	for _, o := range p.options {
		if strings.Contains(strings.ToLower(o.Code), q) || strings.Contains(strings.ToLower(o.Name), q) {
			out = append(out, o)
		}
	}
	return out
}

// Lookup finds an option by uuid, or by code when no uuid matches.
func (p *Picker) Lookup(key string) (models.LovRef, bool) {
	for _, o := range p.options {
		if o.UUID == key {
			return o, true
		}
	}
	for _, o := range p.options {
		if strings.EqualFold(o.Code, key) {
			return o, true
		}
	}
	return models.LovRef{}, false
}

// Select adds an option. On a single picker it replaces the current choice.
func (p *Picker) Select(key string) error {
	o, ok := p.Lookup(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOption, key)
	}
	if !p.multi {
		p.selected = []string{o.UUID}
		return nil
	}
	if !slices.Contains(p.selected, o.UUID) {
		p.selected = append(p.selected, o.UUID)
	}
	return nil
}

func (p *Picker) Deselect(key string) {
	o, ok := p.Lookup(key)
	if !ok {
		return
	}
	p.selected = slices.DeleteFunc(p.selected, func(id string) bool { return id == o.UUID })
}

func (p *Picker) Clear() { p.selected = nil }

// Preselect replaces the selection with refs, skipping any the options no
// longer contain.
func (p *Picker) Preselect(refs ...models.LovRef) {
	p.selected = nil
	for _, r := range refs {
		_ = p.Select(r.UUID)
		if !p.multi && len(p.selected) > 0 {
			return
		}
	}
}

// Selected returns the chosen options.
func (p *Picker) Selected() []models.LovRef {
	out := make([]models.LovRef, 0, len(p.selected))
	for _, id := range p.selected {
		if o, ok := p.Lookup(id); ok {
			out = append(out, o)
		}
	}
	return out
}

// UUIDs unwraps the selection to bare identifiers.
func (p *Picker) UUIDs() []string {
	return slices.Clone(p.selected)
}

// Value is the single selection's uuid, "" when nothing is chosen.
func (p *Picker) Value() string {
	if len(p.selected) == 0 {
		return ""
	}
	return p.selected[0]
}

// Ref is the single selection, nil when nothing is chosen.
func (p *Picker) Ref() *models.LovRef {
	sel := p.Selected()
	if len(sel) == 0 {
		return nil
	}
	return &sel[0]
}
