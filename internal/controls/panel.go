package controls

import (
	"github.com/san-kum/moire/internal/params"
)

// Panel is the grid of control pairs plus the blend selector and animate
// toggle for one simulator view.
type Panel struct {
	store *params.Store
	pairs []*Pair
	index map[params.Field]*Pair
	unsub func()
}

// NewPanel builds one pair per params.Fields entry. Missing or invalid
// ranges fall back to DefaultRanges.
func NewPanel(store *params.Store, ranges map[params.Field]Range) *Panel {
	defaults := DefaultRanges()
	p := &Panel{store: store, index: make(map[params.Field]*Pair, len(params.Fields))}
	for _, f := range params.Fields {
		r, ok := ranges[f]
		if !ok || !r.Valid() {
			r = defaults[f]
		}
		pair := newPair(store, f, r)
		p.pairs = append(p.pairs, pair)
		p.index[f] = pair
	}
	p.unsub = store.Subscribe(p.refresh)
	return p
}

func (p *Panel) refresh(v params.Parameters) {
	for _, pair := range p.pairs {
		pair.sync(v.Get(pair.field))
	}
}

// Close detaches the panel from its store.
func (p *Panel) Close() {
	if p.unsub != nil {
		p.unsub()
		p.unsub = nil
	}
}

func (p *Panel) Store() *params.Store { return p.store }

func (p *Panel) Pairs() []*Pair { return p.pairs }

func (p *Panel) Pair(f params.Field) *Pair { return p.index[f] }

// Lookup finds a pair by key or control ID.
func (p *Panel) Lookup(id string) (*Pair, error) {
	f, err := params.ParseField(id)
	if err != nil {
		return nil, err
	}
	return p.index[f], nil
}

// RangeCount is the number of range controls in the grid.
func (p *Panel) RangeCount() int {
	n := 0
	for _, pair := range p.pairs {
		if pair.bounds.Valid() {
			n++
		}
	}
	return n
}

// NumberCount is the number of number controls in the grid.
func (p *Panel) NumberCount() int {
	n := 0
	for _, pair := range p.pairs {
		if pair.field.Valid() {
			n++
		}
	}
	return n
}

// Labels returns every live readout in grid order.
func (p *Panel) Labels() []string {
	out := make([]string, len(p.pairs))
	for i, pair := range p.pairs {
		out[i] = pair.Label()
	}
	return out
}

// SelectBlendMode handles a change of the blend selector's option value.
func (p *Panel) SelectBlendMode(value string) error {
	m, err := params.ParseBlendMode(value)
	if err != nil {
		return err
	}
	return p.store.SetBlendMode(m)
}

func (p *Panel) SetAnimate(on bool) { p.store.SetAnimate(on) }

// Set applies "key=value" style input through the number path, as used by
// the CLI --set flag.
func (p *Panel) Set(id, text string) error {
	if id == "ctrl-blend-mode" || id == "blend-mode" {
		return p.SelectBlendMode(text)
	}
	if id == "ctrl-animate" || id == "animate" {
		switch text {
		case "1", "true", "on", "yes":
			p.SetAnimate(true)
		case "0", "false", "off", "no":
			p.SetAnimate(false)
		default:
			return &params.ValidationError{Input: text, Wrapped: params.ErrUnparsable}
		}
		return nil
	}
	pair, err := p.Lookup(id)
	if err != nil {
		return err
	}
	pair.EditNumber(text)
	return pair.CommitNumber()
}
