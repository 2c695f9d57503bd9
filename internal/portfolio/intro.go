package portfolio

// Intro is the typed greeting shown before the projects section appears.
type Intro struct {
	text     []rune
	revealed int
}

func NewIntro(text string, instant bool) *Intro {
	in := &Intro{text: []rune(text)}
	if instant {
		in.Skip()
	}
	return in
}

// Step reveals n more characters and reports whether the intro finished.
func (in *Intro) Step(n int) bool {
	in.revealed = min(len(in.text), in.revealed+n)
	return in.Done()
}

func (in *Intro) Skip() { in.revealed = len(in.text) }

func (in *Intro) Done() bool { return in.revealed >= len(in.text) }

// Visible is the revealed prefix.
func (in *Intro) Visible() string { return string(in.text[:in.revealed]) }
