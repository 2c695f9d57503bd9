package shell_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/moire/internal/shell"
)

var _ = Describe("Shell", func() {
	var s *shell.Shell

	BeforeEach(func() {
		s = shell.New()
	})

	It("starts in normal mode with controls visible", func() {
		Expect(s.Mode()).To(Equal(shell.Normal))
		Expect(s.ControlsVisible()).To(BeTrue())
		Expect(s.CanvasVisible()).To(BeTrue())
	})

	Describe("Toggle", func() {
		It("enters fullscreen and hides the controls", func() {
			Expect(s.Toggle()).To(Equal(shell.Fullscreen))
			Expect(s.ControlsVisible()).To(BeFalse())
			Expect(s.CanvasVisible()).To(BeTrue())
		})

		It("returns to normal on a second toggle", func() {
			s.Toggle()
			Expect(s.Toggle()).To(Equal(shell.Normal))
			Expect(s.ControlsVisible()).To(BeTrue())
		})
	})

	Describe("Escape", func() {
		It("exits fullscreen", func() {
			before := s.ControlsVisible()
			s.Toggle()

			Expect(s.Escape()).To(BeTrue())
			Expect(s.ControlsVisible()).To(Equal(before))
			Expect(s.CanvasVisible()).To(BeTrue())
		})

		It("is not consumed in normal mode", func() {
			Expect(s.Escape()).To(BeFalse())
			Expect(s.Mode()).To(Equal(shell.Normal))
		})
	})

	Describe("Subscribe", func() {
		It("reports each transition once", func() {
			var seen []shell.Mode
			unsub := s.Subscribe(func(m shell.Mode) { seen = append(seen, m) })
			DeferCleanup(unsub)

			s.Toggle()
			s.Escape()
			s.Escape()

			Expect(seen).To(Equal([]shell.Mode{shell.Normal, shell.Fullscreen, shell.Normal}))
		})
	})
})
