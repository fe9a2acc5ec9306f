package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// minFilterValue and maxFilterValue bound the slider positions. The
	// bounds live in the control; stored values are whatever the messages
	// carried.
	minFilterValue = 0
	maxFilterValue = 11

	// defaultFilterValue is the midpoint every filter starts at.
	defaultFilterValue = 5

	sliderGaugeWidth = 24
	sliderLabelWidth = 7
)

// slider is one horizontal filter control. It owns the interaction rules
// (step, clamp to bounds, emit on change) but not the value itself; the
// model stores the value and passes it in for rendering and adjustment.
type slider struct {
	label string
	max   int
	gauge progress.Model
	emit  func(int) tea.Msg
}

// newSlider builds a filter control that reports slides through emit.
func newSlider(label string, th Theme, emit func(int) tea.Msg) slider {
	return slider{
		label: label,
		max:   maxFilterValue,
		gauge: newSliderGauge(th),
		emit:  emit,
	}
}

func newSliderGauge(th Theme) progress.Model {
	return progress.New(
		progress.WithGradient(th.Accent, th.Info),
		progress.WithoutPercentage(),
		progress.WithWidth(sliderGaugeWidth),
	)
}

// retheme swaps the gauge gradient for a new theme.
func (s slider) retheme(th Theme) slider {
	s.gauge = newSliderGauge(th)
	return s
}

// slide clamps the proposed value and returns a command carrying the slide
// message, or nil when the clamped value matches the current one.
func (s slider) slide(current, proposed int) tea.Cmd {
	next := clampInt(proposed, minFilterValue, s.max)
	if next == current {
		return nil
	}
	msg := s.emit(next)
	return func() tea.Msg { return msg }
}

// view renders the label, gauge, and numeric value on one line.
func (s slider) view(value int, st Styles, focused bool) string {
	label := st.MutedText.Render(padRight(s.label, sliderLabelWidth))
	if focused {
		label = st.AccentText.Render(padRight(s.label, sliderLabelWidth))
	}
	pct := float64(value) / float64(s.max)
	return fmt.Sprintf("%s %s %s", label, s.gauge.ViewAs(pct), st.Text.Render(fmt.Sprintf("%2d", value)))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
