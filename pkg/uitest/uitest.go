package uitest

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTimeout bounds every wait in this package.
const DefaultTimeout = 3 * time.Second

// BubbleModel is a model whose Update returns its concrete type.
type BubbleModel[T any] interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (T, tea.Cmd)
	View() string
}

type adapter[T BubbleModel[T]] struct {
	model T
}

func (a adapter[T]) Init() tea.Cmd {
	return a.model.Init()
}

//nolint:ireturn // Must satisfy [tea.Model].
func (a adapter[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.model.Update(msg)

	return adapter[T]{model: m}, cmd
}

func (a adapter[T]) View() string {
	return a.model.View()
}

// NewProgram runs m at the given size.
func NewProgram(tb testing.TB, m tea.Model, size Size) *teatest.TestModel {
	tb.Helper()

	return teatest.NewTestModel(tb, m, teatest.WithInitialTermSize(size.Width, size.Height))
}

// NewTestModel runs a [BubbleModel] at the given size.
func NewTestModel[T BubbleModel[T]](tb testing.TB, m T, size Size) *teatest.TestModel {
	tb.Helper()

	return NewProgram(tb, adapter[T]{model: m}, size)
}

// WaitForText waits until the output, stripped of escape codes, contains
// all of texts.
func WaitForText(tb testing.TB, r io.Reader, texts ...string) {
	tb.Helper()

	teatest.WaitFor(tb, r, func(b []byte) bool {
		plain := []byte(ansi.Strip(string(b)))
		for _, s := range texts {
			if !bytes.Contains(plain, []byte(s)) {
				return false
			}
		}

		return true
	}, teatest.WithDuration(DefaultTimeout), teatest.WithCheckInterval(10*time.Millisecond))
}

// FinalOutput waits for the program to exit and returns everything it
// wrote, stripped of escape codes.
func FinalOutput(tb testing.TB, tm *teatest.TestModel) string {
	tb.Helper()

	b, err := io.ReadAll(tm.FinalOutput(tb, teatest.WithFinalTimeout(DefaultTimeout)))
	if err != nil {
		tb.Fatal(err)
	}

	return ansi.Strip(string(b))
}
