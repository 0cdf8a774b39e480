package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HuhTheme styles huh forms, such as the interactive calculator prompt.
func HuhTheme(t *Theme) *huh.Theme {
	h := huh.ThemeBase()

	accent := t.SelectedStyle.GetForeground()
	muted := t.SubtleStyle.GetForeground()
	failed := t.ErrorTextStyle.GetForeground()

	f := &h.Focused
	f.Base = f.Base.BorderForeground(accent)
	f.Card = f.Base
	f.Title = f.Title.Foreground(accent).Bold(true)
	f.Description = f.Description.Foreground(t.SelectedSubtleStyle.GetForeground())
	f.ErrorIndicator = f.ErrorIndicator.Foreground(failed)
	f.ErrorMessage = f.ErrorMessage.Foreground(failed)
	f.SelectSelector = f.SelectSelector.Foreground(accent)
	f.NextIndicator = f.NextIndicator.Foreground(accent)
	f.PrevIndicator = f.PrevIndicator.Foreground(accent)
	f.SelectedOption = f.SelectedOption.Foreground(accent)
	f.UnselectedOption = f.UnselectedOption.Foreground(t.GenericTextStyle.GetForeground())
	f.FocusedButton = f.FocusedButton.
		Foreground(t.LogoStyle.GetForeground()).
		Background(t.LogoStyle.GetBackground())
	f.Next = f.FocusedButton
	f.BlurredButton = f.BlurredButton.
		Foreground(t.LogoStyle.GetForeground()).
		Background(muted)
	f.TextInput.Cursor = f.TextInput.Cursor.Foreground(accent)
	f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(muted)
	f.TextInput.Prompt = f.TextInput.Prompt.Foreground(accent)

	h.Blurred = h.Focused
	h.Blurred.Base = h.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	h.Blurred.Card = h.Blurred.Base
	h.Blurred.NextIndicator = lipgloss.NewStyle()
	h.Blurred.PrevIndicator = lipgloss.NewStyle()

	h.Group.Title = h.Focused.Title
	h.Group.Description = h.Focused.Description

	return h
}
