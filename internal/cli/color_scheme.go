package cli

import (
	"image/color"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/exp/charmtone"

	"github.com/macropower/aspect/pkg/config"
	"github.com/macropower/aspect/pkg/ui/theme"
)

// ColorSchemeFunc styles help and errors with the configured UI theme. The
// flags are not parsed yet, so only $ASPECT_CONFIG is honored.
func ColorSchemeFunc(c lipgloss.LightDarkFunc) fang.ColorScheme {
	path, ok := os.LookupEnv(flagToEnvName("config"))
	if !ok || path == "" {
		path = config.GetPath()
	}

	cl, err := config.NewLoaderFromFile(path, config.WithThemeFromData())
	if err != nil {
		return ThemeColorScheme(theme.Default, c)
	}

	return ThemeColorScheme(cl.Theme(), c)
}

func ThemeColorScheme(t *theme.Theme, c lipgloss.LightDarkFunc) fang.ColorScheme {
	accent := t.SelectedStyle.GetForeground()
	text := t.GenericTextStyle.GetForeground()
	subtle := t.SubtleStyle.GetForeground()

	return fang.ColorScheme{
		Base:           text,
		Title:          t.LogoStyle.GetBackground(),
		Codeblock:      c(charmtone.Salt, lipgloss.Color("#2F2E36")),
		Program:        accent,
		Command:        accent,
		DimmedArgument: subtle,
		Comment:        subtle,
		Flag:           accent,
		Argument:       text,
		Description:    text,
		FlagDefault:    t.SelectedSubtleStyle.GetForeground(),
		QuotedString:   text,
		ErrorHeader: [2]color.Color{
			t.ErrorTitleStyle.GetForeground(),
			t.ErrorTitleStyle.GetBackground(),
		},
	}
}
