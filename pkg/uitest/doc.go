// Package uitest holds helpers for testing the Bubble Tea models in
// [github.com/macropower/aspect/pkg/ui].
//
// [NewProgram] runs a [tea.Model] under teatest at a fixed terminal size.
// [NewTestModel] does the same for sub-models whose Update returns their
// concrete type:
//
//	tm := uitest.NewProgram(t, ui.NewModel(nil), uitest.Standard)
//	tm.Type("1920")
//	uitest.WaitForText(t, tm.Output(), "1 screen")
//
// [StyleAt] reports the SGR attributes in effect for a piece of rendered
// text, for checking theme styles without comparing escape codes:
//
//	uitest.SetupColorProfile()
//	s, ok := uitest.StyleAt(view, "Presets")
package uitest
