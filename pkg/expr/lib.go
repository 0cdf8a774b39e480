package expr

import (
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/ext"

	"github.com/macropower/aspect/pkg/screen"
	"github.com/macropower/aspect/pkg/screenlist"
)

// VarScreen is the name of the variable holding the screen.
const VarScreen = "screen"

type lib struct{}

func (lib) CompileOptions() []cel.EnvOption {
	return []cel.EnvOption{
		ext.Math(),
		ext.Strings(),
		ext.Lists(),

		cel.Variable(VarScreen, cel.MapType(cel.StringType, cel.DynType)),

		// `toInches` converts centimeters to inches.
		// Example: toInches(screen.diagonalCm) > 27.0.
		cel.Function("toInches",
			cel.Overload("to_inches_double", []*cel.Type{cel.DoubleType}, cel.DoubleType,
				cel.UnaryBinding(func(v ref.Val) ref.Val {
					cm, ok := v.(types.Double)
					if !ok {
						return types.NewErr("toInches: invalid double value")
					}

					return types.Double(screen.ToInches(float64(cm)))
				}),
			),
		),

		// `toCentimeters` converts inches to centimeters.
		// Example: toCentimeters(screen.diagonal) < 70.0.
		cel.Function("toCentimeters",
			cel.Overload("to_centimeters_double", []*cel.Type{cel.DoubleType}, cel.DoubleType,
				cel.UnaryBinding(func(v ref.Val) ref.Val {
					in, ok := v.(types.Double)
					if !ok {
						return types.NewErr("toCentimeters: invalid double value")
					}

					return types.Double(screen.ToCentimeters(float64(in)))
				}),
			),
		),

		// `ratioName` names an aspect ratio.
		// Example: ratioName(21, 9) == "21:9".
		cel.Function("ratioName",
			cel.Overload("ratio_name_double", []*cel.Type{cel.DoubleType}, cel.StringType,
				cel.UnaryBinding(func(v ref.Val) ref.Val {
					ratio, ok := v.(types.Double)
					if !ok {
						return types.NewErr("ratioName: invalid double value")
					}

					return ratioName(float64(ratio))
				}),
			),
			cel.Overload("ratio_name_int_int", []*cel.Type{cel.IntType, cel.IntType}, cel.StringType,
				cel.BinaryBinding(func(w, h ref.Val) ref.Val {
					wInt, ok := w.(types.Int)
					if !ok {
						return types.NewErr("ratioName: invalid width value")
					}

					hInt, ok := h.(types.Int)
					if !ok {
						return types.NewErr("ratioName: invalid height value")
					}
					if hInt == 0 {
						return types.NewErr("ratioName: height must not be zero")
					}

					return ratioName(float64(wInt) / float64(hInt))
				}),
			),
		),
	}
}

func (lib) ProgramOptions() []cel.ProgramOption {
	return []cel.ProgramOption{}
}

func ratioName(ratio float64) ref.Val {
	name, err := screen.RatioName(ratio)
	if err != nil {
		return types.NewErr("ratioName: %v", err)
	}

	return types.String(name)
}

// ScreenVars returns the `screen` variable for an entry. It reports false
// if the entry is not a valid screen.
func ScreenVars(e screenlist.Entry) (map[string]any, bool) {
	info, ok := e.Info()
	if !ok {
		return nil, false
	}

	px := info.PixelCount()
	vars := map[string]any{
		"name":        e.Name,
		"width":       px.Width,
		"height":      px.Height,
		"pixels":      px.Total,
		"ratio":       info.Ratio(),
		"ratioName":   info.RatioName(),
		"hasDiagonal": info.HasDiagonal(),
	}

	if m, ok := info.Metrics(); ok {
		vars["diagonal"] = m.Diagonal
		vars["diagonalCm"] = screen.ToCentimeters(m.Diagonal)
		vars["dpi"] = m.DPI
		vars["dotPitch"] = m.DotPitch
		vars["sizeWidth"] = m.Size.Width
		vars["sizeHeight"] = m.Size.Height
	}

	return vars, true
}
