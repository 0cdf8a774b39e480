package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/aspect/pkg/keys"
	"github.com/macropower/aspect/pkg/ui"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := ui.NewConfig()

	require.NotNil(t, cfg.Compact)
	assert.False(t, *cfg.Compact)
	require.NotNil(t, cfg.AlternateDiagonal)
	assert.True(t, *cfg.AlternateDiagonal)
	assert.Equal(t, "auto", cfg.Theme)

	require.NotNil(t, cfg.KeyBinds.Common.Quit)
	require.NotNil(t, cfg.KeyBinds.Editor.Rotate)
	require.NotNil(t, cfg.KeyBinds.Picker.Select)
	assert.True(t, cfg.KeyBinds.Editor.Rotate.Match("ctrl+r"))
	assert.True(t, cfg.KeyBinds.Editor.Down.Match("enter"))

	require.NoError(t, cfg.Validate())
}

func TestConfigEnsureDefaultsKeepsOverrides(t *testing.T) {
	t.Parallel()

	compact := true
	rotate := keys.NewBind("turn", keys.New("r"))

	cfg := &ui.Config{
		Compact: &compact,
		Theme:   "dracula",
		KeyBinds: &ui.KeyBinds{
			Editor: &ui.EditorKeyBinds{Rotate: &rotate},
		},
	}
	cfg.EnsureDefaults()

	assert.True(t, *cfg.Compact)
	assert.Equal(t, "dracula", cfg.Theme)
	assert.Equal(t, "turn", cfg.KeyBinds.Editor.Rotate.Description)
	assert.True(t, cfg.KeyBinds.Editor.Rotate.Match("r"))
	assert.True(t, cfg.KeyBinds.Editor.Add.Match("ctrl+n"))
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		modify func(cfg *ui.Config)
		err    bool
	}{
		"defaults": {
			modify: func(*ui.Config) {},
		},
		"editor conflicts with common": {
			modify: func(cfg *ui.Config) {
				kb := keys.NewBind("add", keys.New("ctrl+q"))
				cfg.KeyBinds.Editor.Add = &kb
			},
			err: true,
		},
		"editor conflicts with editor": {
			modify: func(cfg *ui.Config) {
				kb := keys.NewBind("copy", keys.New("ctrl+r"))
				cfg.KeyBinds.Editor.Copy = &kb
			},
			err: true,
		},
		"picker conflicts with common": {
			modify: func(cfg *ui.Config) {
				kb := keys.NewBind("select", keys.New("esc"))
				cfg.KeyBinds.Picker.Select = &kb
			},
			err: true,
		},
		"picker may reuse editor keys": {
			modify: func(cfg *ui.Config) {
				kb := keys.NewBind("select", keys.New("ctrl+r"))
				cfg.KeyBinds.Picker.Select = &kb
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := ui.NewConfig()
			tc.modify(cfg)

			err := cfg.Validate()
			if tc.err {
				require.ErrorIs(t, err, keys.ErrDuplicateKey)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
