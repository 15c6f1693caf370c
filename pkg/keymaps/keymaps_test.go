package keymaps

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestBuildKeyMap_Defaults(t *testing.T) {
	km := BuildKeyMap(nil)

	assert.Equal(t, []string{"a"}, km.AddTask.Keys())
	assert.Equal(t, []string{"q", "ctrl+c"}, km.QuitApp.Keys())
	assert.Equal(t, []string{" ", "x"}, km.ToggleStatus.Keys())
	assert.Equal(t, "space", km.ToggleStatus.Help().Key)
	assert.Equal(t, "enter", km.DropTask.Help().Key)
}

func TestBuildKeyMap_OverridesIgnoreCase(t *testing.T) {
	km := BuildKeyMap(map[string]string{
		"addtask":    "n, +",
		"DeleteTask": "ctrl+d",
	})

	assert.Equal(t, []string{"n", "+"}, km.AddTask.Keys())
	assert.Equal(t, []string{"ctrl+d"}, km.DeleteTask.Keys())
	assert.Equal(t, []string{"e"}, km.EditTask.Keys())
}

func TestBuildKeyMap_SpaceAndEmptyOverrides(t *testing.T) {
	km := BuildKeyMap(map[string]string{
		"GrabTask":     "space",
		"EditTask":     "",
		"ToggleStatus": "t",
	})

	assert.Equal(t, []string{" "}, km.GrabTask.Keys())
	assert.Equal(t, "space", km.GrabTask.Help().Key)
	assert.Equal(t, []string{"e"}, km.EditTask.Keys())
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")}, km.ToggleStatus))
}

func TestGetDefaultKeyMappings(t *testing.T) {
	mappings := GetDefaultKeyMappings()

	assert.Len(t, mappings, len(KeyDefinitions))
	assert.Equal(t, "m", mappings["GrabTask"])
}
