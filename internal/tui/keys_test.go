package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/trex/internal/explorer"
	"github.com/mobil-koeln/trex/internal/models"
	"github.com/mobil-koeln/trex/internal/testutil"
)

func TestKeyMap_Action(t *testing.T) {
	keys := defaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want explorer.Action
	}{
		{"arrow up", keyUp, explorer.ActionUp},
		{"k", runeKey('k'), explorer.ActionUp},
		{"arrow down", keyDown, explorer.ActionDown},
		{"j", runeKey('j'), explorer.ActionDown},
		{"enter", keyEnter, explorer.ActionConfirm},
		{"esc", keyEsc, explorer.ActionBack},
		{"b", runeKey('b'), explorer.ActionStations},
		{"s", runeKey('s'), explorer.ActionSegments},
		{"q", runeKey('q'), explorer.ActionQuit},
		{"ctrl+c", keyCtrlC, explorer.ActionQuit},
		{"unbound", runeKey('x'), explorer.ActionOther},
		{"upper case", runeKey('Q'), explorer.ActionOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, keys.action(tt.msg), tt.want)
		})
	}
}

func TestKeyMap_BindingsFor(t *testing.T) {
	keys := defaultKeyMap()

	picker := keys.bindingsFor(explorer.New().View())
	testutil.AssertLen(t, picker, 4)
	testutil.AssertEqual(t, picker[2].Help().Key, "enter")
	testutil.AssertEqual(t, picker[2].Help().Desc, "reload")

	loaded := explorer.New()
	loaded.Start()
	testutil.AssertNil(t, loaded.SummariesLoaded([]models.InfrastructureSummary{{ID: 2}}, nil))
	picker = keys.bindingsFor(loaded.View())
	testutil.AssertEqual(t, picker[2].Help().Desc, "open")

	mv := explorer.NewMapView(&models.StationGraph{ID: 1})
	inMap := keys.bindingsFor(mv)
	testutil.AssertLen(t, inMap, 6)
	testutil.AssertEqual(t, inMap[4].Help().Key, "esc")
}
