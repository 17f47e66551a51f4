package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/trex/internal/api"
	"github.com/mobil-koeln/trex/internal/explorer"
	"github.com/mobil-koeln/trex/internal/models"
	"github.com/mobil-koeln/trex/internal/testutil"
)

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// newFixtureModel returns a model talking to a mock Trassenfinder server
// that serves the testutil fixtures.
func newFixtureModel(t *testing.T) (Model, *api.Client) {
	t.Helper()
	ms := testutil.NewRouteServer(map[string]string{
		"/infrastrukturen":   testutil.SampleInfrastructureIndexResponse,
		"/infrastrukturen/2": testutil.SampleInfrastructureResponse,
		"/infrastrukturen/3": testutil.SampleBrokenInfrastructureResponse,
	})
	t.Cleanup(ms.Close)

	client, err := api.NewClient(api.WithBaseURL(ms.URL))
	testutil.AssertNil(t, err)

	m := New(client)
	m.width = 120
	m.height = 30
	return m, client
}

// newPickerModel returns a fixture model with the index loaded.
func newPickerModel(t *testing.T) (Model, *api.Client) {
	t.Helper()
	m, client := newFixtureModel(t)
	testutil.AssertTrue(t, m.Init() != nil)
	m, _ = update(t, m, fetchInfrastructures(client)())
	testutil.AssertNil(t, m.err)
	return m, client
}

// newMapModel returns a fixture model showing infrastructure 2.
func newMapModel(t *testing.T) Model {
	t.Helper()
	m, client := newPickerModel(t)
	m, cmd := update(t, m, keyEnter)
	testutil.AssertTrue(t, cmd != nil)
	m, _ = update(t, m, fetchInfrastructure(client, 2)())
	testutil.AssertNil(t, m.err)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func pickerView(t *testing.T, m Model) *explorer.PickerView {
	t.Helper()
	v, ok := m.nav.View().(*explorer.PickerView)
	if !ok {
		t.Fatalf("view is %T, want *explorer.PickerView", m.nav.View())
	}
	return v
}

func mapView(t *testing.T, m Model) *explorer.MapView {
	t.Helper()
	v, ok := m.nav.View().(*explorer.MapView)
	if !ok {
		t.Fatalf("view is %T, want *explorer.MapView", m.nav.View())
	}
	return v
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNew(t *testing.T) {
	client, _ := api.NewClient()
	m := New(client)

	testutil.AssertTrue(t, m.client != nil)
	testutil.AssertFalse(t, m.busy())
	testutil.AssertNil(t, m.err)
	testutil.AssertEqual(t, pickerView(t, m).List().Len(), 0)
}

func TestModel_Init(t *testing.T) {
	client, _ := api.NewClient()
	m := New(client)

	cmd := m.Init()
	testutil.AssertTrue(t, cmd != nil)

	req, ok := m.nav.Pending()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, req.Kind, explorer.RequestReloadPicker)
}

func TestModel_WindowSize(t *testing.T) {
	client, _ := api.NewClient()
	m := New(client)

	testutil.AssertEqual(t, m.width, 0)
	testutil.AssertEqual(t, m.height, 0)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})
	testutil.AssertEqual(t, m.width, 100)
	testutil.AssertEqual(t, m.height, 50)
}

func TestSummariesResult_Success(t *testing.T) {
	m, _ := newPickerModel(t)

	items := pickerView(t, m).List().Items()
	testutil.AssertLen(t, items, 3)
	testutil.AssertEqual(t, items[0].ID, uint64(2))
	testutil.AssertEqual(t, items[2].ID, uint64(4))
	testutil.AssertFalse(t, m.busy())
}

func TestSummariesResult_Error(t *testing.T) {
	m, _ := newFixtureModel(t)
	m.Init()

	m, _ = update(t, m, summariesResultMsg{err: api.ErrTimeout})
	testutil.AssertErrorIs(t, m.err, api.ErrTimeout)
	testutil.AssertFalse(t, m.busy())
	testutil.AssertEqual(t, pickerView(t, m).List().Len(), 0)
}

func TestSummariesResult_ErrorThenRetry(t *testing.T) {
	m, client := newFixtureModel(t)
	m.Init()

	m, _ = update(t, m, summariesResultMsg{err: errors.New("connection refused")})
	testutil.AssertError(t, m.err)
	testutil.AssertContains(t, stripANSI(m.View()), "enter reload")

	m, _ = update(t, m, runeKey('x'))
	testutil.AssertError(t, m.err)

	// Arrow keys have nothing to move on
	m, cmd := update(t, m, keyDown)
	testutil.AssertTrue(t, cmd == nil)
	testutil.AssertFalse(t, m.busy())

	m, cmd = update(t, m, keyEnter)
	testutil.AssertTrue(t, cmd != nil)
	testutil.AssertTrue(t, m.busy())

	m, _ = update(t, m, fetchInfrastructures(client)())
	testutil.AssertNil(t, m.err)
	testutil.AssertFalse(t, m.busy())
	testutil.AssertEqual(t, pickerView(t, m).List().Len(), 3)
	testutil.AssertContains(t, stripANSI(m.View()), "enter open")
}

func TestSummariesResult_Stale(t *testing.T) {
	m, _ := newFixtureModel(t)

	// Nothing requested yet
	m, _ = update(t, m, summariesResultMsg{summaries: []models.InfrastructureSummary{{ID: 1}}})
	testutil.AssertNil(t, m.err)
	testutil.AssertEqual(t, pickerView(t, m).List().Len(), 0)
}

func TestPicker_Navigate(t *testing.T) {
	m, _ := newPickerModel(t)
	list := pickerView(t, m).List()

	m, _ = update(t, m, keyDown)
	m, _ = update(t, m, runeKey('j'))
	m, _ = update(t, m, keyDown)
	idx, _ := list.Selected()
	testutil.AssertEqual(t, idx, 2)

	m, _ = update(t, m, runeKey('k'))
	idx, _ = list.Selected()
	testutil.AssertEqual(t, idx, 1)

	_, _ = update(t, m, keyUp)
	idx, _ = list.Selected()
	testutil.AssertEqual(t, idx, 0)
}

func TestPicker_EnterLoadsMap(t *testing.T) {
	m := newMapModel(t)
	v := mapView(t, m)

	testutil.AssertEqual(t, v.Graph().ID, uint64(2))
	testutil.AssertEqual(t, v.Stations().Len(), 4)
	testutil.AssertEqual(t, v.Segments().Len(), 3)
	testutil.AssertFalse(t, m.busy())
}

func TestPicker_BrokenInfrastructure(t *testing.T) {
	m, client := newPickerModel(t)
	m, _ = update(t, m, keyDown)
	m, _ = update(t, m, keyEnter)
	m, _ = update(t, m, fetchInfrastructure(client, 3)())

	var refErr *models.ReferenceError
	testutil.AssertTrue(t, errors.As(m.err, &refErr))
	testutil.AssertEqual(t, refErr.Code, "EDG")

	// Still on the picker, same selection
	idx, _ := pickerView(t, m).List().Selected()
	testutil.AssertEqual(t, idx, 1)

	// The next key press clears the error
	m, _ = update(t, m, keyDown)
	testutil.AssertNil(t, m.err)
}

func TestPending_IgnoresNavigation(t *testing.T) {
	m, _ := newPickerModel(t)
	m, _ = update(t, m, keyEnter)
	testutil.AssertTrue(t, m.busy())

	m, cmd := update(t, m, keyDown)
	testutil.AssertTrue(t, cmd == nil)
	idx, _ := pickerView(t, m).List().Selected()
	testutil.AssertEqual(t, idx, 0)

	// Quit still works
	_, cmd = update(t, m, runeKey('q'))
	testutil.AssertTrue(t, isQuit(cmd))
}

func TestInfrastructureResult_Stale(t *testing.T) {
	m, _ := newPickerModel(t)
	m, _ = update(t, m, infrastructureResultMsg{id: 4, graph: &models.StationGraph{ID: 4}})

	testutil.AssertNil(t, m.err)
	pickerView(t, m)
}

func TestMap_SwitchPanes(t *testing.T) {
	m := newMapModel(t)
	v := mapView(t, m)

	m, _ = update(t, m, runeKey('s'))
	testutil.AssertEqual(t, v.Active(), explorer.PaneSegments)
	m, _ = update(t, m, keyDown)
	seg, _ := v.SelectedSegment()
	testutil.AssertEqual(t, seg.Label(), "2650 (KD -> EDG)")

	m, _ = update(t, m, runeKey('b'))
	testutil.AssertEqual(t, v.Active(), explorer.PaneStations)
	_, _ = update(t, m, keyDown)
	st, _ := v.SelectedStation()
	testutil.AssertEqual(t, st.Code, "KD")
}

func TestMap_EnterIgnored(t *testing.T) {
	m := newMapModel(t)
	m, cmd := update(t, m, keyEnter)
	testutil.AssertTrue(t, cmd == nil)
	mapView(t, m)
}

func TestMap_EscReturnsToPicker(t *testing.T) {
	m := newMapModel(t)

	m, cmd := update(t, m, keyEsc)
	testutil.AssertTrue(t, cmd != nil)
	testutil.AssertTrue(t, m.busy())

	p := pickerView(t, m)
	sel, _ := p.List().SelectedItem()
	testutil.AssertEqual(t, sel.ID, uint64(2))
}

func TestModel_Quit(t *testing.T) {
	m, _ := newPickerModel(t)

	_, cmd := update(t, m, runeKey('q'))
	testutil.AssertTrue(t, isQuit(cmd))

	_, cmd = update(t, m, keyCtrlC)
	testutil.AssertTrue(t, isQuit(cmd))

	m = newMapModel(t)
	_, cmd = update(t, m, runeKey('q'))
	testutil.AssertTrue(t, isQuit(cmd))
}

func TestModel_UnboundKey(t *testing.T) {
	m, _ := newPickerModel(t)
	m, cmd := update(t, m, runeKey('x'))
	testutil.AssertTrue(t, cmd == nil)
	pickerView(t, m)
}
