// Package browse contains the interactive tree browser: a two-pane
// bubbletea model with the resolved tree on the left and the selected
// node's detail card on the right.
package browse

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/arbor/internal/domain/tree"
	"github.com/zjrosen/arbor/internal/keys"
	"github.com/zjrosen/arbor/internal/log"
	"github.com/zjrosen/arbor/internal/presentation"
	helpview "github.com/zjrosen/arbor/internal/ui/help"
	"github.com/zjrosen/arbor/internal/ui/logoverlay"
	"github.com/zjrosen/arbor/internal/ui/styles"
	"github.com/zjrosen/arbor/internal/watcher"
)

// focusArea identifies which pane receives navigation keys.
type focusArea int

const (
	focusTree focusArea = iota
	focusDetail
)

// statusClearAfter is how long transient status messages stay visible.
const statusClearAfter = 3 * time.Second

// spinnerFrames defines the braille spinner animation sequence.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Messages produced by the model's commands.
type (
	// treeResolvedMsg delivers a freshly resolved tree.
	treeResolvedMsg struct {
		root  presentation.NodeDTO
		count int
	}
	// resolveFailedMsg delivers a resolution error.
	resolveFailedMsg struct{ err error }
	// manifestChangedMsg signals a debounced manifest directory change.
	manifestChangedMsg struct{}
	// clearStatusMsg expires a transient status message.
	clearStatusMsg struct{}
	// spinnerTickMsg advances the loading spinner frame.
	spinnerTickMsg struct{}
)

// Config wires the browser to its surroundings. Resolve is called once at
// startup and again on every refresh; it must re-read manifests from disk so
// edits show up.
type Config struct {
	Descriptor    string
	Resolve       func(context.Context) (*tree.Node, error)
	ManifestDir   string // watched for changes when AutoRefresh is on
	AutoRefresh   bool
	DebounceDur   time.Duration // 0 uses the watcher default
	ShowStatusBar bool
	MarkdownStyle string // glamour style for the detail pane
	Clipboard     Clipboard
}

// Model is the browse view state.
type Model struct {
	descriptor string
	resolve    func(context.Context) (*tree.Node, error)

	tree   treePane
	detail detailPane
	focus  focusArea

	keys        keys.BrowseKeyMap
	footerHelp  help.Model
	helpOverlay helpview.Model
	showHelp    bool

	logOverlay   logoverlay.Model
	logListener  *log.LogListener
	listenCancel context.CancelFunc

	watcherHandle *watcher.Watcher
	watcherCh     <-chan struct{}

	clipboard Clipboard

	showStatusBar bool
	width         int
	height        int

	loading      bool
	spinnerFrame int
	err          error
	status       string
	nodeCount    int
}

// New creates a browse model. The file watcher and log listener start here;
// call Close after the program exits to release them.
func New(cfg Config) Model {
	keymap := keys.Browse

	clipboard := cfg.Clipboard
	if clipboard == nil {
		clipboard = SystemClipboard{}
	}

	// Watch the manifest directory when auto-refresh is enabled.
	// Watcher init errors are ignored: browsing works without auto-refresh.
	var (
		watcherHandle *watcher.Watcher
		watcherCh     <-chan struct{}
	)
	if cfg.AutoRefresh && cfg.ManifestDir != "" {
		wcfg := watcher.DefaultConfig(cfg.ManifestDir)
		if cfg.DebounceDur > 0 {
			wcfg.DebounceDur = cfg.DebounceDur
		}
		if w, err := watcher.New(wcfg); err == nil {
			if ch, err := w.Start(); err == nil {
				watcherHandle = w
				watcherCh = ch
			} else {
				_ = w.Stop()
			}
		}
	}

	listenCtx, listenCancel := context.WithCancel(context.Background())
	listener := log.NewListener(listenCtx)

	return Model{
		descriptor:    cfg.Descriptor,
		resolve:       cfg.Resolve,
		tree:          newTreePane(),
		detail:        newDetailPane(cfg.MarkdownStyle),
		keys:          keymap,
		footerHelp:    help.New(),
		helpOverlay:   helpview.New(keymap),
		logOverlay:    logoverlay.New(),
		logListener:   listener,
		listenCancel:  listenCancel,
		watcherHandle: watcherHandle,
		watcherCh:     watcherCh,
		clipboard:     clipboard,
		showStatusBar: cfg.ShowStatusBar,
		loading:       true,
	}
}

// Init implements tea.Model: kick off the first resolve and start the
// watcher and log listeners.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.resolveCmd(), spinnerTick()}
	if m.watcherCh != nil {
		cmds = append(cmds, waitForManifestChange(m.watcherCh))
	}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// resolveCmd re-resolves the descriptor off the update loop.
func (m Model) resolveCmd() tea.Cmd {
	resolve := m.resolve
	return func() tea.Msg {
		node, err := resolve(context.Background())
		if err != nil {
			return resolveFailedMsg{err: err}
		}
		return treeResolvedMsg{root: presentation.FromNode(node), count: node.Size()}
	}
}

// spinnerTick advances the spinner frame after 80ms.
func spinnerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

// waitForManifestChange blocks on the watcher channel and converts the next
// signal into a message. Returns nil when the watcher shuts down.
func waitForManifestChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return manifestChangedMsg{}
	}
}

// clearStatusLater expires the status message after statusClearAfter.
func clearStatusLater() tea.Cmd {
	return tea.Tick(statusClearAfter, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout()
		m.logOverlay.SetSize(msg.Width, msg.Height)
		m.helpOverlay = m.helpOverlay.SetSize(msg.Width, msg.Height)
		m.footerHelp.Width = msg.Width
		return m, nil

	case spinnerTickMsg:
		if m.loading {
			m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerFrames)
			return m, spinnerTick()
		}
		return m, nil

	case treeResolvedMsg:
		m.loading = false
		m.err = nil
		m.nodeCount = msg.count
		m.tree.setRoot(msg.root)
		m.syncDetail()
		log.Debug(log.CatUI, "browse tree resolved", "descriptor", m.descriptor, "nodes", msg.count)
		return m, nil

	case resolveFailedMsg:
		m.loading = false
		m.err = msg.err
		log.ErrorErr(log.CatUI, "browse resolve failed", msg.err, "descriptor", m.descriptor)
		return m, nil

	case manifestChangedMsg:
		log.Debug(log.CatWatcher, "manifest change detected, reloading", "descriptor", m.descriptor)
		m.status = "manifests changed, reloading…"
		cmds := []tea.Cmd{m.resolveCmd(), clearStatusLater()}
		if m.watcherCh != nil {
			cmds = append(cmds, waitForManifestChange(m.watcherCh))
		}
		return m, tea.Batch(cmds...)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case log.LogEvent:
		m.logOverlay.Refresh()
		if m.logListener != nil {
			return m, m.logListener.Listen()
		}
		return m, nil

	case logoverlay.CloseMsg:
		return m, nil

	case tea.MouseMsg:
		if m.logOverlay.Visible() {
			var cmd tea.Cmd
			m.logOverlay, cmd = m.logOverlay.Update(msg)
			return m, cmd
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key input: the log overlay takes precedence when open,
// then the help overlay, then global and pane-level bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ToggleLogs) {
		m.logOverlay.Toggle()
		return m, nil
	}

	if m.logOverlay.Visible() {
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Escape) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.focus == focusDetail {
			m.focus = focusTree
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.FocusNext):
		if m.focus == focusTree {
			m.focus = focusDetail
		} else {
			m.focus = focusTree
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.status = "reloading…"
		log.Debug(log.CatUI, "browse manual reload", "descriptor", m.descriptor)
		return m, tea.Batch(m.resolveCmd(), clearStatusLater())

	case key.Matches(msg, m.keys.Yank):
		return m.yankSelection()
	}

	if m.focus == focusDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleTreeKey(msg)
}

// handleTreeKey applies navigation to the tree pane.
func (m Model) handleTreeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.tree.moveCursor(-1)
		m.syncDetail()
	case key.Matches(msg, m.keys.Down):
		m.tree.moveCursor(1)
		m.syncDetail()
	case key.Matches(msg, m.keys.Top):
		m.tree.gotoTop()
		m.syncDetail()
	case key.Matches(msg, m.keys.Bottom):
		m.tree.gotoBottom()
		m.syncDetail()
	case key.Matches(msg, m.keys.Expand):
		m.tree.expandAtCursor()
		m.syncDetail()
	case key.Matches(msg, m.keys.Collapse):
		m.tree.collapseAtCursor()
		m.syncDetail()
	case key.Matches(msg, m.keys.Toggle):
		m.tree.toggleAtCursor()
		m.syncDetail()
	}
	return m, nil
}

// handleDetailKey applies scrolling to the detail pane.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.detail.scrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.detail.scrollDown(1)
	case key.Matches(msg, m.keys.Top):
		m.detail.gotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.detail.gotoBottom()
	}
	return m, nil
}

// handleMouse handles wheel scrolling and click-to-select via bubblezone.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if z := zone.Get(zoneDetailPane); z != nil && z.InBounds(msg) {
			m.detail.scrollUp(1)
			return m, nil
		}
		m.tree.moveCursor(-1)
		m.syncDetail()
		return m, nil

	case tea.MouseButtonWheelDown:
		if z := zone.Get(zoneDetailPane); z != nil && z.InBounds(msg) {
			m.detail.scrollDown(1)
			return m, nil
		}
		m.tree.moveCursor(1)
		m.syncDetail()
		return m, nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionRelease {
			return m, nil
		}
		// Row zones select; pane zones move focus
		for i := m.tree.scrollTop; i < len(m.tree.rows); i++ {
			if z := zone.Get(zoneRowPrefix + strconv.Itoa(i)); z != nil && z.InBounds(msg) {
				m.focus = focusTree
				m.tree.selectRow(i)
				m.syncDetail()
				return m, nil
			}
		}
		if z := zone.Get(zoneDetailPane); z != nil && z.InBounds(msg) {
			m.focus = focusDetail
			return m, nil
		}
		if z := zone.Get(zoneTreePane); z != nil && z.InBounds(msg) {
			m.focus = focusTree
			return m, nil
		}
	}
	return m, nil
}

// yankSelection copies the selected row's path to the clipboard.
func (m Model) yankSelection() (tea.Model, tea.Cmd) {
	r, ok := m.tree.selected()
	if !ok {
		return m, nil
	}
	if err := m.clipboard.Copy(r.path); err != nil {
		m.status = "copy failed: " + err.Error()
		log.Warn(log.CatUI, "clipboard copy failed", "error", err)
		return m, clearStatusLater()
	}
	m.status = "copied " + r.path
	log.Debug(log.CatUI, "copied node path", "path", r.path)
	return m, clearStatusLater()
}

// syncDetail points the detail pane at the selected row.
func (m *Model) syncDetail() {
	if r, ok := m.tree.selected(); ok {
		m.detail.setNode(r.dto, r.path)
		return
	}
	m.detail.setNode(nil, "")
}

// applyLayout recomputes pane dimensions from the window size.
func (m *Model) applyLayout() {
	paneHeight := m.height - m.chromeHeight()
	if paneHeight < 3 {
		paneHeight = 3
	}
	treeWidth := m.treeWidth()
	detailWidth := m.width - treeWidth

	// Content sits inside the pane borders
	m.tree.setSize(max(treeWidth-2, 1), max(paneHeight-2, 1))
	m.detail.setSize(max(detailWidth-2, 1), max(paneHeight-2, 1))
}

// treeWidth gives the tree pane half the window.
func (m Model) treeWidth() int {
	return max(m.width/2, 2)
}

// chromeHeight counts the lines below the panes: footer help plus the
// status bar when shown.
func (m Model) chromeHeight() int {
	h := 1 // footer help line
	if m.showStatusBar || m.err != nil {
		h++
	}
	return h
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	view := m.baseView()

	if m.showHelp {
		view = m.helpOverlay.Overlay(view)
	}
	if m.logOverlay.Visible() {
		view = m.logOverlay.Overlay(view)
	}

	return zone.Scan(view)
}

// baseView composes the panes, status bar, and footer help.
func (m Model) baseView() string {
	paneHeight := m.height - m.chromeHeight()
	if paneHeight < 3 {
		paneHeight = 3
	}

	var body string
	switch {
	case m.loading && m.tree.root == nil:
		frame := spinnerStyle.Render(spinnerFrames[m.spinnerFrame])
		body = lipgloss.Place(m.width, paneHeight, lipgloss.Center, lipgloss.Center,
			frame+" "+loadingStyle.Render("Resolving "+m.descriptor+"…"))

	case m.err != nil && m.tree.root == nil:
		msg := styles.ErrorStyle.Render("resolve failed: "+m.err.Error()) + "\n" +
			scrollHintStyle.Render("press r to retry, q to quit")
		body = lipgloss.Place(m.width, paneHeight, lipgloss.Center, lipgloss.Center, msg)

	default:
		treeWidth := m.treeWidth()
		detailWidth := m.width - treeWidth

		treePane := zone.Mark(zoneTreePane, styles.RenderWithTitleBorder(
			m.tree.view(), m.descriptor, treeWidth, paneHeight,
			m.focus == focusTree, styles.TextPrimaryColor, styles.BorderFocusColor))

		detailPane := zone.Mark(zoneDetailPane, styles.RenderWithTitleBorder(
			m.detail.view(), m.detailTitle(), detailWidth, paneHeight,
			m.focus == focusDetail, styles.TextPrimaryColor, styles.BorderFocusColor))

		body = lipgloss.JoinHorizontal(lipgloss.Top, treePane, detailPane)
	}

	var sb strings.Builder
	sb.WriteString(body)
	if m.showStatusBar || m.err != nil {
		sb.WriteString("\n")
		sb.WriteString(m.renderStatusBar())
	}
	sb.WriteString("\n")
	sb.WriteString(m.footerHelp.View(m.keys))

	return sb.String()
}

// detailTitle names the detail pane after the selected node.
func (m Model) detailTitle() string {
	if r, ok := m.tree.selected(); ok && r.dto.Key != nil {
		return *r.dto.Key
	}
	return "Detail"
}

// renderStatusBar renders the bottom status line: errors win, then the
// descriptor summary with any transient status.
func (m Model) renderStatusBar() string {
	if m.err != nil {
		return statusErrStyle.Width(m.width).Render("resolve failed: " + m.err.Error())
	}

	content := fmt.Sprintf("[%s] %d nodes", m.descriptor, m.nodeCount)
	if m.status != "" {
		content += "  ·  " + m.status
	}
	return styles.StatusBarStyle.Width(m.width).Render(content)
}

// Close releases the watcher and log listener.
func (m *Model) Close() error {
	if m.listenCancel != nil {
		m.listenCancel()
	}
	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			return err
		}
	}
	return nil
}
