package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"pixelmask.klederson.com/internal/animator"
	"pixelmask.klederson.com/internal/config"
	"pixelmask.klederson.com/internal/demo"
	"pixelmask.klederson.com/internal/masking"
	"pixelmask.klederson.com/internal/render"
	"pixelmask.klederson.com/internal/ui"
)

// Options configures a new AppModel.
type Options struct {
	Text      string
	Algorithm masking.Algorithm
	Demo      bool
	Scheduler animator.Scheduler // defaults to animator.TickerScheduler
}

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	driver *animator.Driver
	cycler *demo.Cycler
	sender demo.Sender
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	width  int
	height int

	demoMode    bool
	initialText string
	initialAlg  masking.Algorithm
	cursor      int

	input  textinput.Model
	shared *shared
}

// New creates a new AppModel. The driver stays idle until Init's
// confirmation message is processed.
func New(opts Options) AppModel {
	if opts.Algorithm == nil {
		opts.Algorithm = masking.Default()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = animator.TickerScheduler{}
	}

	ti := textinput.New()
	ti.Placeholder = "Enter text"
	ti.Prompt = "> "
	ti.CharLimit = config.InputLimit
	ti.SetValue(opts.Text)
	ti.Focus()

	sh := &shared{}
	sh.driver = animator.New(opts.Scheduler, func(t animator.Tick) {
		if s := sh.sender; s != nil {
			s.Send(t)
		}
	}, opts.Algorithm)

	return AppModel{
		demoMode:    opts.Demo,
		initialText: strings.ToUpper(opts.Text),
		initialAlg:  opts.Algorithm,
		cursor:      max(masking.IndexOf(opts.Algorithm), 0),
		input:       ti,
		shared:      sh,
	}
}

func (m AppModel) Init() tea.Cmd {
	text, alg := m.initialText, m.initialAlg
	return tea.Batch(
		textinput.Blink,
		func() tea.Msg { return ConfirmMsg{Text: text, Algorithm: alg} },
	)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(m.width-8, 10)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case animator.Tick:
		m.shared.driver.HandleTick(msg)
		return m, nil

	case ConfirmMsg:
		m.shared.driver.Configure(msg.Text, msg.Algorithm)
		m.syncCursor()
		return m, nil

	case demo.ChangeMsg:
		m.input.SetValue(msg.Text)
		m.shared.driver.Configure(msg.Text, msg.Algorithm)
		m.syncCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.shared.driver
	algs := masking.Algorithms()

	switch msg.String() {
	case "ctrl+c", "esc":
		m.Shutdown()
		return m, tea.Quit

	case "enter":
		text := strings.ToUpper(m.input.Value())
		logrus.WithField("text", text).Debug("text confirmed")
		d.Configure(text, d.Algorithm())
		return m, nil

	case "tab":
		d.SetAlgorithm(masking.Next(d.Algorithm(), 1))
		m.syncCursor()
		return m, nil

	case "shift+tab":
		d.SetAlgorithm(masking.Next(d.Algorithm(), -1))
		m.syncCursor()
		return m, nil

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down":
		if m.cursor < len(algs)-1 {
			m.cursor++
		}
		return m, nil

	case "ctrl+s":
		d.SetAlgorithm(algs[m.cursor])
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *AppModel) syncCursor() {
	if i := masking.IndexOf(m.shared.driver.Algorithm()); i >= 0 {
		m.cursor = i
	}
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing " + config.AppName + "..."
	}

	d := m.shared.driver
	alg := d.Algorithm()

	menuH := 1
	statusH := 1
	inputH := 3
	bodyH := m.height - menuH - statusH - inputH
	if bodyH < 12 {
		bodyH = 12
	}

	listW := m.width / 4
	if listW < 28 {
		listW = 28
	}
	displayW := m.width - listW
	if displayW < 20 {
		displayW = 20
	}

	menuBar := ui.RenderMenuBar(m.width, alg.Name(), m.demoMode)

	grid := d.Snapshot()
	text := d.Text()
	var content string
	if text == "" {
		content = render.Placeholder(displayW-4, "Type text and press Enter")
	} else {
		content = render.Render(render.Compose(text, grid))
	}
	displayPanel := ui.RenderDisplayPanel(displayW, bodyH, content)

	algList := ui.RenderAlgorithmList(masking.Algorithms(), listW, bodyH, m.cursor, alg.Name())

	inputBar := ui.RenderInputBar(m.width, m.input.View(), "Enter to confirm")

	statusBar := ui.RenderStatusBar(m.width, d.State(), grid.Size(), d.Stats())

	return ui.ComposeLayout(menuBar, displayPanel, algList, inputBar, statusBar)
}

// Start connects the model to the running program so timer ticks and demo
// changes reach Update. Must be called before p.Run().
func (m *AppModel) Start(p demo.Sender) error {
	m.shared.sender = p
	if m.demoMode {
		m.shared.cycler = demo.NewCycler(config.DemoInterval)
		return m.shared.cycler.Start(p)
	}
	return nil
}

// Shutdown cancels the refresh timer and the demo cycler.
func (m AppModel) Shutdown() {
	if m.shared.cycler != nil {
		m.shared.cycler.Stop()
	}
	m.shared.driver.Stop()
}

// Driver exposes the animation driver.
func (m AppModel) Driver() *animator.Driver {
	return m.shared.driver
}
