// Package tui is the terminal rendition of the onboarding wizard. It drives
// the pure state machine in package wizard and fetches area labels and
// results from the API.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arisa-app/castdir/internal/domain"
	"github.com/arisa-app/castdir/internal/handler/gen"
	"github.com/arisa-app/castdir/internal/wizard"
)

// Directory is the read side of the API the wizard needs.
type Directory interface {
	ActiveAreas(ctx context.Context) ([]gen.AreaLabel, error)
	Casts(ctx context.Context, q url.Values) ([]gen.Cast, error)
}

type phase int

const (
	phaseWizard phase = iota
	phaseResults
)

// option is one choosable row on a step.
type option struct {
	value string
	label string
}

type areasLoadedMsg struct{ areas []gen.AreaLabel }

type castsLoadedMsg struct {
	result wizard.Result
	casts  []gen.Cast
}

// fetchFailedMsg carries a failed call together with the command that retries it.
type fetchFailedMsg struct {
	err   error
	retry tea.Cmd
}

// Model is the bubbletea model for the wizard.
type Model struct {
	ctx    context.Context
	dir    Directory
	log    *slog.Logger
	panel  *LogPanel
	styles Styles

	state   wizard.State
	phase   phase
	cursor  int
	areas   []gen.AreaLabel
	loading bool
	hint    string
	err     error
	retry   tea.Cmd

	result *wizard.Result
	casts  []gen.Cast

	showLog bool
	width   int
}

// New returns a Model at the first wizard step. panel may be nil, in which
// case the log toggle shows nothing.
func New(ctx context.Context, dir Directory, log *slog.Logger, panel *LogPanel) Model {
	return Model{
		ctx:    ctx,
		dir:    dir,
		log:    log,
		panel:  panel,
		styles: DefaultStyles(),
		state:  wizard.Start(),
	}
}

// Init starts loading area labels so step 2 is ready when the user gets there.
func (m Model) Init() tea.Cmd {
	return m.fetchAreas()
}

// State returns the current wizard state.
func (m Model) State() wizard.State { return m.state }

// Result returns the completed wizard result, or nil while the wizard runs.
func (m Model) Result() *wizard.Result { return m.result }

// Casts returns the results shown after completion.
func (m Model) Casts() []gen.Cast { return m.casts }

// Err returns the error currently on screen, if any.
func (m Model) Err() error { return m.err }

// LogVisible reports whether the log panel is open.
func (m Model) LogVisible() bool { return m.showLog }

func (m Model) fetchAreas() tea.Cmd {
	ctx, dir := m.ctx, m.dir
	var cmd tea.Cmd
	cmd = func() tea.Msg {
		areas, err := dir.ActiveAreas(ctx)
		if err != nil {
			return fetchFailedMsg{err: err, retry: cmd}
		}
		return areasLoadedMsg{areas: areas}
	}
	return cmd
}

func (m Model) fetchCasts(res wizard.Result) tea.Cmd {
	ctx, dir := m.ctx, m.dir
	var cmd tea.Cmd
	cmd = func() tea.Msg {
		casts, err := dir.Casts(ctx, res.Selection.Query())
		if err != nil {
			return fetchFailedMsg{err: err, retry: cmd}
		}
		return castsLoadedMsg{result: res, casts: casts}
	}
	return cmd
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case areasLoadedMsg:
		m.loading = false
		m.err, m.retry = nil, nil
		m.areas = msg.areas
		m.log.Info("areas loaded", "count", len(msg.areas))
		m.cursor = m.cursorFor(m.state)
		return m, nil

	case castsLoadedMsg:
		m.loading = false
		m.err, m.retry = nil, nil
		m.phase = phaseResults
		res := msg.result
		m.result = &res
		m.casts = msg.casts
		m.log.Info("results loaded", "query", res.Query(), "count", len(msg.casts))
		return m, nil

	case fetchFailedMsg:
		m.loading = false
		m.err = msg.err
		m.retry = msg.retry
		m.log.Error("request failed", "error", msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "L":
		m.showLog = !m.showLog
		return m, nil
	case "r":
		if m.err != nil && m.retry != nil {
			cmd := m.retry
			m.err, m.retry = nil, nil
			m.loading = true
			m.log.Info("retrying")
			return m, cmd
		}
		return m, nil
	}

	if m.loading {
		return m, nil
	}
	if m.phase == phaseResults {
		switch msg.String() {
		case "b", "left", "esc":
			m.phase = phaseWizard
			m.result, m.casts = nil, nil
			m.cursor = m.cursorFor(m.state)
		}
		return m, nil
	}

	opts := m.options(m.state)
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(opts)-1 {
			m.cursor++
		}
	case " ", "x":
		if len(opts) == 0 {
			return m, nil
		}
		next, err := wizard.Select(m.state, opts[m.cursor].value)
		if err != nil {
			m.log.Warn("selection rejected", "value", opts[m.cursor].value, "error", err)
			return m, nil
		}
		m.state = next
		m.hint = ""
	case "enter", "right", "n":
		return m.advance()
	case "b", "left", "esc", "backspace":
		m.state = wizard.Retreat(m.state)
		m.hint = ""
		m.cursor = m.cursorFor(m.state)
	}
	return m, nil
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	next, res, err := wizard.Advance(m.state)
	if errors.Is(err, wizard.ErrCannotProceed) {
		m.hint = "選択してください"
		return m, nil
	}
	if err != nil {
		m.err = err
		return m, nil
	}
	m.hint = ""
	m.state = next
	m.cursor = m.cursorFor(next)
	if res == nil {
		return m, nil
	}
	m.loading = true
	m.log.Info("wizard completed", "url", res.URL())
	return m, m.fetchCasts(*res)
}

// options lists what can be chosen on s, in display order.
func (m Model) options(s wizard.State) []option {
	switch s.(type) {
	case wizard.AreaStep:
		out := make([]option, 0, len(m.areas))
		for _, a := range m.areas {
			out = append(out, option{value: a.Key, label: a.Label})
		}
		return out
	case wizard.ServiceStep:
		out := make([]option, 0, len(domain.ServiceTypes))
		for _, st := range domain.ServiceTypes {
			out = append(out, option{value: string(st), label: st.Label()})
		}
		return out
	case wizard.BudgetStep:
		out := make([]option, 0, len(domain.BudgetRanges))
		for _, b := range domain.BudgetRanges {
			out = append(out, option{value: string(b), label: b.Label()})
		}
		return out
	default:
		return nil
	}
}

// cursorFor points at the current selection on s, or the first row.
func (m Model) cursorFor(s wizard.State) int {
	cur := wizard.Current(s)
	for i, o := range m.options(s) {
		if o.value == cur {
			return i
		}
	}
	return 0
}

type stepText struct {
	title, subtitle, next string
}

var stepTexts = map[int]stepText{
	1: {"Arisa へようこそ", "あなたにぴったりのキャストを見つけましょう", "始める"},
	2: {"エリアを選択してください", "どちらのエリアをお探しですか？", "次へ"},
	3: {"接客スタイルを選択してください", "どのような雰囲気をお求めですか？", "次へ"},
	4: {"予算帯を選択してください", "ご予算の範囲を教えてください", "キャストを探す"},
}

func (m Model) View() string {
	var b strings.Builder
	if m.phase == phaseResults {
		b.WriteString(m.viewResults())
	} else {
		b.WriteString(m.viewStep())
	}
	if m.err != nil {
		b.WriteString("\n" + m.styles.Error.Render("エラー: "+m.err.Error()))
		if m.retry != nil {
			b.WriteString("\n" + m.styles.Hint.Render("r: 再試行"))
		}
	}
	if m.showLog {
		b.WriteString("\n" + m.viewLog())
	}
	return b.String()
}

func (m Model) viewStep() string {
	var b strings.Builder
	step := m.state.Step()
	txt := stepTexts[step]

	b.WriteString(m.styles.Progress.Render(fmt.Sprintf("ステップ %d / %d  %d%%",
		step, wizard.TotalSteps, step*100/wizard.TotalSteps)))
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render(txt.title) + "\n")
	b.WriteString(m.styles.Subtitle.Render(txt.subtitle) + "\n")

	opts := m.options(m.state)
	cur := wizard.Current(m.state)
	if _, ok := m.state.(wizard.AreaStep); ok && len(opts) == 0 && m.err == nil {
		b.WriteString(m.styles.Hint.Render("エリアを読み込み中...") + "\n")
	}
	for i, o := range opts {
		pointer := "  "
		if i == m.cursor {
			pointer = m.styles.Cursor.Render("> ")
		}
		mark := "( )"
		label := o.label
		if o.value == cur {
			mark = "(*)"
			label = m.styles.Selected.Render(label)
		}
		b.WriteString(pointer + m.styles.Option.Render(mark+" "+label) + "\n")
	}

	if m.loading {
		b.WriteString(m.styles.Hint.Render("検索中...") + "\n")
	}
	if m.hint != "" {
		b.WriteString(m.styles.Error.Render(m.hint) + "\n")
	}

	keys := []string{"enter: " + txt.next}
	if len(opts) > 0 {
		keys = append([]string{"↑/↓: 移動", "space: 選択"}, keys...)
	}
	if step > 1 {
		keys = append(keys, "b: 戻る")
	}
	keys = append(keys, "L: ログ", "q: 終了")
	b.WriteString(m.styles.Hint.Render(strings.Join(keys, "  ")))
	return b.String()
}

func (m Model) viewResults() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("検索結果 %d件", len(m.casts))) + "\n")
	if m.result != nil {
		b.WriteString(m.styles.Subtitle.Render(m.result.URL()) + "\n")
	}
	if len(m.casts) == 0 {
		b.WriteString(m.styles.Hint.Render("条件に合うキャストが見つかりませんでした") + "\n")
	}
	for _, c := range m.casts {
		lines := []string{
			m.styles.Selected.Render(c.Name),
			domain.ServiceType(c.ServiceType).Label() + " / " + domain.BudgetRange(c.BudgetRange).Label() + " / " + m.areaLabel(c.Area),
			c.SnsLink,
		}
		if c.StoreLink != nil && *c.StoreLink != "" {
			lines = append(lines, *c.StoreLink)
		}
		b.WriteString(m.styles.Card.Render(strings.Join(lines, "\n")) + "\n")
	}
	b.WriteString(m.styles.Hint.Render("b: 条件を変更  L: ログ  q: 終了"))
	return b.String()
}

func (m Model) areaLabel(key string) string {
	for _, a := range m.areas {
		if a.Key == key {
			return a.Label
		}
	}
	return key
}

func (m Model) viewLog() string {
	if m.panel == nil {
		return m.styles.LogPanel.Render("(no log sink)")
	}
	entries := m.panel.Entries()
	const visible = 10
	if len(entries) > visible {
		entries = entries[len(entries)-visible:]
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, m.styles.LogLine.Render(e.String()))
	}
	if len(lines) == 0 {
		lines = append(lines, m.styles.LogLine.Render("(empty)"))
	}
	return m.styles.LogPanel.Render(strings.Join(lines, "\n"))
}
