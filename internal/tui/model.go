package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ecobuddy/internal/catalog"
	"ecobuddy/internal/engine"
	"ecobuddy/internal/ui"
)

// levelUpWindow is how long the LEVEL UP badge stays on screen.
const levelUpWindow = 2 * time.Second

type dashModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	tasks    []catalog.Task
	selected int

	showLevelUp bool
	lastLog     string
}

type completedMsg struct {
	task catalog.Task
	res  *engine.CompleteResult
	err  error
}

type clearLevelUpMsg struct{}

func newDashModel(ctx context.Context, svc *engine.Service) dashModel {
	return dashModel{
		ctx:     ctx,
		svc:     svc,
		tasks:   catalog.Tasks(),
		lastLog: "Ready.",
	}
}

func (m dashModel) Init() tea.Cmd {
	return nil
}

func (m dashModel) completeCmd(task catalog.Task) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, task.ID, task.EXP)
		return completedMsg{task: task, res: res, err: err}
	}
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("%s +%.1f EXP", msg.task.Title, msg.res.ExpAwarded)
		if msg.res.CoinsAwarded > 0 {
			m.lastLog += fmt.Sprintf(", +%d coins", msg.res.CoinsAwarded)
		}
		if msg.res.LevelUp {
			m.showLevelUp = true
			return m, tea.Tick(levelUpWindow, func(time.Time) tea.Msg {
				return clearLevelUpMsg{}
			})
		}
		return m, nil
	case clearLevelUpMsg:
		m.showLevelUp = false
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			task := m.tasks[m.selected]
			m.lastLog = fmt.Sprintf("Completing %q…", task.Title)
			return m, m.completeCmd(task)
		}
	}
	return m, nil
}

func (m dashModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m dashModel) renderHeader() string {
	p := m.svc.Profile()
	bar := progressBar(m.svc.ProgressPercent(), 30)
	head := fmt.Sprintf("EcoBuddy | %s | Level %d (%s) | EXP %.1f %s",
		p.Name, p.Level, p.Stage, p.Exp, bar)
	if m.showLevelUp {
		head += "  " + ui.BadgeLevelUp
	}
	return head
}

func (m dashModel) renderSidebar() string {
	p := m.svc.Profile()
	lines := []string{
		petArt(engine.Stage(p.Stage)),
		"",
		fmt.Sprintf("Coins: %d", p.Coins),
		fmt.Sprintf("Tasks today: %d", p.TasksToday),
		fmt.Sprintf("Tasks total: %d", p.TotalTasks),
		fmt.Sprintf("To next level: %.1f EXP", m.svc.ExpToNextLevel()),
		"",
		"Impact",
		fmt.Sprintf("- Litter picked: %.0f", p.LitterPicked),
		fmt.Sprintf("- Water saved: %.0f gal", p.WaterSaved),
		fmt.Sprintf("- CO2 reduced: %.1f kg", p.CO2Reduced),
		fmt.Sprintf("- Items recycled: %.0f", p.ItemsRecycled),
		"",
		"Achievements",
	}
	for _, a := range m.svc.Achievements() {
		mark := "✗"
		if a.Unlocked {
			mark = "✓"
		}
		lines = append(lines, fmt.Sprintf("- %s %s %s (+%d%%)", mark, a.Icon, a.Name, a.ExpBoostPercent))
	}
	lines = append(lines,
		"",
		"Keys",
		"- ↑/↓ or j/k: move",
		"- c/space/enter: complete",
		"- q: quit",
	)
	return strings.Join(lines, "\n")
}

func (m dashModel) renderMain() string {
	out := []string{"Eco Tasks"}
	for i, t := range m.tasks {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		out = append(out, fmt.Sprintf("%s%d. %s (+%.0f EXP) — %s", cursor, t.ID, t.Title, t.EXP, t.Category))
	}
	if m.selected >= 0 && m.selected < len(m.tasks) {
		t := m.tasks[m.selected]
		out = append(out, "", t.Description, "")
		out = append(out, "Tips")
		for _, tip := range t.Tips {
			out = append(out, "- "+tip)
		}
	}
	return strings.Join(out, "\n")
}

func (m dashModel) renderFooter() string {
	return "\n" + m.lastLog
}

func petArt(stage engine.Stage) string {
	switch stage {
	case engine.StageAdult:
		return "  🌳\n (o.o)\n-=EcoBuddy=-"
	case engine.StageTeen:
		return "  🌿\n (o.o)"
	case engine.StageBaby:
		return "  🌱\n (o.o)"
	default:
		return "  🥚"
	}
}

func progressBar(percent float64, width int) string {
	if width <= 3 {
		width = 3
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
