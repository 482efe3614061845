package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/itskrishnabajaj/LevelUp/internal/engine"
	"github.com/itskrishnabajaj/LevelUp/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	status *engine.Status
	quests []engine.QuestView

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	status *engine.Status
	quests []engine.QuestView
	err    error
}

type completedMsg struct {
	id  string
	res *engine.CompleteResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		st, err := m.svc.GetStatus(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		quests, err := m.svc.ListQuests(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{status: st, quests: quests}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteQuest(m.ctx, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.status = msg.status
		m.quests = msg.quests
		if m.selected >= len(m.quests) {
			m.selected = len(m.quests) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			if msg.err == engine.ErrAlreadySatisfied {
				m.lastLog = "Already done for this period."
			} else {
				m.lastLog = "Complete failed: " + msg.err.Error()
			}
			return m, nil
		}
		line := fmt.Sprintf("%s +%d XP (streak %d)", msg.res.Quest.Name, msg.res.XP.Total, msg.res.Streak)
		if msg.res.LevelsGained > 0 {
			line += " " + ui.BadgeLevelUp
		}
		if msg.res.PerfectDay {
			line += " " + ui.BadgePerfectDay
		}
		for _, a := range msg.res.Unlocked {
			line += fmt.Sprintf(" %s %s", ui.IconTrophy, a.Name)
		}
		m.lastLog = line
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.quests)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= len(m.quests) {
				return m, nil
			}
			q := m.quests[m.selected]
			if q.Satisfied {
				m.lastLog = "Already done for this period."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %s…", q.Name)
			return m, m.completeCmd(q.ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := "\n" + m.lastLog

	// Simple 2-column layout.
	leftW := 28
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
	rows := len(linesLeft)
	if len(linesRight) > rows {
		rows = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < rows; i++ {
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

func (m boardModel) renderHeader() string {
	if m.status == nil {
		return "LevelUp — loading…"
	}
	u := m.status.User
	bar := ui.ProgressBar(u.XP, m.status.XPThreshold, 30)
	header := fmt.Sprintf("LevelUp | %s | Level %d | XP %d/%d %s | %s %d",
		u.Username, u.Level, u.XP, m.status.XPThreshold, bar, ui.IconStreak, m.status.CurrentStreak)
	if m.status.Class != nil {
		header += fmt.Sprintf(" | %s %s", m.status.Class.Icon, m.status.Class.Name)
	}
	if u.LowEnergyMode {
		header += " | " + ui.IconShield + " low energy"
	}
	return header
}

func (m boardModel) renderSidebar() string {
	if m.status == nil {
		return "Stats\n\nLoading…"
	}
	u := m.status.User
	cap := m.status.StatCap
	lines := []string{"Stats"}
	lines = append(lines, renderStat("STR", u.StatStrength, cap))
	lines = append(lines, renderStat("DIS", u.StatDiscipline, cap))
	lines = append(lines, renderStat("FOC", u.StatFocus, cap))
	lines = append(lines, renderStat("VIT", u.StatVitality, cap))
	lines = append(lines, renderStat("WIS", u.StatWisdom, cap))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("%s %d/%d achievements", ui.IconTrophy, m.status.UnlockedCount, m.status.AchievementCount))
	lines = append(lines, fmt.Sprintf("Today: %d quests", m.status.TodayCount))
	lines = append(lines, fmt.Sprintf("Best streak: %d", m.status.LongestStreak))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Today's Quests")
	if len(m.quests) == 0 {
		out = append(out, "(no quests — add one with `lvl add`)")
		return strings.Join(out, "\n")
	}
	for i, q := range m.quests {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if q.Satisfied {
			mark = "[x]"
		} else if !q.Scheduled {
			mark = "[-]"
		}
		line := fmt.Sprintf("%s%s %s %s (+%d XP, %s)", cursor, mark, q.Icon, q.Name, q.ProjectedXP, q.Frequency)
		if q.Streak > 1 {
			line += fmt.Sprintf(" %s%d", ui.IconStreak, q.Streak)
		}
		if q.Essential {
			line += " *"
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func renderStat(label string, value, cap int) string {
	return fmt.Sprintf("- %s %3d %s", label, value, ui.ProgressBar(value, cap, 14))
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
