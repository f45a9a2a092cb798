package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"dayora/internal/config"
	"dayora/internal/logging"
	"dayora/internal/planner"
	"dayora/internal/storage"
	"dayora/internal/store"
	"dayora/internal/ui"
)

func main() {
	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogPath, cfg.LogLevel)

	db, err := storage.Open(cfg.StoragePath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	st := store.New(db.Load(), log)

	sched := storage.NewScheduler(db, st.Snapshot, cfg.SaveDelay)
	st.OnChange(sched.Arm)

	draft := store.NewDraft(st, cfg.DraftCommitDelay)
	draft.SetActive(st.ActiveNoteID())

	// The AI task generator is injected here when one is configured;
	// the planner works without it.
	plans := planner.NewService(st, nil, log)

	if len(os.Args) > 1 && os.Args[1] == "plan" {
		runPlan(plans, os.Args[2:])
		sched.Flush()
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "dayora needs a terminal")
		os.Exit(1)
	}

	m := ui.NewModel(st, draft)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Lossless teardown: pending draft edits commit, then the pending
	// save fires with the final state.
	draft.Flush()
	sched.Flush()
}

// runPlan is the minimal day-planner surface: list today's tasks, add one,
// or toggle one by id.
func runPlan(plans *planner.Service, args []string) {
	date := planner.Today()

	if len(args) == 0 {
		plan, ok := plans.PlanFor(date)
		if !ok || len(plan.Tasks) == 0 {
			fmt.Printf("No tasks planned for %s\n", date)
			return
		}
		if plan.Summary != "" {
			fmt.Println(plan.Summary)
		}
		for _, t := range plan.Tasks {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Printf("[%s] %s  %s (%s)\n", mark, t.ID, t.Text, t.Priority)
		}
		return
	}

	switch args[0] {
	case "add":
		text := strings.Join(args[1:], " ")
		plan := plans.AddTasks(date, []store.DailyTask{{Text: text}})
		fmt.Printf("%d task(s) planned for %s\n", len(plan.Tasks), date)
	case "toggle":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "usage: dayora plan toggle <task-id>")
			os.Exit(2)
		}
		plans.ToggleTask(date, args[1])
	default:
		fmt.Fprintln(os.Stderr, "usage: dayora plan [add <text> | toggle <task-id>]")
		os.Exit(2)
	}
}
