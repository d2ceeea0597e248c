package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strings"
	"time"

	"life-matrix/internal/app"
	"life-matrix/internal/sims/life"
	"life-matrix/internal/sweep"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cellStyle   = lipgloss.NewStyle().Width(12).Align(lipgloss.Right)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

func main() {
	runs := flag.Int("runs", 32, "number of seeds to simulate")
	first := flag.Int64("seed", 1, "first seed")
	maxGen := flag.Int("max-gen", 5000, "generation cap per seed")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel simulations")
	top := flag.Int("top", 10, "longest runs to list")
	verbose := flag.Bool("v", false, "log each finished seed to stderr")
	var overrides app.KVList
	flag.Var(&overrides, "set", "sim parameter override in key=value form (repeatable)")
	flag.Parse()

	base := life.FromMap(overrides.Map())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d seeds on a %dx%d world (%d workers, cap %d generations)\n",
		*runs, base.Width, base.Height, *workers, *maxGen)

	start := time.Now()
	results, err := sweep.Run(ctx, sweep.Options{
		Base:           base,
		Seeds:          sweep.Seeds(*first, *runs),
		MaxGenerations: *maxGen,
		Workers:        *workers,
		Logger:         app.NewLogger(os.Stderr, *verbose),
	})
	if err != nil {
		log.Fatal(err)
	}
	rep := sweep.Summarize(results)

	fmt.Println(boxStyle.Render(renderReport(rep, time.Since(start))))
	fmt.Println(renderTop(results, *top))
	if len(rep.Longest.Populations) > 1 {
		chart := asciigraph.Plot(toFloats(rep.Longest.Populations),
			asciigraph.Height(10), asciigraph.Width(70),
			asciigraph.Caption(fmt.Sprintf("population of seed %d", rep.Longest.Seed)))
		fmt.Println(graphStyle.Render(chart))
	}
}

func renderReport(rep sweep.Report, elapsed time.Duration) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("SWEEP") + "\n")
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Runs", fmt.Sprint(rep.Runs))
	row("Elapsed", elapsed.Round(time.Millisecond).String())
	row("Generations", fmt.Sprintf("min %d  median %d  max %d  mean %.1f", rep.MinGen, rep.MedianGen, rep.MaxGen, rep.MeanGen))
	for _, reason := range []life.Reason{life.ReasonExtinct, life.ReasonLowPopulation, life.ReasonRepeating} {
		row(string(reason), fmt.Sprint(rep.Reasons[reason]))
	}
	row("hit cap", fmt.Sprint(rep.Unfinished))
	return strings.TrimRight(b.String(), "\n")
}

func renderTop(results []sweep.Result, n int) string {
	sorted := make([]sweep.Result, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Generations > sorted[j].Generations })
	n = max(0, min(n, len(sorted)))
	var b strings.Builder
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		cellStyle.Render("seed"), cellStyle.Render("generations"), cellStyle.Render("peak"), cellStyle.Render("final"), cellStyle.Render("reason"))
	b.WriteString(headerStyle.Render(header) + "\n")
	for _, r := range sorted[:n] {
		reason := "cap"
		if r.Finished {
			reason = string(r.Summary.Reason)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			cellStyle.Render(fmt.Sprint(r.Seed)),
			cellStyle.Render(fmt.Sprint(r.Generations)),
			cellStyle.Render(fmt.Sprint(r.PeakPopulation)),
			cellStyle.Render(fmt.Sprint(r.Populations[len(r.Populations)-1])),
			cellStyle.Render(reason)) + "\n")
	}
	return b.String()
}

func toFloats(vals []int) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = float64(v)
	}
	return out
}
