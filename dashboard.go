// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// levelChartData turns per-depth node counts into bar chart data
func levelChartData(counts []int) ([]float64, []string) {
	data := make([]float64, len(counts))
	labels := make([]string, len(counts))
	for depth, count := range counts {
		data[depth] = float64(count)
		labels[depth] = strconv.Itoa(depth)
	}
	return data, labels
}

// getStatsText describes the index for the stats panel
func getStatsText(idx *Index, stats LoadStats, t time.Time) string {
	text := fmt.Sprintf(`[Keys](fg:green)        %d
[Height](fg:green)      %d
[Loaded](fg:green)      %d
[Duplicates](fg:green)  %d
[Load time](fg:green)   %s`,
		idx.Size(), idx.Height(), stats.Inserted, stats.Duplicates, stats.Took.Round(time.Microsecond))

	if first := idx.Tree().First(); first != nil {
		last := idx.Tree().Last()
		text += fmt.Sprintf("\n[Lowest key](fg:green)  %d\n[Highest key](fg:green) %d", first.Key(), last.Key())
	}
	return text + "\n\n" + FormatDateTime(t)
}

func runDashboard(idx *Index, stats LoadStats) {
	done := make(chan bool)

	if err := ui.Init(); err != nil {
		log.Fatalf("failed to initialize termui: %v", err)
	}
	DisableMouseInput()
	defer ui.Close()

	scheme := GetColorScheme()

	statsPara := widgets.NewParagraph()
	statsPara.Title = " Index "
	statsPara.Text = getStatsText(idx, stats, time.Now())
	statsPara.BorderStyle = StyleBorder()
	statsPara.TextStyle = StyleText()

	levels := widgets.NewBarChart()
	levels.Title = " Nodes per depth "
	levels.Data, levels.Labels = levelChartData(idx.Tree().LevelCounts())
	levels.BarWidth = 5
	levels.BarGap = 1
	levels.BarColors = []ui.Color{scheme.Primary}
	levels.LabelStyles = []ui.Style{StyleTextMuted()}
	levels.NumStyles = []ui.Style{StylePrimary()}
	levels.BorderStyle = StyleBorder()

	keyboardPara := widgets.NewParagraph()
	keyboardPara.Title = " Keyboard Shortcuts "
	keyboardPara.Text = `[q](fg:green) or [<ctrl> + c](fg:green) -> Quit`
	keyboardPara.BorderStyle = StyleBorder()

	termWidth, termHeight := ui.TerminalDimensions()
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewRow(0.85,
			ui.NewCol(0.3, statsPara),
			ui.NewCol(0.7, levels),
		),
		ui.NewRow(0.15, keyboardPara),
	)
	ui.Render(grid)

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()
	go func() {
		for {
			select {
			case <-done:
				return
			case t := <-ticker.C:
				statsPara.Text = getStatsText(idx, stats, t)
				ui.Render(statsPara)
			}
		}
	}()

	uiEvents := ui.PollEvents()
	for {
		e := <-uiEvents
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			done <- true
			return
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			grid.SetRect(0, 0, payload.Width, payload.Height)
			ui.Clear()
			ui.Render(grid)
		}
	}
}
