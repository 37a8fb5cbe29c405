package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-xp/internal/config"
	"github.com/vovakirdan/flappy-xp/internal/logging"
	"github.com/vovakirdan/flappy-xp/internal/registry"
)

func TestErrorBox(t *testing.T) {
	out := errorBox("Flappy Bird XP | Error", "Failed to load assets/bird.bmp")
	if !strings.Contains(out, "Flappy Bird XP | Error") {
		t.Error("box should carry the title")
	}
	if !strings.Contains(out, "Failed to load assets/bird.bmp") {
		t.Error("box should carry the message")
	}
	if len(strings.Split(out, "\n")) < 5 {
		t.Errorf("expected a bordered box, got:\n%s", out)
	}
}

func TestPrintFrontends(t *testing.T) {
	var buf bytes.Buffer
	printFrontends(&buf, []registry.FrontendInfo{
		{ID: "tui", Title: "Terminal"},
		{ID: "window", Title: "Desktop"},
	})
	out := buf.String()
	for _, want := range []string{"Available frontends:", "ID      Title", "tui     Terminal", "window  Desktop"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	printFrontends(&buf, nil)
	if !strings.Contains(buf.String(), "No frontends") {
		t.Errorf("empty list output = %q", buf.String())
	}
}

func TestAllFrontendsRegistered(t *testing.T) {
	for _, id := range []string{"term", "tui", "window"} {
		if !registry.Exists(id) {
			t.Errorf("frontend %q should be registered", id)
		}
	}
}

func TestSimFreeFallEndsRun(t *testing.T) {
	report := runSim(config.DefaultTuning(), simOptions{Seed: 1, Ticks: 100}, logging.Discard())

	if report.Frames != 11 {
		t.Errorf("frames = %d, expected the run to end on tick 11", report.Frames)
	}
	if report.Runs != 1 || report.BestScore != 0 {
		t.Errorf("runs = %d best = %d, expected 1 and 0", report.Runs, report.BestScore)
	}
	if !strings.Contains(report.Final, "phase=GameOver") {
		t.Errorf("final = %q, expected game over", report.Final)
	}
}

func TestSimIsDeterministic(t *testing.T) {
	opts := simOptions{Seed: 99, Ticks: 3000, FlapEvery: 19, AutoRestart: true}
	a := runSim(config.DefaultTuning(), opts, logging.Discard())
	b := runSim(config.DefaultTuning(), opts, logging.Discard())
	if a != b {
		t.Errorf("same seed gave different reports:\n%+v\n%+v", a, b)
	}
	if a.Frames != 3000 {
		t.Errorf("auto restart should use every tick, got %d frames", a.Frames)
	}
}

func TestSimReportPrint(t *testing.T) {
	var buf bytes.Buffer
	simReport{Seed: 5, Frames: 10, Runs: 2, BestScore: 3, Final: "phase=Running"}.Print(&buf)
	want := "seed:   5\nframes: 10\nruns:   2\nbest:   3\nfinal:  phase=Running\n"
	if buf.String() != want {
		t.Errorf("Print() =\n%s\nexpected\n%s", buf.String(), want)
	}
}
