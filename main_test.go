package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/inline-left-nav/internal/app"
	"github.com/atomicstack/inline-left-nav/internal/config"
	"github.com/atomicstack/inline-left-nav/internal/logging"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestDescribeMarkupReportsSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nav.html")
	if err := os.WriteFile(path, []byte("<nav></nav>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	details := describeMarkup(path, "opts.yaml")
	if details.Size != int64(len("<nav></nav>")) || details.Error != "" || details.OptionsPath != "opts.yaml" {
		t.Fatalf("unexpected details %+v", details)
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			File:       "nav.html",
			Root:       "docs",
			Width:      80,
			Height:     24,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Dump: true,
		Flags: map[string]string{
			"file":   "nav.html",
			"root":   "docs",
			"width":  "80",
			"height": "24",
			"footer": "true",
		},
		Args: []string{"-file", "nav.html", "-dump"},
	}
	logPath := filepath.Join(t.TempDir(), "logs", "trace.log")
	logging.Configure(logPath)
	t.Cleanup(func() { logging.Configure("") })

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["file"] != "nav.html" {
		t.Fatalf("expected file flag %q, got %v", "nav.html", flagsValue["file"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["logPath"] != logPath {
		t.Fatalf("expected resolved log path %q, got %v", logPath, payload["logPath"])
	}
	if payload["mode"] != "dump" {
		t.Fatalf("expected dump mode, got %v", payload["mode"])
	}

	markup, ok := payload["markup"].(markupDetails)
	if !ok || markup.Path != "nav.html" {
		t.Fatalf("expected markup details in payload, got %v", payload["markup"])
	}
	if markup.Error == "" {
		t.Fatalf("expected stat error for a missing markup file")
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App.File != cfg.App.File || cfgValue.App.Root != cfg.App.Root {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
