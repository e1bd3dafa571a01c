package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const barChart = `
type: bar
title: Sales
values:
  - {series: S, row: R, column: C, value: 5}
`

func writeChart(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunRendersPNG(t *testing.T) {
	in := writeChart(t, barChart)
	out := filepath.Join(t.TempDir(), "out.png")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-output", out, "-width", "200", "-height", "200", "-query", "100,100", in}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() error = %v\n%s", err, stderr.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
	got := stdout.String()
	for _, want := range []string{"200x200", "CategoryKey[S, R, C]", "S, C = 5.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("stdout missing %q:\n%s", want, got)
		}
	}
}

func TestRunQueryMiss(t *testing.T) {
	in := writeChart(t, barChart)
	var stdout bytes.Buffer
	out := filepath.Join(t.TempDir(), "out.png")
	if err := run([]string{"-output", out, "-query", "1, 470", in}, &stdout, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "nothing") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunVerboseLogs(t *testing.T) {
	in := writeChart(t, barChart)
	var stderr bytes.Buffer
	out := filepath.Join(t.TempDir(), "out.png")
	if err := run([]string{"-v", "-output", out, in}, &bytes.Buffer{}, &stderr); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr.String(), "render pass") {
		t.Errorf("stderr = %q, want render pass log", stderr.String())
	}
}

func TestRunErrors(t *testing.T) {
	good := writeChart(t, barChart)
	bad := writeChart(t, "type: radar\n")
	tests := []struct {
		name string
		args []string
	}{
		{"no file", nil},
		{"two files", []string{good, good}},
		{"missing file", []string{filepath.Join(t.TempDir(), "none.yaml")}},
		{"invalid chart", []string{bad}},
		{"bad query", []string{"-output", filepath.Join(t.TempDir(), "o.png"), "-query", "12", good}},
		{"bad query number", []string{"-output", filepath.Join(t.TempDir(), "o.png"), "-query", "a,1", good}},
		{"unknown flag", []string{"-nope", good}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.args, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
				t.Error("run() error = nil")
			}
		})
	}
}

func TestParsePoint(t *testing.T) {
	x, y, err := parsePoint(" 12.5 , 7 ")
	if err != nil || x != 12.5 || y != 7 {
		t.Errorf("parsePoint() = %v, %v, %v", x, y, err)
	}
}
