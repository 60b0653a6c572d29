package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerhands/poker"
)

func newTestApp(t *testing.T, cli CLI) (*app, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	if cli.Config == "" {
		cli.Config = filepath.Join(t.TempDir(), "missing.hcl")
	}
	cli.NoColor = true

	var stdout, stderr bytes.Buffer
	a, err := newApp(&cli, &stdout, &stderr)
	require.NoError(t, err)
	return a, &stdout, &stderr
}

func TestCompareCmd(t *testing.T) {
	a, stdout, _ := newTestApp(t, CLI{})

	cmd := CompareCmd{Hand: "6S AD 7H 4S AS", Opponent: "AH AC 5H 6H 7S"}
	require.NoError(t, cmd.Run(a))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Loss", lines[0])
	assert.Contains(t, lines[1], "higher kicker (5 vs 4)")
}

func TestCompareCmdWithoutExplanation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokerhands.hcl")
	require.NoError(t, os.WriteFile(path, []byte("output {\n  explain = false\n}\n"), 0o600))

	a, stdout, _ := newTestApp(t, CLI{Config: path})
	cmd := CompareCmd{Hand: "2S AH 2H AS AC", Opponent: "2H 3H 5H 6H 7H"}
	require.NoError(t, cmd.Run(a))

	assert.Equal(t, "Win\n", stdout.String())
}

func TestCompareCmdInvalidHand(t *testing.T) {
	a, _, _ := newTestApp(t, CLI{})

	err := (&CompareCmd{Hand: "2S AH 2H AS", Opponent: "2H 3H 5H 6H 7H"}).Run(a)
	assert.ErrorIs(t, err, poker.ErrInvalidHandSize)

	err = (&CompareCmd{Hand: "2S AH 2H AS AC", Opponent: "2H 3H 5H 6H 7Z"}).Run(a)
	assert.ErrorIs(t, err, poker.ErrInvalidSuit)
}

func TestClassifyCmd(t *testing.T) {
	a, stdout, _ := newTestApp(t, CLI{})

	cmd := ClassifyCmd{Hands: []string{"AS AH 2H AD AC", "2S 3H 4H 5S 6C"}}
	require.NoError(t, cmd.Run(a))

	out := stdout.String()
	assert.Contains(t, out, "Four of a Kind")
	assert.Contains(t, out, "A 2")
	assert.Contains(t, out, "Straight")

	err := (&ClassifyCmd{Hands: []string{"XX"}}).Run(a)
	assert.ErrorIs(t, err, poker.ErrInvalidHandSize)
}

func TestCheckCmd(t *testing.T) {
	a, stdout, _ := newTestApp(t, CLI{})

	cmd := CheckCmd{File: filepath.Join("..", "..", "internal", "harness", "testdata", "cases.txt")}
	require.NoError(t, cmd.Run(a))
	assert.Contains(t, stdout.String(), "19/19 passed")
}

func TestCheckCmdFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.txt")
	src := "2H 3H 4H 5H 6H | KS AS TS QS JS | Win | wrong expectation\n" +
		"2S 3H 4H 5S 6C | 3D 4C 5H 6H 2S | Tie\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	a, stdout, _ := newTestApp(t, CLI{})
	err := (&CheckCmd{File: path}).Run(a)
	require.ErrorIs(t, err, errCasesFailed)

	out := stdout.String()
	assert.Contains(t, out, "line 1: wrong expectation: expected Win, got Loss")
	assert.Contains(t, out, "1/2 passed")
}

func TestNewAppRejectsBadLogLevel(t *testing.T) {
	cli := CLI{Config: filepath.Join(t.TempDir(), "missing.hcl"), LogLevel: "chatty"}
	var stdout, stderr bytes.Buffer
	_, err := newApp(&cli, &stdout, &stderr)
	assert.Error(t, err)
}
