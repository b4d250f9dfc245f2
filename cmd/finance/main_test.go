package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func script(lines ...string) *bytes.Buffer {
	return bytes.NewBufferString(strings.Join(lines, "\n") + "\n")
}

func TestRun_FullSession(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "finance.db")
	exportPath := filepath.Join(tmpDir, "income.csv")

	stdin := script(
		"2", "alice", "secret", // sign up
		"1", "alice", "wrong", // bad login
		"1", "alice", "secret", // login
		"1", "100", "2024-01-15", "Salary",
		"1", "50", "2024-01-20", "Bonus",
		"1", "25", "2024-03-01", "Gift",
		"2", "-5", "2024-01-01", "Food", "",
		"2", "abc",
		"2", "40", "2023-02-29", "Food", "lunch",
		"2", "40", "2023-06-01", "Food", "lunch",
		"5", "2024",
		"6",
		"7", exportPath,
		"9",
		"0",
	)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	err := run([]string{"-db", dbPath}, stdin, stdout, stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "Account created")
	assert.Contains(t, out, "Invalid username or password.")
	assert.Contains(t, out, "Welcome, alice.")
	assert.Equal(t, 3, strings.Count(out, "Income added."))
	assert.Contains(t, out, "Amount must be positive.")
	assert.Contains(t, out, "Please enter a valid number for amount.")
	assert.Contains(t, out, "Invalid date. Use YYYY-MM-DD.")
	assert.Equal(t, 1, strings.Count(out, "Expense added."))

	assert.Contains(t, out, "Monthly Income Report (2024):\n  01: 150.00\n  03: 25.00\n")
	assert.Contains(t, out, "Monthly Expense Report (2024):\n  no records\n")
	assert.Contains(t, out, "Yearly Income Report:\n  2024: 175.00\n")
	assert.Contains(t, out, "Yearly Expense Report:\n  2023: 40.00\n")
	assert.Contains(t, out, "Net:      135.00")
	assert.Contains(t, out, "Goodbye.")

	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Equal(t,
		"ID,Amount,Date,Source\n1,100,2024-01-15,Salary\n2,50,2024-01-20,Bonus\n3,25,2024-03-01,Gift\n",
		string(data))
}

func TestRun_RejectsInfiniteAmount(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "finance.db")
	exportPath := filepath.Join(tmpDir, "income.csv")
	stdin := script(
		"2", "dave", "pw",
		"1", "dave", "pw",
		"1", "inf", "2024-01-01", "x",
		"2", "+Inf", "2024-01-01", "Food", "",
		"7", exportPath,
		"0",
	)
	stdout := new(bytes.Buffer)

	require.NoError(t, run([]string{"-db", dbPath}, stdin, stdout, new(bytes.Buffer)))
	out := stdout.String()
	assert.Equal(t, 2, strings.Count(out, "Amount must be positive."))
	assert.NotContains(t, out, "Income added.")
	assert.NotContains(t, out, "Expense added.")

	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Equal(t, "ID,Amount,Date,Source\n", string(data))
}

func TestRun_LongPassword(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "finance.db")
	password := strings.Repeat("p", 80)
	stdin := script(
		"2", "erin", password,
		"1", "erin", password,
		"0",
	)
	stdout := new(bytes.Buffer)

	require.NoError(t, run([]string{"-db", dbPath}, stdin, stdout, new(bytes.Buffer)))
	assert.Contains(t, stdout.String(), "Account created")
	assert.Contains(t, stdout.String(), "Welcome, erin.")
}

func TestRun_DuplicateSignup(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "finance.db")
	stdin := script(
		"2", "bob", "one",
		"2", "bob", "two",
		"3",
	)
	stdout := new(bytes.Buffer)

	require.NoError(t, run([]string{"-db", dbPath}, stdin, stdout, new(bytes.Buffer)))
	assert.Equal(t, 1, strings.Count(stdout.String(), "Account created"))
	assert.Contains(t, stdout.String(), "Username already exists. Try another.")
}

func TestRun_ExportFailureKeepsSession(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "finance.db")
	badPath := filepath.Join(t.TempDir(), "missing", "out.csv")
	stdin := script(
		"2", "carol", "pw",
		"1", "carol", "pw",
		"8", badPath,
		"4",
		"0",
	)
	stdout := new(bytes.Buffer)

	require.NoError(t, run([]string{"-db", dbPath}, stdin, stdout, new(bytes.Buffer)))
	assert.Contains(t, stdout.String(), "Export failed:")
	assert.Contains(t, stdout.String(), "No expense records found.")
}

func TestRun_EndOfInput(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "finance.db")
	stdout := new(bytes.Buffer)

	err := run([]string{"-db", dbPath}, new(bytes.Buffer), stdout, new(bytes.Buffer))
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Goodbye.")
}

func TestRun_InvalidFlag(t *testing.T) {
	err := run([]string{"-nope"}, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined")
}

func TestRun_InvalidDBPath(t *testing.T) {
	err := run([]string{"-db", t.TempDir()}, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open database")
}
