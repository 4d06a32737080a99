package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) SignUp(ctx context.Context) error {
	return f.record("signup", nil)
}
func (f *fakeExec) SignIn(ctx context.Context) error {
	f.loggedIn = true
	return f.record("signin", nil)
}
func (f *fakeExec) SignOut(ctx context.Context) error {
	f.loggedIn = false
	return f.record("signout", nil)
}
func (f *fakeExec) List(ctx context.Context, args []string) error { return f.record("list", args) }
func (f *fakeExec) Show(ctx context.Context, args []string) error { return f.record("show", args) }
func (f *fakeExec) Add(ctx context.Context, args []string) error  { return f.record("add", args) }
func (f *fakeExec) Update(ctx context.Context, args []string) error {
	return f.record("update", args)
}
func (f *fakeExec) Decommission(ctx context.Context, args []string) error {
	return f.record("decommission", args)
}
func (f *fakeExec) Destroy(ctx context.Context, args []string) error {
	return f.record("destroy", args)
}

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommandsWithArgs(t *testing.T) {
	lines := capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"signin",
		"help",
		"list DEPLOYED",
		"l",
		"show g1",
		"add The Owl",
		"update g1",
		"decommission g1",
		"destroy g1",
		"",
		"foobar",
		"signout",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{"signin", "list", "list", "show", "add", "update", "decommission", "destroy", "signout"}, exec.calls)
	assert.Equal(t, []string{"DEPLOYED"}, exec.args[1])
	assert.Empty(t, exec.args[2])
	assert.Equal(t, []string{"The", "Owl"}, exec.args[4])

	assert.Contains(t, *lines, "Available commands: signup, signin, exit")
	assert.Contains(t, *lines, "Unknown command: foobar")
	assert.Contains(t, *lines, "Bye!")
	assert.Contains(t, *lines, "gk status> ")
}

func TestRunREPL_PrintsCommandErrors(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{loggedIn: true, err: errors.New("gadget not found (404)")}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("show g1\nquit\n")))

	assert.Equal(t, []string{"show"}, exec.calls)
	assert.Contains(t, *lines, "Error: gadget not found (404)")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("list")))

	assert.Equal(t, []string{"list"}, exec.calls)
}
