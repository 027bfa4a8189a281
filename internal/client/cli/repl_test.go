package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.record("register", nil)
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.record("login", nil)
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout", nil)
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Movies(ctx context.Context) error {
	f.record("movies", nil)
	return nil
}
func (f *fakeExec) Show(ctx context.Context, args []string) error {
	f.record("show", args)
	return nil
}
func (f *fakeExec) Genre(ctx context.Context, args []string) error {
	f.record("genre", args)
	return nil
}
func (f *fakeExec) Director(ctx context.Context, args []string) error {
	f.record("director", args)
	return nil
}
func (f *fakeExec) ToggleFavorite(ctx context.Context, args []string) error {
	f.record("fav", args)
	return nil
}
func (f *fakeExec) Favorites(ctx context.Context) error {
	f.record("favorites", nil)
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.record("profile", nil)
	return nil
}
func (f *fakeExec) UpdateProfile(ctx context.Context) error {
	f.record("update", nil)
	return nil
}
func (f *fakeExec) DeleteAccount(ctx context.Context) error {
	f.record("deleteaccount", nil)
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"movies",
		"show 2",
		"genre 2",
		"fav 2",
		"favorites",
		"profile",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "movies", "show", "genre", "fav", "favorites", "profile"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ArgsPassedThrough(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("show 3\ndirector 1\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 2 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if exec.args[0][0] != "3" || exec.args[1][0] != "1" {
		t.Fatalf("args not passed through: %v", exec.args)
	}
}

func TestRunREPL_EOFStopsLoop(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
