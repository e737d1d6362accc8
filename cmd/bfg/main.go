package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/reusee/bfg/bfvm"
	"github.com/reusee/bfg/cmds"
	"github.com/reusee/bfg/configs"
	"github.com/reusee/bfg/debugs"
	"github.com/reusee/bfg/logs"
	"github.com/reusee/bfg/modes"
	"github.com/reusee/bfg/sessions"
	"github.com/reusee/bfg/vars"
	"github.com/reusee/dscope"
)

const (
	version = "0.1.0"
	license = "MIT"
)

var (
	files          = cmds.Collect[string]("-f")
	strictFlag     = cmds.Switch("-s")
	persistentFlag = cmds.Switch("-p")
	debugFlag      = cmds.Switch("-d")
)

func init() {
	cmds.Define("-v", cmds.Func(func() {
		fmt.Println(version)
		os.Exit(0)
	}).Desc("print the version number and exit").Alias("-version"))
	cmds.Define("-w", cmds.Func(func() {
		fmt.Println("License " + license)
		os.Exit(0)
	}).Desc("print the license and exit"))
	cmds.Define("-theory", cmds.Func(func() {
		fmt.Print(bfvm.Theory)
		os.Exit(0)
	}).Desc("print the machine model notes and exit"))
}

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(sessions.Module),
		new(logs.Module),
		new(configs.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	scope.Call(run)
}

func run(
	newSession sessions.New,
	settings configs.Settings,
	logger logs.Logger,
) {
	ctx := context.Background()

	strict := *strictFlag || settings.Strict
	persistent := *persistentFlag || settings.Persistent
	debug := *debugFlag || settings.Debug || vars.StrToBool(os.Getenv("BFG_DEBUG"))

	if len(*files) == 0 {
		runShell(ctx, newSession, settings, strict)
		return
	}

	sources := make([]string, 0, len(*files))
	for _, path := range *files {
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		sources = append(sources, string(content))
	}

	logger.DebugContext(ctx, "batch run",
		"files", *files,
		"strict", strict,
		"persistent", persistent,
	)

	session := newSession(sessions.Options{
		Strict:     strict,
		Persistent: persistent,
		Debug:      debug,
		Input: stdinSource{
			reader: bufio.NewReader(os.Stdin),
		},
	})
	if err := session.RunScripts(ctx, sources); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	session.Flush()
}

// stdinSource reads raw input lines from standard input, the way the
// batch runner feeds the input instruction.
type stdinSource struct {
	reader *bufio.Reader
}

func (s stdinSource) ReadLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := s.reader.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}
