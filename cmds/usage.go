package cmds

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	fmt.Println("commands:")
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(p.commands)) {
		command := p.commands[name]
		if seen[command] {
			continue
		}
		seen[command] = true
		printCommand(name, command, 1)
	}
}

func printCommand(name string, command *Command, depth int) {
	if command == nil {
		return
	}
	line := strings.Repeat("  ", depth) + name
	if command.Description != "" {
		line += "\t" + command.Description
	}
	fmt.Println(line)
	for _, subname := range slices.Sorted(maps.Keys(command.Subs)) {
		printCommand(subname, command.Subs[subname], depth+1)
	}
}
