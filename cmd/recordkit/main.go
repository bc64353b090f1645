package main

import (
	"github.com/deppfellow/recordkit/internal/command"
)

func main() {
	command.Main(
		"recordkit", "create, read and purge users, companies and content records",
		command.Commands()...,
	)
}
