package main

import (
	"github.com/gotw-cli/gotw/cmd"
	"github.com/gotw-cli/gotw/config"
	"github.com/gotw-cli/gotw/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}
