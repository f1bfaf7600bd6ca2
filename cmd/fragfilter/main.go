// cmd/fragfilter/main.go
package main

import (
	"fragfilter/internal/app"
	"fragfilter/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
