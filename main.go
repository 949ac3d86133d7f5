// Command pmplan ranks backlog stories by business impact and keeps sprint
// membership and story status in step.
package main

import "pmplan/internal/cli"

func main() {
	cli.Execute()
}
