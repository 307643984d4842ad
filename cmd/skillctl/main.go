// Command skillctl is a command line client for the skill platform APIs.
package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	_ "github.com/skillwave/sdk-go/cmd/skillctl/internal/cli/address"
	_ "github.com/skillwave/sdk-go/cmd/skillctl/internal/cli/event"
	_ "github.com/skillwave/sdk-go/cmd/skillctl/internal/cli/lists"
	_ "github.com/skillwave/sdk-go/cmd/skillctl/internal/cli/message"
	_ "github.com/skillwave/sdk-go/cmd/skillctl/internal/cli/products"
	"github.com/skillwave/sdk-go/cmd/skillctl/internal/cli/root"
	_ "github.com/skillwave/sdk-go/cmd/skillctl/internal/cli/token"
)

func main() {
	kingpin.MustParse(root.Cmd.Parse(os.Args[1:]))
}
