package main // import "coulomb"

import (
	"github.com/edp1096/toy-coulomb/internal/cli"
	"github.com/edp1096/toy-coulomb/pkg/viewer"
)

func main() {
	cli.SetPlotter(viewer.Graph)
	cli.Execute()
}
