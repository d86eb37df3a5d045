package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/gatecleanup/pkg/blif"
	"github.com/OpenTraceLab/gatecleanup/pkg/netlist"
	"github.com/OpenTraceLab/gatecleanup/pkg/resetelision"
)

// loadNetlist opens and parses a BLIF-like file into a netlist.Netlist.
func loadNetlist(path string) (*netlist.Netlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %s", resetelision.ErrNetlistIO, path, err)
	}
	defer f.Close()

	ast, err := blif.Parse(f)
	if err != nil {
		return nil, err
	}
	return blif.Build(ast), nil
}
