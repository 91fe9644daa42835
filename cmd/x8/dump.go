package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/x8/cpu"
	"github.com/ezrec/x8/isa"
)

// defineList collects -D NAME=VALUE flags.
type defineList map[string]string

func (dl defineList) String() string {
	var text []string
	for name, value := range dl {
		text = append(text, name+"="+value)
	}
	return strings.Join(text, ",")
}

func (dl defineList) Set(arg string) error {
	name, value, ok := strings.Cut(arg, "=")
	if !ok || len(name) == 0 {
		return fmt.Errorf("%q: expected NAME=VALUE", arg)
	}
	dl[name] = value
	return nil
}

// renderState renders the machine state as a table.
func renderState(c *cpu.Cpu) string {
	regTable := table.NewWriter()
	regTable.SetTitle(fmt.Sprintf("%v at %d after %d ticks", c.State, c.Ip, c.Ticks))
	regTable.AppendHeader(table.Row{"Register", "Hex", "Decimal"})

	for n, val := range c.Snapshot() {
		regTable.AppendRow(table.Row{
			isa.Register(n).String(),
			fmt.Sprintf("%08X", uint32(val)),
			val,
		})
	}

	if c.Fault != nil {
		regTable.AppendSeparator()
		regTable.AppendRow(table.Row{"Fault", c.Fault.Error(), ""})
	}

	return regTable.Render()
}
