package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/poset/order"
)

// WriteDOT writes the Hasse diagram of rel as a Graphviz digraph named
// title. Lower elements are drawn at the bottom (rankdir=BT). Output is
// deterministic: nodes and edges appear in name order.
func WriteDOT(w io.Writer, rel order.Relation, title string) error {
	covers, err := order.Covers(rel)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", dotQuote(title))
	fmt.Fprintln(bw, "\trankdir=BT;")
	for _, name := range rel.Elements() {
		fmt.Fprintf(bw, "\t%s;\n", dotQuote(name))
	}
	for _, c := range covers {
		fmt.Fprintf(bw, "\t%s -> %s;\n", dotQuote(c.Lower), dotQuote(c.Upper))
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

// dotQuote renders s as a DOT double-quoted string.
func dotQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}
