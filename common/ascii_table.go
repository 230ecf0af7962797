package common

import (
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

func schemaToAsciiTable(colDefs map[string]ColDef) string {
	names := make([]string, 0, len(colDefs))
	for name := range colDefs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return colDefs[names[i]].OrderIndex < colDefs[names[j]].OrderIndex
	})

	sb := &strings.Builder{}
	table := tablewriter.NewWriter(sb)
	table.SetHeader([]string{"#", "Column", "Go type", "Nullable"})
	for _, name := range names {
		def := colDefs[name]
		table.Append([]string{
			strconv.Itoa(def.OrderIndex),
			name,
			def.GoType.String(),
			strconv.FormatBool(def.Nullable),
		})
	}
	table.Render()
	return sb.String()
}
