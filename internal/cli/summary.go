package cli

import (
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/mgpai22/srtgap/internal/pipeline"
)

func renderSummary(batch pipeline.BatchReport, colorize bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(table.Row{"File", "Encoding", "Entries", "Dropped", "Changes", "Status"})

	for _, f := range batch.Files {
		tw.AppendRow(table.Row{
			f.Path,
			string(f.Encoding),
			strconv.Itoa(f.Entries),
			strconv.Itoa(len(f.Dropped)),
			strconv.Itoa(f.Changes),
			statusText(f.Status, colorize),
		})
	}
	tw.AppendFooter(table.Row{
		"Total", "",
		"", "",
		strconv.Itoa(batch.TotalChanges()),
		strconv.Itoa(len(batch.Files)) + " file(s)",
	})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	return tw.Render()
}

func statusText(status pipeline.Status, colorize bool) string {
	if !colorize {
		return string(status)
	}
	switch status {
	case pipeline.StatusProcessed:
		return text.FgGreen.Sprint(status)
	case pipeline.StatusFailed:
		return text.FgRed.Sprint(status)
	case pipeline.StatusSkipped, pipeline.StatusDryRun:
		return text.FgYellow.Sprint(status)
	default:
		return string(status)
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
