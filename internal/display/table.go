package display

import (
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/grovetools/agexport/internal/session"
)

// PrintTranscriptsTable prints a list of transcripts in a formatted table.
func PrintTranscriptsTable(transcripts []session.TranscriptInfo, writer io.Writer) {
	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "FILE\tSESSION ID\tSTARTED\tTURNS\tSIZE\tOUTPUT")
	for _, t := range transcripts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			filepath.Base(t.LogFilePath), t.SessionID,
			t.StartedAt.Format("2006-01-02 15:04"), t.Turns,
			humanize.Bytes(uint64(t.Size)), t.OutputName)
	}
	w.Flush()
}
