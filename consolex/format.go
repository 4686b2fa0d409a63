package consolex

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/Abraxas-365/termlogx/logx"
)

// levelColors maps severities to the color wrapping the whole rendered line.
// The instances are force-enabled because the tty decision is made per
// stream when the dispatch is assembled, not by the color package globals.
var levelColors = func() map[logx.Level]*color.Color {
	m := map[logx.Level]*color.Color{
		logx.ErrorLevel: color.New(color.FgRed),
		logx.WarnLevel:  color.New(color.FgYellow),
		logx.InfoLevel:  color.New(color.FgGreen),
		logx.DebugLevel: color.New(color.FgCyan),
		logx.TraceLevel: color.New(color.FgMagenta),
	}
	for _, c := range m {
		c.EnableColor()
	}
	return m
}()

// formatter builds the rendering function for one output branch. With a
// configured level of DebugLevel or more verbose, lines carry a millisecond
// timestamp and a fixed-width source location column; coarser levels render
// just label, context and message.
func (c *Config) formatter(colored bool) logx.FormatFunc {
	verbose := c.level >= logx.DebugLevel
	maxLevel := c.level
	levelName := c.levelName

	return func(r *logx.Record) string {
		var line string
		if verbose {
			line = r.Time.Format("[15:04:05.000]") + sourceColumn(r.File, r.Line) +
				" " + levelName(r.Level) + contextPrefix(maxLevel) + r.Message
		} else {
			line = levelName(r.Level) + contextPrefix(maxLevel) + r.Message
		}

		if colored {
			if col, ok := levelColors[r.Level]; ok {
				return col.Sprint(line)
			}
		}
		return line
	}
}

// columnWidths computes the widths of the file and line fields of the source
// location column. The file field starts at 10 characters and the line field
// at 3; each extra digit the line number needs beyond three is stolen from
// the file field, down to a file width of 0.
func columnWidths(line int) (fileWidth, lineWidth int) {
	fileWidth, lineWidth = 10, 3
	for extra := line / 1000; extra > 0 && fileWidth > 0; extra /= 10 {
		lineWidth++
		fileWidth--
	}
	return fileWidth, lineWidth
}

// sourceColumn renders the bracketed file:line column, including its leading
// space. Records without source metadata get an empty string rather than a
// placeholder.
func sourceColumn(file string, line int) string {
	if file == "" || line <= 0 {
		return ""
	}

	fileWidth, lineWidth := columnWidths(line)

	file = strings.TrimPrefix(file, "src/")
	if len(file) > fileWidth {
		// Keep the rightmost characters: the filename tail matters more
		// than the directory prefix.
		file = file[len(file)-fileWidth:]
	}

	return fmt.Sprintf(" [%*s:%0*d]", fileWidth, file, lineWidth, line)
}
