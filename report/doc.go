// Package report renders bootstrap results and configuration summaries for
// the jukebox command line.
//
// # Output Formatting
//
// Use formatters for human-readable, JSON or YAML output:
//
//	formatter, err := report.NewFormatter("json", quiet)
//	if err != nil {
//		return err
//	}
//	formatter.FormatConfig(os.Stdout, cfg.Summary(false))
//
// Human output lays the configuration out as tables.
package report
