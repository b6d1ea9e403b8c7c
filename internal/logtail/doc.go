// Package logtail reads the tail of Marquee's log file.
//
// The UI owns the terminal, so Marquee logs to <data_dir>/marquee.log.
// `marquee -log N` prints the last N lines through Read, optionally narrowed
// by Filter to a minimum slog level:
//
//	lines, err := logtail.Read(cfg.LogPath(), 200)
//	if err != nil {
//		return err
//	}
//	for _, line := range logtail.Filter(lines, slog.LevelWarn) {
//		fmt.Println(line)
//	}
//
// Read returns nil, nil for a missing file. Other errors are wrapped.
package logtail
