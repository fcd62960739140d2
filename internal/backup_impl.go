package internal

import "os"

// Backup writes a crash-safety snapshot of every row, independent of the
// user's save target. It runs on the keystroke threshold, on the manual
// backup chord, and as a last resort before an unrecoverable error aborts
// the session.
func (s *Session) Backup() {
	path := s.cfg.BackupFallbackPath
	if s.doc.FileName != "" {
		path = s.doc.FileName + ".tmp"
	}
	file, err := os.Create(path)
	if err != nil {
		s.emitf("backup failed: %v", err)
		return
	}
	defer file.Close()

	allOK := true
	for _, line := range s.doc.Rows() {
		if _, err := file.WriteString(line); err != nil {
			// Keep going; the remaining rows may still make it out.
			allOK = false
			continue
		}
		if _, err := file.WriteString("\n"); err != nil {
			allOK = false
		}
	}
	if !allOK {
		s.emitf("backup failed: not all rows written to %s", path)
		return
	}
	s.emitf("backed up to %s", path)
	s.sinceBackup = 0
}
