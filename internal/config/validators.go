package config

import "os"

// MaxPort is the highest valid TCP port number.
const MaxPort = 65535

// ValidPort reports whether p is an acceptable port number.
func ValidPort(p int) bool {
	return p >= 0 && p <= MaxPort
}

// ValidMode reports whether s names one of the two concurrency modes.
// See [ParseMode] for the accepted spellings.
func ValidMode(s string) bool {
	_, ok := ParseMode(s)
	return ok
}

// ValidDirectory reports whether path names an existing directory.
// Every failure of the underlying filesystem query (entry missing, wrong
// type, I/O error) maps to false; nothing propagates.
func ValidDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
