package version

const Name = "wrt2pdf"

var (
	// These values are injected during build via -ldflags
	Version   = "0.6"
	CommitSHA = "unknown"
)

func GetVersionInfo() string {
	return Name + " " + Version
}

// Creator is the string stored in the Creator entry of generated PDFs.
func Creator() string {
	return Name + " v" + Version
}

func GetDetailedVersionInfo() string {
	return Name + "\n" +
		"Version:  " + Version + "\n" +
		"Commit:   " + CommitSHA + "\n"
}
