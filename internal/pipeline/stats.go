package pipeline

// ImageResult records the outcome for one source image, for the summary table.
type ImageResult struct {
	Name        string
	NativeWidth int
	Generated   int // widths (re)generated
	Skipped     int // widths skipped as up-to-date
}

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Images           int
	Current          int
	Generated        int
	Skipped          int
	TotalOutputBytes int64
	Results          []ImageResult
}
